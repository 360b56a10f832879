package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/catalog"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

func (s *reportService) GeneratePatientEvolutionReport(ctx context.Context, userID string, filters models.ReportFilters) (*models.PatientEvolutionReport, error) {
	ctx = logger.WithPatientID(ctx, userID)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.opts.Now().UTC()
	rng, err := ResolveDateRange(filters, now, s.opts.DefaultMonths)
	if err != nil {
		return nil, err
	}

	timeline, err := s.timelines.Build(ctx, userID, calendar.MonthKey(rng.End), rng.MonthsRange)
	if err != nil {
		return nil, fmt.Errorf("failed to build timeline: %w", err)
	}
	entries := FilterByRange(timeline.Entries, rng.Start, rng.End)

	analytics, err := s.analytics.GetAnalytics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	report := &models.PatientEvolutionReport{
		Patient: models.PatientInfo{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Status: user.Status,
		},
		Range:   rangeInfo(rng),
		Summary: SummarizeTimeline(entries),
		Streaks: models.StreakInfo{
			Current: analytics.CurrentStreak,
			Longest: analytics.LongestStreak,
		},
		TopMoods:         topMoods(entries, TopMoodCount),
		WeeklyEvolution:  weeklyEvolution(entries, rng.Start, rng.End),
		MonthlyEvolution: monthlyEvolution(entries, rng.Start, rng.End),
		Timeline:         evolutionDays(entries),
		GeneratedAt:      now,
	}

	logger.Ctx(ctx).Debug("evolution report generated",
		logger.Int("days", len(report.Timeline)),
		logger.Int("weeks", len(report.WeeklyEvolution)),
	)
	return report, nil
}

// topMoods returns the n most frequent moods with their share of all
// occurrences.
func topMoods(entries []models.MoodTimelineEntry, n int) []models.TopMood {
	counts := make(map[string]int)
	total := 0
	for _, e := range entries {
		for _, m := range e.Moods {
			counts[m.MoodID]++
			total++
		}
	}

	ranked := rankMoods(counts)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]models.TopMood, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, models.TopMood{
			MoodID:     r.id,
			Label:      catalog.Profile(r.id).Label,
			Count:      r.count,
			Percentage: round(float64(r.count)/float64(total)*100, 1),
		})
	}
	return out
}

// weeklyEvolution walks Monday-aligned windows from start to end. The first
// and last windows are clipped to the range.
func weeklyEvolution(entries []models.MoodTimelineEntry, start, end time.Time) []models.PeriodSummary {
	out := make([]models.PeriodSummary, 0)
	for ws := start; !ws.After(end); ws = calendar.StartOfWeek(ws).Add(calendar.Week) {
		we := calendar.EndOfWeek(ws)
		if we.After(end) {
			we = end
		}
		year, week := calendar.ISOWeek(ws)
		out = append(out, models.PeriodSummary{
			Period:            fmt.Sprintf("%d-W%02d", year, week),
			StartDate:         calendar.DateKey(ws),
			EndDate:           calendar.DateKey(we),
			AggregatedMetrics: SummarizeTimeline(FilterByRange(entries, ws, we)),
		})
	}
	return out
}

// monthlyEvolution walks calendar months from start to end, matching
// entries by their YYYY-MM prefix.
func monthlyEvolution(entries []models.MoodTimelineEntry, start, end time.Time) []models.PeriodSummary {
	out := make([]models.PeriodSummary, 0)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for ms := first; !ms.After(end); ms = calendar.AddMonths(ms, 1) {
		key := calendar.MonthKey(ms)

		bucket := make([]models.MoodTimelineEntry, 0)
		for _, e := range entries {
			if strings.HasPrefix(e.Date, key) {
				bucket = append(bucket, e)
			}
		}

		from := ms
		if from.Before(start) {
			from = start
		}
		to := calendar.EndOfDay(calendar.AddMonths(ms, 1).AddDate(0, 0, -1))
		if to.After(end) {
			to = end
		}

		out = append(out, models.PeriodSummary{
			Period:            key,
			StartDate:         calendar.DateKey(from),
			EndDate:           calendar.DateKey(to),
			AggregatedMetrics: SummarizeTimeline(bucket),
		})
	}
	return out
}

func evolutionDays(entries []models.MoodTimelineEntry) []models.EvolutionDay {
	out := make([]models.EvolutionDay, 0, len(entries))
	for _, e := range entries {
		wellbeing, risk := dayAverages(e)
		moods := make([]string, 0, len(e.Moods))
		for _, m := range e.Moods {
			moods = append(moods, m.MoodID)
		}
		out = append(out, models.EvolutionDay{
			Date:      e.Date,
			DayScore:  e.DayScore,
			Wellbeing: wellbeing,
			Risk:      risk,
			MoodCount: len(e.Moods),
			Moods:     moods,
		})
	}
	return out
}
