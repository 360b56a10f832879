package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/catalog"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// TimelineBuilder turns raw month documents into ordered timeline entries
type TimelineBuilder struct {
	moods repository.MoodRepository
}

// NewTimelineBuilder creates a timeline builder
func NewTimelineBuilder(moods repository.MoodRepository) *TimelineBuilder {
	return &TimelineBuilder{moods: moods}
}

// Build fetches the monthsBack contiguous months ending at focusMonth
// (YYYY-MM) and flattens them into chronologically ordered entries. Days
// without moods are omitted and missing months are simply empty.
func (b *TimelineBuilder) Build(ctx context.Context, userID, focusMonth string, monthsBack int) (*models.Timeline, error) {
	focus, err := calendar.ParseMonth(focusMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrValidation, err)
	}

	months := calendar.MonthKeysBack(focus, calendar.Clamp(monthsBack, 1, MaxMonths))
	fetched := make([]*models.MoodMonth, len(months))

	g, gctx := errgroup.WithContext(ctx)
	for i, month := range months {
		g.Go(func() error {
			m, err := b.moods.GetMonth(gctx, userID, month)
			if err != nil {
				return err
			}
			fetched[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]models.MoodTimelineEntry, 0)
	for i, m := range fetched {
		if m == nil {
			continue
		}
		for day, record := range m.Days {
			if len(record.Moods) == 0 {
				continue
			}
			date := record.Date
			if date == "" {
				date = months[i] + "-" + day
			}
			entries = append(entries, toTimelineEntry(date, record.Moods))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	return &models.Timeline{Months: months, Entries: entries}, nil
}

// BuildRange builds the timeline covering [start, end] and filters it to
// that range.
func (b *TimelineBuilder) BuildRange(ctx context.Context, userID string, start, end time.Time) ([]models.MoodTimelineEntry, error) {
	timeline, err := b.Build(ctx, userID, calendar.MonthKey(end), calendar.MonthsBetween(start, end))
	if err != nil {
		return nil, err
	}
	return FilterByRange(timeline.Entries, start, end), nil
}

func toTimelineEntry(date string, selections []models.MoodSelection) models.MoodTimelineEntry {
	moods := make([]models.TimelineMood, 0, len(selections))
	var valence float64
	for _, s := range selections {
		p := catalog.Profile(s.MoodID)
		valence += p.Valence
		moods = append(moods, models.TimelineMood{
			MoodID: s.MoodID,
			Tone:   catalog.ClassifyTone(p.Valence),
			At:     s.At,
			Note:   s.Note,
		})
	}
	return models.MoodTimelineEntry{
		Date:     date,
		DayScore: round(valence/float64(len(selections)), 2),
		Moods:    moods,
	}
}

// FilterByRange keeps entries whose date falls within [start, end], with
// both bounds taken as whole UTC days.
func FilterByRange(entries []models.MoodTimelineEntry, start, end time.Time) []models.MoodTimelineEntry {
	from := calendar.DateKey(calendar.StartOfDay(start))
	to := calendar.DateKey(calendar.EndOfDay(end))

	out := make([]models.MoodTimelineEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out
}
