package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/catalog"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// analyticsLookback is how many months of history feed streaks
const analyticsLookback = 12

type moodService struct {
	moods     repository.MoodRepository
	timelines *TimelineBuilder
	now       func() time.Time
}

// NewMoodService creates a new mood service. A nil now uses time.Now.
func NewMoodService(moods repository.MoodRepository, now func() time.Time) MoodService {
	if now == nil {
		now = time.Now
	}
	return &moodService{
		moods:     moods,
		timelines: NewTimelineBuilder(moods),
		now:       now,
	}
}

func (s *moodService) GetMonth(ctx context.Context, userID, month string) (*models.MoodMonth, error) {
	return s.moods.GetMonth(ctx, userID, month)
}

func (s *moodService) GetDay(ctx context.Context, userID, date string) (*models.DayMoodRecord, error) {
	return s.moods.GetDay(ctx, userID, date)
}

func (s *moodService) AddMood(ctx context.Context, userID, date string, in models.MoodInput) (*models.DayMoodRecord, error) {
	selection, err := s.toSelection(in)
	if err != nil {
		return nil, err
	}

	record, err := s.moods.AddMood(ctx, userID, date, selection)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Debug("mood logged",
		logger.String("user_id", userID),
		logger.String("date", date),
		logger.String("mood_id", selection.MoodID),
		logger.Int("count", len(record.Moods)),
	)
	return record, nil
}

func (s *moodService) UpsertDay(ctx context.Context, userID, date string, in []models.MoodInput) (*models.DayMoodRecord, error) {
	if len(in) > models.MaxMoodsPerDay {
		return nil, fmt.Errorf("%w: %d moods exceeds the daily maximum of %d",
			repository.ErrLimitExceeded, len(in), models.MaxMoodsPerDay)
	}

	selections := make([]models.MoodSelection, 0, len(in))
	for _, mood := range in {
		sel, err := s.toSelection(mood)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}

	return s.moods.UpsertDay(ctx, userID, date, selections)
}

func (s *moodService) DeleteDay(ctx context.Context, userID, date string) error {
	return s.moods.DeleteDay(ctx, userID, date)
}

// GetAnalytics summarizes the last twelve months of tracking
func (s *moodService) GetAnalytics(ctx context.Context, userID string) (*models.MoodAnalytics, error) {
	now := s.now().UTC()
	timeline, err := s.timelines.Build(ctx, userID, calendar.MonthKey(now), analyticsLookback)
	if err != nil {
		return nil, fmt.Errorf("failed to build timeline: %w", err)
	}

	analytics := &models.MoodAnalytics{}
	entries := timeline.Entries
	if len(entries) == 0 {
		return analytics, nil
	}

	counts := make(map[string]int)
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
		for _, m := range e.Moods {
			counts[m.MoodID]++
			analytics.TotalEntries++
		}
	}

	analytics.DaysTracked = len(entries)
	last := entries[len(entries)-1].Date
	analytics.LastEntryDate = &last
	if top := rankMoods(counts); len(top) > 0 {
		analytics.MostFrequentMood = &top[0].id
	}
	analytics.CurrentStreak, analytics.LongestStreak = calculateStreaks(dates, now)

	return analytics, nil
}

func (s *moodService) toSelection(in models.MoodInput) (models.MoodSelection, error) {
	id := strings.TrimSpace(in.MoodID)
	if id == "" {
		return models.MoodSelection{}, fmt.Errorf("%w: mood_id is required", repository.ErrValidation)
	}
	if !catalog.Known(id) {
		return models.MoodSelection{}, fmt.Errorf("%w: unknown mood %q", repository.ErrValidation, id)
	}

	at := s.now()
	if in.At != nil && *in.At != "" {
		t, err := time.Parse(time.RFC3339Nano, *in.At)
		if err != nil {
			return models.MoodSelection{}, fmt.Errorf("%w: at: %w", repository.ErrValidation, err)
		}
		at = t
	}

	return models.MoodSelection{
		MoodID: id,
		Note:   strings.TrimSpace(in.Note),
		At:     calendar.FormatTimestamp(calendar.NormalizeTimestamp(at)),
	}, nil
}

// calculateStreaks returns the current and longest runs of consecutive
// tracked days. dates must be sorted, unique YYYY-MM-DD values. The current
// streak is zero unless the last tracked day is today or yesterday.
func calculateStreaks(dates []string, now time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := calendar.ParseDate(d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0, 0
	}

	run := 0
	for i := range days {
		if i > 0 && days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := calendar.StartOfDay(now)
	gap := today.Sub(days[len(days)-1])
	if gap >= 0 && gap <= 24*time.Hour {
		current = run
	}
	return current, longest
}

type moodCount struct {
	id    string
	count int
}

// rankMoods orders moods by occurrence, most frequent first, ties by id
func rankMoods(counts map[string]int) []moodCount {
	ranked := make([]moodCount, 0, len(counts))
	for id, n := range counts {
		ranked = append(ranked, moodCount{id: id, count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].id < ranked[j].id
	})
	return ranked
}
