package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func TestAddMoodStampsTimestamp(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, nil)
	now := time.Date(2024, 3, 5, 10, 15, 30, 123456789, time.UTC)
	svc := NewMoodService(store.Moods(), fixedClock(now))

	day, err := svc.AddMood(context.Background(), "p1", "2024-03-05", models.MoodInput{MoodID: " calm ", Note: " ok "})
	require.NoError(t, err)
	require.Len(t, day.Moods, 1)
	assert.Equal(t, "calm", day.Moods[0].MoodID)
	assert.Equal(t, "ok", day.Moods[0].Note)
	assert.Equal(t, "2024-03-05T10:15:30.123Z", day.Moods[0].At)

	day, err = svc.AddMood(context.Background(), "p1", "2024-03-05", models.MoodInput{
		MoodID: "happy",
		At:     strPtr("2024-03-05T12:00:00+02:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T10:00:00.000Z", day.Moods[1].At)
}

func TestAddMoodValidation(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, nil)
	svc := NewMoodService(store.Moods(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		date string
		in   models.MoodInput
	}{
		{"empty id", "2024-03-05", models.MoodInput{MoodID: "  "}},
		{"unknown mood", "2024-03-05", models.MoodInput{MoodID: "mystery"}},
		{"bad timestamp", "2024-03-05", models.MoodInput{MoodID: "calm", At: strPtr("noon")}},
		{"bad date", "2024-3-5", models.MoodInput{MoodID: "calm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddMood(ctx, "p1", tt.date, tt.in)
			assert.True(t, errors.Is(err, repository.ErrValidation), "got %v", err)
		})
	}
}

func TestAddMoodDailyCap(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, map[string]map[string][]string{
		"p1": {"2024-03-05": {"happy", "calm", "tired"}},
	})
	svc := NewMoodService(store.Moods(), nil)
	ctx := context.Background()

	_, err := svc.AddMood(ctx, "p1", "2024-03-05", models.MoodInput{MoodID: "sad"})
	assert.True(t, errors.Is(err, repository.ErrLimitExceeded), "got %v", err)

	day, err := svc.GetDay(ctx, "p1", "2024-03-05")
	require.NoError(t, err)
	require.Len(t, day.Moods, 3)
	assert.Equal(t, "happy", day.Moods[0].MoodID)
	assert.Equal(t, "calm", day.Moods[1].MoodID)
	assert.Equal(t, "tired", day.Moods[2].MoodID)
}

func TestUpsertDayRejectsTooMany(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, nil)
	svc := NewMoodService(store.Moods(), nil)

	in := []models.MoodInput{{MoodID: "happy"}, {MoodID: "calm"}, {MoodID: "tired"}, {MoodID: "sad"}}
	_, err := svc.UpsertDay(context.Background(), "p1", "2024-03-05", in)
	assert.True(t, errors.Is(err, repository.ErrLimitExceeded))
}

func TestUpsertDayRoundTrip(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, nil)
	svc := NewMoodService(store.Moods(), fixedClock(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	_, err := svc.UpsertDay(ctx, "p1", "2024-03-05", []models.MoodInput{
		{MoodID: "happy", Note: "walk"},
		{MoodID: "anxious", Note: "meeting", At: strPtr("2024-03-05T14:30:00.5Z")},
	})
	require.NoError(t, err)

	day, err := svc.GetDay(ctx, "p1", "2024-03-05")
	require.NoError(t, err)
	require.Len(t, day.Moods, 2)
	assert.Equal(t, models.MoodSelection{MoodID: "happy", Note: "walk", At: "2024-03-05T09:00:00.000Z"}, day.Moods[0])
	assert.Equal(t, models.MoodSelection{MoodID: "anxious", Note: "meeting", At: "2024-03-05T14:30:00.500Z"}, day.Moods[1])

	require.NoError(t, svc.DeleteDay(ctx, "p1", "2024-03-05"))
	day, err = svc.GetDay(ctx, "p1", "2024-03-05")
	require.NoError(t, err)
	assert.Empty(t, day.Moods)
}

func TestCalculateStreaks(t *testing.T) {
	dates := []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-05", "2024-03-06"}

	tests := []struct {
		name            string
		now             time.Time
		current, longer int
	}{
		{"tracked yesterday", time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC), 2, 3},
		{"tracked today", time.Date(2024, 3, 6, 23, 0, 0, 0, time.UTC), 2, 3},
		{"lapsed", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := calculateStreaks(dates, tt.now)
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.longer, longest)
		})
	}

	current, longest := calculateStreaks(nil, time.Now())
	assert.Zero(t, current)
	assert.Zero(t, longest)
}

func TestGetAnalytics(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, map[string]map[string][]string{
		"p1": {
			"2024-02-28": {"calm"},
			"2024-02-29": {"calm", "happy"},
			"2024-03-01": {"sad"},
			"2024-03-04": {"happy"},
		},
	})
	svc := NewMoodService(store.Moods(), fixedClock(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)))

	got, err := svc.GetAnalytics(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, got.CurrentStreak)
	assert.Equal(t, 3, got.LongestStreak)
	assert.Equal(t, 4, got.DaysTracked)
	assert.Equal(t, 5, got.TotalEntries)
	require.NotNil(t, got.LastEntryDate)
	assert.Equal(t, "2024-03-04", *got.LastEntryDate)
	// calm and happy tie at 2, broken by id
	require.NotNil(t, got.MostFrequentMood)
	assert.Equal(t, "calm", *got.MostFrequentMood)
}

func TestGetAnalyticsNoData(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, nil)
	got, err := NewMoodService(store.Moods(), nil).GetAnalytics(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, &models.MoodAnalytics{}, got)
}
