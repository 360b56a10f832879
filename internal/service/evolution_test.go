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

func TestGeneratePatientEvolutionReport(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, map[string]map[string][]string{
		"p1": {
			"2024-05-20": {"hopeless"},
			"2024-05-30": {"happy", "sad"},
			"2024-06-03": {"calm"},
			"2024-06-04": {"calm", "anxious"},
		},
	})
	svc := newReportService(store, time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC))

	report, err := svc.GeneratePatientEvolutionReport(context.Background(), "p1", models.ReportFilters{
		StartDate: "2024-05-29",
		EndDate:   "2024-06-05",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", report.Patient.UserID)
	assert.Equal(t, models.RangeInfo{StartDate: "2024-05-29", EndDate: "2024-06-05", MonthsRange: 2}, report.Range)

	assert.Equal(t, 5, report.Summary.TotalEntries)
	assert.Equal(t, 3, report.Summary.DaysTracked)
	assert.Equal(t, models.StreakInfo{Current: 2, Longest: 2}, report.Streaks)

	require.Len(t, report.TopMoods, 4)
	assert.Equal(t, models.TopMood{MoodID: "calm", Label: "Calm", Count: 2, Percentage: 40}, report.TopMoods[0])
	assert.Equal(t, "anxious", report.TopMoods[1].MoodID)
	assert.Equal(t, 20.0, report.TopMoods[1].Percentage)

	require.Len(t, report.WeeklyEvolution, 2)
	assert.Equal(t, "2024-W22", report.WeeklyEvolution[0].Period)
	assert.Equal(t, "2024-05-29", report.WeeklyEvolution[0].StartDate)
	assert.Equal(t, "2024-06-02", report.WeeklyEvolution[0].EndDate)
	assert.Equal(t, 2, report.WeeklyEvolution[0].TotalEntries)
	assert.Equal(t, "2024-06-03", report.WeeklyEvolution[1].StartDate)
	assert.Equal(t, "2024-06-05", report.WeeklyEvolution[1].EndDate)
	assert.Equal(t, 3, report.WeeklyEvolution[1].TotalEntries)

	require.Len(t, report.MonthlyEvolution, 2)
	assert.Equal(t, "2024-05", report.MonthlyEvolution[0].Period)
	assert.Equal(t, "2024-05-29", report.MonthlyEvolution[0].StartDate)
	assert.Equal(t, "2024-05-31", report.MonthlyEvolution[0].EndDate)
	assert.Equal(t, 2, report.MonthlyEvolution[0].TotalEntries)
	assert.Equal(t, "2024-06", report.MonthlyEvolution[1].Period)
	assert.Equal(t, 3, report.MonthlyEvolution[1].TotalEntries)

	require.Len(t, report.Timeline, 3)
	day := report.Timeline[0]
	assert.Equal(t, "2024-05-30", day.Date)
	assert.Equal(t, 2, day.MoodCount)
	assert.Equal(t, []string{"happy", "sad"}, day.Moods)
	assert.InDelta(t, 52.5, day.Wellbeing, 1e-9)
	assert.InDelta(t, 37.5, day.Risk, 1e-9)
}

func TestGeneratePatientEvolutionReportNoData(t *testing.T) {
	store := newSeededStore(t, []models.User{patient("p1")}, nil)
	svc := newReportService(store, time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC))

	report, err := svc.GeneratePatientEvolutionReport(context.Background(), "p1", models.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, models.AggregatedMetrics{}, report.Summary)
	assert.Empty(t, report.TopMoods)
	assert.Empty(t, report.Timeline)
	// 2024-04-05 .. 2024-06-05
	assert.Len(t, report.MonthlyEvolution, 3)
	assert.NotEmpty(t, report.WeeklyEvolution)
}

func TestGeneratePatientEvolutionReportUnknownUser(t *testing.T) {
	store := newSeededStore(t, nil, nil)
	svc := newReportService(store, time.Now())

	_, err := svc.GeneratePatientEvolutionReport(context.Background(), "ghost", models.ReportFilters{})
	assert.True(t, errors.Is(err, repository.ErrNotFound), "got %v", err)
}

func TestWeeklyEvolutionBucketsCoverRange(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) // Thursday
	end := time.Date(2024, 2, 29, 23, 59, 59, 999e6, time.UTC)

	buckets := weeklyEvolution(nil, start, end)
	require.Len(t, buckets, 5)
	assert.Equal(t, "2024-02-01", buckets[0].StartDate)
	assert.Equal(t, "2024-02-04", buckets[0].EndDate)
	for i := 1; i < len(buckets); i++ {
		day, err := time.Parse("2006-01-02", buckets[i].StartDate)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, day.Weekday())
	}
	assert.Equal(t, "2024-02-29", buckets[4].EndDate)
}
