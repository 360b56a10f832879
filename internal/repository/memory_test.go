package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

func newTestMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	s.PutUser(models.User{ID: "u1", Name: "Ada", Role: models.RolePatient, Status: models.UserStatusActive})
	s.PutUser(models.User{ID: "u2", Name: "Bo", Role: models.RolePatient, Status: models.UserStatusInactive})
	s.PutUser(models.User{ID: "s1", Name: "Staff", Role: models.RoleStaff, Status: models.UserStatusActive})
	return s
}

func TestMemoryUpsertDayRoundTrip(t *testing.T) {
	ctx := context.Background()
	moods := newTestMemoryStore(t).Moods()

	written, err := moods.UpsertDay(ctx, "u1", "2024-03-05", []models.MoodSelection{
		{MoodID: "happy", Note: "sunny", At: "2024-03-05T08:30:00.123456+02:00"},
		{MoodID: "tired"},
	})
	require.NoError(t, err)
	assert.Len(t, written.Moods, 2)

	got, err := moods.GetDay(ctx, "u1", "2024-03-05")
	require.NoError(t, err)
	require.Len(t, got.Moods, 2)
	assert.Equal(t, "happy", got.Moods[0].MoodID)
	assert.Equal(t, "sunny", got.Moods[0].Note)
	assert.Equal(t, "2024-03-05T06:30:00.123Z", got.Moods[0].At)
	assert.Equal(t, "tired", got.Moods[1].MoodID)
	assert.Empty(t, got.Moods[1].At)
}

func TestMemoryAddMoodRejectsFourth(t *testing.T) {
	ctx := context.Background()
	moods := newTestMemoryStore(t).Moods()

	for _, id := range []string{"happy", "calm", "tired"} {
		_, err := moods.AddMood(ctx, "u1", "2024-03-05", models.MoodSelection{MoodID: id})
		require.NoError(t, err)
	}

	_, err := moods.AddMood(ctx, "u1", "2024-03-05", models.MoodSelection{MoodID: "sad"})
	assert.True(t, errors.Is(err, ErrLimitExceeded), "expected ErrLimitExceeded, got %v", err)

	got, err := moods.GetDay(ctx, "u1", "2024-03-05")
	require.NoError(t, err)
	ids := []string{got.Moods[0].MoodID, got.Moods[1].MoodID, got.Moods[2].MoodID}
	assert.Equal(t, []string{"happy", "calm", "tired"}, ids)
}

func TestMemoryUpsertDayRejectsOverCap(t *testing.T) {
	moods := newTestMemoryStore(t).Moods()
	_, err := moods.UpsertDay(context.Background(), "u1", "2024-03-05", make([]models.MoodSelection, 4))
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestMemoryWritesRequireUser(t *testing.T) {
	ctx := context.Background()
	moods := newTestMemoryStore(t).Moods()

	_, err := moods.AddMood(ctx, "ghost", "2024-03-05", models.MoodSelection{MoodID: "happy"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = moods.UpsertDay(ctx, "ghost", "2024-03-05", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRejectsMalformedDate(t *testing.T) {
	ctx := context.Background()
	moods := newTestMemoryStore(t).Moods()

	_, err := moods.GetDay(ctx, "u1", "2024-3-5")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = moods.GetMonth(ctx, "u1", "March")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMemoryGetMonthMissingIsEmpty(t *testing.T) {
	month, err := newTestMemoryStore(t).Moods().GetMonth(context.Background(), "u1", "2023-01")
	require.NoError(t, err)
	assert.Equal(t, 2023, month.Year)
	assert.Equal(t, 1, month.Month)
	assert.Empty(t, month.Days)
}

func TestMemoryGetMonthKeysByDay(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore(t)
	_, err := s.Moods().AddMood(ctx, "u1", "2024-03-05", models.MoodSelection{MoodID: "happy"})
	require.NoError(t, err)
	_, err = s.Moods().AddMood(ctx, "u1", "2024-04-01", models.MoodSelection{MoodID: "sad"})
	require.NoError(t, err)

	month, err := s.Moods().GetMonth(ctx, "u1", "2024-03")
	require.NoError(t, err)
	require.Len(t, month.Days, 1)
	assert.Equal(t, "2024-03-05", month.Days["05"].Date)
}

func TestMemoryDeleteDay(t *testing.T) {
	ctx := context.Background()
	moods := newTestMemoryStore(t).Moods()

	_, err := moods.AddMood(ctx, "u1", "2024-03-05", models.MoodSelection{MoodID: "happy"})
	require.NoError(t, err)
	require.NoError(t, moods.DeleteDay(ctx, "u1", "2024-03-05"))

	got, err := moods.GetDay(ctx, "u1", "2024-03-05")
	require.NoError(t, err)
	assert.Empty(t, got.Moods)
}

func TestMemoryUserList(t *testing.T) {
	ctx := context.Background()
	users := newTestMemoryStore(t).Users()

	active, err := users.List(ctx, models.UserFilter{Status: models.UserStatusActive, Role: models.RolePatient})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "u1", active[0].ID)

	all, err := users.List(ctx, models.UserFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = users.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReportUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	reports := newTestMemoryStore(t).Reports()

	require.NoError(t, reports.Upsert(ctx, &models.WeeklyReport{ID: "week-2024-1", WeekStart: "2024-01-01", Summary: models.WeeklySummary{TotalPatients: 1}}))
	require.NoError(t, reports.Upsert(ctx, &models.WeeklyReport{ID: "week-2024-1", WeekStart: "2024-01-01", Summary: models.WeeklySummary{TotalPatients: 2}}))
	require.NoError(t, reports.Upsert(ctx, &models.WeeklyReport{ID: "week-2024-2", WeekStart: "2024-01-08"}))

	list, err := reports.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "week-2024-2", list[0].ID)
	assert.Equal(t, 2, list[1].Summary.TotalPatients)

	missing, err := reports.GetByID(ctx, "week-1999-1")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryLoadSeedToleratesLegacyDays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	seed := `{
		"users": [{"id": "u9", "name": "Legacy", "role": "patient", "status": "active"}],
		"moods": {"u9": {"2024-02-10": [
			{"mood_id": "happy"}, {"mood_id": "calm"}, {"mood_id": "sad"}, {"mood_id": "tired"}
		]}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	s := NewMemoryStore()
	require.NoError(t, s.LoadSeed(path))

	got, err := s.Moods().GetDay(context.Background(), "u9", "2024-02-10")
	require.NoError(t, err)
	assert.Len(t, got.Moods, 4)
}
