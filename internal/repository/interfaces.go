package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

const maxMoods = models.MaxMoodsPerDay

// MoodRepository defines the interface for per-user mood day records.
// Dates are YYYY-MM-DD and months YYYY-MM, both UTC calendar values.
type MoodRepository interface {
	// GetMonth returns the month's day records. A month with no data
	// returns an empty Days map, not an error.
	GetMonth(ctx context.Context, userID, month string) (*models.MoodMonth, error)
	GetDay(ctx context.Context, userID, date string) (*models.DayMoodRecord, error)
	// AddMood appends one selection, failing with ErrLimitExceeded when the
	// day is already full.
	AddMood(ctx context.Context, userID, date string, mood models.MoodSelection) (*models.DayMoodRecord, error)
	UpsertDay(ctx context.Context, userID, date string, moods []models.MoodSelection) (*models.DayMoodRecord, error)
	DeleteDay(ctx context.Context, userID, date string) error
}

// UserRepository defines the interface for the user directory
type UserRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// ReportRepository defines the interface for weekly report persistence
type ReportRepository interface {
	// Upsert replaces the report with the same id, or inserts it
	Upsert(ctx context.Context, report *models.WeeklyReport) error
	// GetByID returns nil, nil when the report does not exist
	GetByID(ctx context.Context, id string) (*models.WeeklyReport, error)
	// List returns up to limit reports, newest week first
	List(ctx context.Context, limit int) ([]models.WeeklyReport, error)
}
