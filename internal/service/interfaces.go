package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// MoodService defines the interface for self-service mood tracking
type MoodService interface {
	GetMonth(ctx context.Context, userID, month string) (*models.MoodMonth, error)
	GetDay(ctx context.Context, userID, date string) (*models.DayMoodRecord, error)
	AddMood(ctx context.Context, userID, date string, in models.MoodInput) (*models.DayMoodRecord, error)
	UpsertDay(ctx context.Context, userID, date string, in []models.MoodInput) (*models.DayMoodRecord, error)
	DeleteDay(ctx context.Context, userID, date string) error
	GetAnalytics(ctx context.Context, userID string) (*models.MoodAnalytics, error)
}

// ReportService defines the interface for the aggregation engine
type ReportService interface {
	// GenerateWeeklyReport builds and persists the report of the ISO week
	// containing target (now when nil).
	GenerateWeeklyReport(ctx context.Context, target *time.Time) (*models.WeeklyReport, error)
	// GetWeeklyReport returns nil, nil when the report does not exist
	GetWeeklyReport(ctx context.Context, id string) (*models.WeeklyReport, error)
	ListWeeklyReports(ctx context.Context, limit int) ([]models.WeeklyReport, error)
	GeneratePatientEvolutionReport(ctx context.Context, userID string, filters models.ReportFilters) (*models.PatientEvolutionReport, error)
	GroupPatientsByEmotionalState(ctx context.Context, filters models.ReportFilters) (*models.PatientGrouping, error)
}

// AnalyticsProvider supplies a user's full-history analytics
type AnalyticsProvider interface {
	GetAnalytics(ctx context.Context, userID string) (*models.MoodAnalytics, error)
}
