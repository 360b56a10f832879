package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/singleflight"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

type reportService struct {
	users     repository.UserRepository
	reports   repository.ReportRepository
	timelines *TimelineBuilder
	analytics AnalyticsProvider
	opts      ReportOptions

	// collapses concurrent generation of the same week
	inflight singleflight.Group
}

// NewReportService creates the aggregation engine
func NewReportService(
	users repository.UserRepository,
	reports repository.ReportRepository,
	moods repository.MoodRepository,
	analytics AnalyticsProvider,
	opts ReportOptions,
) ReportService {
	return &reportService{
		users:     users,
		reports:   reports,
		timelines: NewTimelineBuilder(moods),
		analytics: analytics,
		opts:      opts.withDefaults(),
	}
}

// WeeklyReportID returns the stable id of the report for an ISO week
func WeeklyReportID(year, week int) string {
	return fmt.Sprintf("week-%d-%d", year, week)
}

func (s *reportService) GenerateWeeklyReport(ctx context.Context, target *time.Time) (*models.WeeklyReport, error) {
	t := s.opts.Now()
	if target != nil {
		t = *target
	}
	t = t.UTC()

	year, week := calendar.ISOWeek(t)
	id := WeeklyReportID(year, week)

	ctx = logger.WithReportID(ctx, id)
	// Shared runs outlive any one caller's cancellation
	shared := context.WithoutCancel(ctx)
	v, err, joined := s.inflight.Do(id, func() (any, error) {
		return s.generateWeekly(shared, id, year, week, calendar.StartOfWeek(t), calendar.EndOfWeek(t))
	})
	if err != nil {
		return nil, err
	}
	if joined {
		logger.Ctx(ctx).Debug("weekly report generation shared")
	}
	return v.(*models.WeeklyReport), nil
}

type weeklyRow struct {
	summary models.WeeklyPatientSummary
	active  bool
}

func (s *reportService) generateWeekly(ctx context.Context, id string, year, week int, weekStart, weekEnd time.Time) (*models.WeeklyReport, error) {
	log := logger.Ctx(ctx)
	started := time.Now()

	patients, err := s.users.List(ctx, models.UserFilter{
		Status: models.UserStatusActive,
		Role:   models.RolePatient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	priorStart := weekStart.AddDate(0, 0, -7)
	priorEnd := weekEnd.AddDate(0, 0, -7)

	p := pool.NewWithResults[weeklyRow]().
		WithContext(ctx).
		WithMaxGoroutines(s.opts.Concurrency).
		WithCancelOnError()
	for _, user := range patients {
		p.Go(func(ctx context.Context) (weeklyRow, error) {
			entries, err := s.timelines.BuildRange(ctx, user.ID, priorStart, weekEnd)
			if err != nil {
				return weeklyRow{}, fmt.Errorf("failed to build timeline for %s: %w", user.ID, err)
			}

			current := SummarizeTimeline(FilterByRange(entries, weekStart, weekEnd))
			if current.TotalEntries == 0 {
				return weeklyRow{}, nil
			}
			prior := SummarizeTimeline(FilterByRange(entries, priorStart, priorEnd))

			row := models.WeeklyPatientSummary{
				PatientSummary: patientSummary(user, current),
				Trend:          models.TrendStable,
			}
			if prior.TotalEntries > 0 {
				delta := round(current.AverageWellbeing-prior.AverageWellbeing, 2)
				row.WellbeingDelta = &delta
				row.Trend = classifyTrend(delta, s.opts.TrendThreshold)
			}
			return weeklyRow{summary: row, active: true}, nil
		})
	}
	rows, err := p.Wait()
	if err != nil {
		return nil, err
	}

	report := &models.WeeklyReport{
		ID:          id,
		Year:        year,
		WeekNumber:  week,
		WeekStart:   calendar.DateKey(weekStart),
		WeekEnd:     calendar.DateKey(weekEnd),
		GeneratedAt: s.opts.Now().UTC(),
		Patients:    make([]models.WeeklyPatientSummary, 0, len(rows)),
	}

	var wellbeing, risk, valence float64
	for _, row := range rows {
		if !row.active {
			continue
		}
		ps := row.summary
		report.Patients = append(report.Patients, ps)
		report.Summary.TotalEntries += ps.TotalEntries
		wellbeing += ps.AverageWellbeing
		risk += ps.AverageRisk
		valence += ps.AverageValence

		switch ps.Trend {
		case models.TrendImproving:
			report.Trends.Improving++
		case models.TrendDeclining:
			report.Trends.Declining++
		default:
			report.Trends.Stable++
		}
	}
	sort.Slice(report.Patients, func(i, j int) bool {
		return report.Patients[i].UserID < report.Patients[j].UserID
	})

	active := len(report.Patients)
	divisor := float64(max(active, 1))
	report.Summary.TotalPatients = len(patients)
	report.Summary.ActivePatients = active
	report.Summary.AverageWellbeing = round(wellbeing/divisor, 2)
	report.Summary.AverageRisk = round(risk/divisor, 2)
	report.Summary.AverageValence = round(valence/divisor, 2)

	if err := s.reports.Upsert(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save weekly report: %w", err)
	}

	log.Info("weekly report generated",
		logger.Int("patients", report.Summary.TotalPatients),
		logger.Int("active_patients", active),
		logger.Int("entries", report.Summary.TotalEntries),
		logger.Duration("duration", time.Since(started)),
	)
	return report, nil
}

func classifyTrend(delta, threshold float64) models.Trend {
	switch {
	case delta > threshold:
		return models.TrendImproving
	case delta < -threshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func (s *reportService) GetWeeklyReport(ctx context.Context, id string) (*models.WeeklyReport, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly report: %w", err)
	}
	return report, nil
}

func (s *reportService) ListWeeklyReports(ctx context.Context, limit int) ([]models.WeeklyReport, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	if limit > MaxReportLimit {
		limit = MaxReportLimit
	}

	reports, err := s.reports.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly reports: %w", err)
	}
	return reports, nil
}

// summarizePatients computes each patient's metrics over [start, end] with
// bounded concurrency. Patients without entries in range are dropped.
func (s *reportService) summarizePatients(ctx context.Context, users []models.User, start, end time.Time) ([]models.PatientSummary, error) {
	type row struct {
		summary models.PatientSummary
		ok      bool
	}

	p := pool.NewWithResults[row]().
		WithContext(ctx).
		WithMaxGoroutines(s.opts.Concurrency).
		WithCancelOnError()
	for _, user := range users {
		p.Go(func(ctx context.Context) (row, error) {
			entries, err := s.timelines.BuildRange(ctx, user.ID, start, end)
			if err != nil {
				return row{}, fmt.Errorf("failed to build timeline for %s: %w", user.ID, err)
			}
			metrics := SummarizeTimeline(entries)
			if metrics.TotalEntries == 0 {
				return row{}, nil
			}
			return row{summary: patientSummary(user, metrics), ok: true}, nil
		})
	}
	rows, err := p.Wait()
	if err != nil {
		return nil, err
	}

	out := make([]models.PatientSummary, 0, len(rows))
	for _, r := range rows {
		if r.ok {
			out = append(out, r.summary)
		}
	}
	return out, nil
}

func patientSummary(user models.User, metrics models.AggregatedMetrics) models.PatientSummary {
	return models.PatientSummary{
		UserID:            user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Status:            user.Status,
		AggregatedMetrics: metrics,
	}
}
