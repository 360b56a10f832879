package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

func (s *reportService) GroupPatientsByEmotionalState(ctx context.Context, filters models.ReportFilters) (*models.PatientGrouping, error) {
	now := s.opts.Now().UTC()
	rng, err := ResolveDateRange(filters, now, s.opts.DefaultMonths)
	if err != nil {
		return nil, err
	}

	userFilter := models.UserFilter{Role: models.RolePatient}
	if !filters.IncludeInactive {
		userFilter.Status = models.UserStatusActive
	}
	users, err := s.users.List(ctx, userFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	summaries, err := s.summarizePatients(ctx, users, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	grouping := GroupPatients(summaries, s.opts.UpperPercentile, s.opts.LowerPercentile)
	grouping.Range = rangeInfo(rng)
	grouping.GeneratedAt = now

	logger.Ctx(ctx).Debug("patients grouped",
		logger.Int("best", grouping.Counts.Best),
		logger.Int("average", grouping.Counts.Average),
		logger.Int("worst", grouping.Counts.Worst),
		logger.Bool("dynamic", grouping.Thresholds.Dynamic),
	)
	return grouping, nil
}

// GroupPatients tiers patients using cut-offs taken from the population's
// own wellbeing and risk distributions. An empty population gets the fixed
// default thresholds. Best is evaluated before worst.
func GroupPatients(patients []models.PatientSummary, upper, lower float64) *models.PatientGrouping {
	g := &models.PatientGrouping{
		Thresholds: models.GroupingThresholds{
			Best:  models.Threshold{Wellbeing: defaultBestWellbeing, Risk: defaultBestRisk},
			Worst: models.Threshold{Wellbeing: defaultWorstWellbeing, Risk: defaultWorstRisk},
		},
		Best:    make([]models.PatientSummary, 0),
		Average: make([]models.PatientSummary, 0),
		Worst:   make([]models.PatientSummary, 0),
	}
	if len(patients) == 0 {
		return g
	}

	wellbeing := make([]float64, 0, len(patients))
	risk := make([]float64, 0, len(patients))
	for _, p := range patients {
		wellbeing = append(wellbeing, p.AverageWellbeing)
		risk = append(risk, p.AverageRisk)
	}
	sort.Float64s(wellbeing)
	sort.Float64s(risk)

	g.Thresholds = models.GroupingThresholds{
		Best: models.Threshold{
			Wellbeing: percentile(wellbeing, upper),
			Risk:      percentile(risk, lower),
		},
		Worst: models.Threshold{
			Wellbeing: percentile(wellbeing, lower),
			Risk:      percentile(risk, upper),
		},
		Dynamic: true,
	}

	best, worst := g.Thresholds.Best, g.Thresholds.Worst
	for _, p := range patients {
		switch {
		case p.AverageWellbeing >= best.Wellbeing && p.AverageRisk <= best.Risk:
			g.Best = append(g.Best, p)
		case p.AverageWellbeing <= worst.Wellbeing && p.AverageRisk >= worst.Risk:
			g.Worst = append(g.Worst, p)
		default:
			g.Average = append(g.Average, p)
		}
	}

	sortFavorable(g.Best)
	sortFavorable(g.Average)
	sort.SliceStable(g.Worst, func(i, j int) bool {
		a, b := g.Worst[i], g.Worst[j]
		if a.AverageWellbeing != b.AverageWellbeing {
			return a.AverageWellbeing < b.AverageWellbeing
		}
		if a.AverageRisk != b.AverageRisk {
			return a.AverageRisk > b.AverageRisk
		}
		return a.UserID < b.UserID
	})

	g.Counts = models.GroupCounts{
		Best:    len(g.Best),
		Average: len(g.Average),
		Worst:   len(g.Worst),
		Total:   len(patients),
	}
	return g
}

// percentile returns sorted[floor(n*p)], clamped to the last element
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Floor(float64(len(sorted)) * p))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// sortFavorable orders by wellbeing descending, then risk ascending
func sortFavorable(list []models.PatientSummary) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.AverageWellbeing != b.AverageWellbeing {
			return a.AverageWellbeing > b.AverageWellbeing
		}
		if a.AverageRisk != b.AverageRisk {
			return a.AverageRisk < b.AverageRisk
		}
		return a.UserID < b.UserID
	})
}
