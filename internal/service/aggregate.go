package service

import (
	"math"

	"github.com/JonnyWalker81/moodtrack/backend/internal/catalog"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// SummarizeTimeline computes weighted averages over every mood occurrence in
// entries. Wellbeing and risk are scaled to 0-100, valence stays on -1..1.
// An empty input yields all-zero metrics and a nil LastEntryAt.
func SummarizeTimeline(entries []models.MoodTimelineEntry) models.AggregatedMetrics {
	var (
		wellbeing, risk, valence float64
		count, days              int
		positive, neutral, neg   int
		lastAt                   string
	)

	for _, e := range entries {
		if len(e.Moods) > 0 {
			days++
		}
		for _, m := range e.Moods {
			p := catalog.Profile(m.MoodID)
			wellbeing += p.WellbeingWeight
			risk += p.RiskWeight
			valence += p.Valence
			count++

			// fixed-width UTC timestamps order lexicographically
			if m.At > lastAt {
				lastAt = m.At
			}

			switch catalog.ClassifyTone(p.Valence) {
			case models.TonePositive:
				positive++
			case models.ToneNegative:
				neg++
			default:
				neutral++
			}
		}
	}

	metrics := models.AggregatedMetrics{
		TotalEntries: count,
		DaysTracked:  days,
	}
	if count == 0 {
		return metrics
	}

	n := float64(count)
	metrics.AverageWellbeing = round(wellbeing/n*100, 2)
	metrics.AverageRisk = round(risk/n*100, 2)
	metrics.AverageValence = round(valence/n, 2)
	metrics.Sentiment = models.SentimentDistribution{
		Positive: round(float64(positive)/n*100, 1),
		Neutral:  round(float64(neutral)/n*100, 1),
		Negative: round(float64(neg)/n*100, 1),
	}
	if lastAt != "" {
		metrics.LastEntryAt = &lastAt
	}
	return metrics
}

// dayAverages returns the wellbeing and risk of one day averaged over that
// day's own moods, on the 0-100 scale.
func dayAverages(e models.MoodTimelineEntry) (wellbeing, risk float64) {
	if len(e.Moods) == 0 {
		return 0, 0
	}
	for _, m := range e.Moods {
		p := catalog.Profile(m.MoodID)
		wellbeing += p.WellbeingWeight
		risk += p.RiskWeight
	}
	n := float64(len(e.Moods))
	return round(wellbeing/n*100, 2), round(risk/n*100, 2)
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
