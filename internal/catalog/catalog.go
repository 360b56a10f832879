// Package catalog maps mood identifiers to their psychological dimension
// weights. Lookups are total: unknown ids resolve to a neutral fallback.
package catalog

import (
	"sort"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// Tone thresholds on valence
const (
	PositiveThreshold = 0.4
	NegativeThreshold = -0.4
)

// Fallback weights for unknown mood ids
const (
	fallbackValence    = 0.0
	fallbackActivation = 0.5
	fallbackDominance  = 0.5
	fallbackRisk       = 0.2
	fallbackWellbeing  = 0.2
)

var profiles = map[string]models.MoodProfile{
	"happy":       {MoodID: "happy", Label: "Happy", Valence: 0.8, Activation: 0.6, Dominance: 0.7, RiskWeight: 0.05, WellbeingWeight: 0.9},
	"grateful":    {MoodID: "grateful", Label: "Grateful", Valence: 0.8, Activation: 0.4, Dominance: 0.6, RiskWeight: 0.05, WellbeingWeight: 0.9},
	"calm":        {MoodID: "calm", Label: "Calm", Valence: 0.6, Activation: 0.2, Dominance: 0.7, RiskWeight: 0.05, WellbeingWeight: 0.8},
	"excited":     {MoodID: "excited", Label: "Excited", Valence: 0.7, Activation: 0.9, Dominance: 0.6, RiskWeight: 0.1, WellbeingWeight: 0.8},
	"motivated":   {MoodID: "motivated", Label: "Motivated", Valence: 0.7, Activation: 0.7, Dominance: 0.8, RiskWeight: 0.05, WellbeingWeight: 0.85},
	"content":     {MoodID: "content", Label: "Content", Valence: 0.5, Activation: 0.3, Dominance: 0.6, RiskWeight: 0.1, WellbeingWeight: 0.7},
	"neutral":     {MoodID: "neutral", Label: "Neutral", Valence: 0.0, Activation: 0.4, Dominance: 0.5, RiskWeight: 0.2, WellbeingWeight: 0.5},
	"tired":       {MoodID: "tired", Label: "Tired", Valence: -0.2, Activation: 0.1, Dominance: 0.3, RiskWeight: 0.3, WellbeingWeight: 0.4},
	"bored":       {MoodID: "bored", Label: "Bored", Valence: -0.3, Activation: 0.2, Dominance: 0.4, RiskWeight: 0.25, WellbeingWeight: 0.35},
	"anxious":     {MoodID: "anxious", Label: "Anxious", Valence: -0.6, Activation: 0.8, Dominance: 0.2, RiskWeight: 0.7, WellbeingWeight: 0.2},
	"stressed":    {MoodID: "stressed", Label: "Stressed", Valence: -0.5, Activation: 0.8, Dominance: 0.3, RiskWeight: 0.6, WellbeingWeight: 0.25},
	"sad":         {MoodID: "sad", Label: "Sad", Valence: -0.7, Activation: 0.2, Dominance: 0.2, RiskWeight: 0.7, WellbeingWeight: 0.15},
	"lonely":      {MoodID: "lonely", Label: "Lonely", Valence: -0.6, Activation: 0.2, Dominance: 0.2, RiskWeight: 0.75, WellbeingWeight: 0.15},
	"angry":       {MoodID: "angry", Label: "Angry", Valence: -0.7, Activation: 0.9, Dominance: 0.6, RiskWeight: 0.65, WellbeingWeight: 0.15},
	"frustrated":  {MoodID: "frustrated", Label: "Frustrated", Valence: -0.5, Activation: 0.7, Dominance: 0.4, RiskWeight: 0.55, WellbeingWeight: 0.25},
	"overwhelmed": {MoodID: "overwhelmed", Label: "Overwhelmed", Valence: -0.7, Activation: 0.8, Dominance: 0.1, RiskWeight: 0.8, WellbeingWeight: 0.1},
	"hopeless":    {MoodID: "hopeless", Label: "Hopeless", Valence: -0.9, Activation: 0.1, Dominance: 0.05, RiskWeight: 0.95, WellbeingWeight: 0.05},
}

// Profile returns the profile for moodID. It never fails: unknown ids get
// the fallback weights, stamped with the requested id as both id and label.
func Profile(moodID string) models.MoodProfile {
	if p, ok := profiles[moodID]; ok {
		return p
	}
	return models.MoodProfile{
		MoodID:          moodID,
		Label:           moodID,
		Valence:         fallbackValence,
		Activation:      fallbackActivation,
		Dominance:       fallbackDominance,
		RiskWeight:      fallbackRisk,
		WellbeingWeight: fallbackWellbeing,
	}
}

// Known reports whether moodID is in the catalog
func Known(moodID string) bool {
	_, ok := profiles[moodID]
	return ok
}

// All returns every catalog profile sorted by id
func All() []models.MoodProfile {
	out := make([]models.MoodProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MoodID < out[j].MoodID })
	return out
}

// ClassifyTone maps a valence to a tone using fixed ±0.4 thresholds
func ClassifyTone(valence float64) models.Tone {
	switch {
	case valence >= PositiveThreshold:
		return models.TonePositive
	case valence <= NegativeThreshold:
		return models.ToneNegative
	default:
		return models.ToneNeutral
	}
}
