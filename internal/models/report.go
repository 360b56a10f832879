package models

import "time"

// Trend classifies a patient's week-over-week wellbeing change
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// PatientSummary is a patient's aggregate over a date range
type PatientSummary struct {
	UserID            string     `json:"user_id" bson:"user_id"`
	Name              string     `json:"name" bson:"name"`
	Email             string     `json:"email" bson:"email"`
	Status            UserStatus `json:"status" bson:"status"`
	AggregatedMetrics `bson:",inline"`
}

// WeeklyPatientSummary is a patient row in a weekly report. WellbeingDelta
// is nil when the patient had no entries in the prior week.
type WeeklyPatientSummary struct {
	PatientSummary `bson:",inline"`
	Trend          Trend    `json:"trend" bson:"trend"`
	WellbeingDelta *float64 `json:"wellbeing_delta" bson:"wellbeing_delta"`
}

// WeeklySummary is the population summary of a weekly report
type WeeklySummary struct {
	TotalPatients    int     `json:"total_patients" bson:"total_patients"`
	ActivePatients   int     `json:"active_patients" bson:"active_patients"`
	TotalEntries     int     `json:"total_entries" bson:"total_entries"`
	AverageWellbeing float64 `json:"average_wellbeing" bson:"average_wellbeing"`
	AverageRisk      float64 `json:"average_risk" bson:"average_risk"`
	AverageValence   float64 `json:"average_valence" bson:"average_valence"`
}

// TrendCounts counts patients per trend
type TrendCounts struct {
	Improving int `json:"improving" bson:"improving"`
	Stable    int `json:"stable" bson:"stable"`
	Declining int `json:"declining" bson:"declining"`
}

// WeeklyReport is the persisted snapshot of one ISO week
type WeeklyReport struct {
	ID          string                 `json:"id" bson:"_id"`
	Year        int                    `json:"year" bson:"year"`
	WeekNumber  int                    `json:"week_number" bson:"week_number"`
	WeekStart   string                 `json:"week_start" bson:"week_start"`
	WeekEnd     string                 `json:"week_end" bson:"week_end"`
	GeneratedAt time.Time              `json:"generated_at" bson:"generated_at"`
	Summary     WeeklySummary          `json:"summary" bson:"summary"`
	Patients    []WeeklyPatientSummary `json:"patients" bson:"patients"`
	Trends      TrendCounts            `json:"trends" bson:"trends"`
}

// PatientInfo identifies the subject of an evolution report
type PatientInfo struct {
	UserID string     `json:"user_id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Status UserStatus `json:"status"`
}

// StreakInfo carries streaks sourced from full-history analytics
type StreakInfo struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// TopMood is one entry of the mood frequency histogram
type TopMood struct {
	MoodID     string  `json:"mood_id"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PeriodSummary is the summary of one weekly or monthly bucket
type PeriodSummary struct {
	Period            string `json:"period"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	AggregatedMetrics
}

// EvolutionDay is a single day of the evolution timeline. Wellbeing and
// Risk are averaged over the day's own moods, not the period.
type EvolutionDay struct {
	Date      string   `json:"date"`
	DayScore  float64  `json:"day_score"`
	Wellbeing float64  `json:"wellbeing"`
	Risk      float64  `json:"risk"`
	MoodCount int      `json:"mood_count"`
	Moods     []string `json:"moods"`
}

// PatientEvolutionReport is a multi-period roll-up for a single patient
type PatientEvolutionReport struct {
	Patient          PatientInfo       `json:"patient"`
	Range            RangeInfo         `json:"range"`
	Summary          AggregatedMetrics `json:"summary"`
	Streaks          StreakInfo        `json:"streaks"`
	TopMoods         []TopMood         `json:"top_moods"`
	WeeklyEvolution  []PeriodSummary   `json:"weekly_evolution"`
	MonthlyEvolution []PeriodSummary   `json:"monthly_evolution"`
	Timeline         []EvolutionDay    `json:"timeline"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

// Threshold is a wellbeing/risk cut-off pair
type Threshold struct {
	Wellbeing float64 `json:"wellbeing"`
	Risk      float64 `json:"risk"`
}

// GroupingThresholds holds the cut-offs used to tier patients. Best is a
// wellbeing floor with a risk ceiling, Worst a wellbeing ceiling with a
// risk floor.
type GroupingThresholds struct {
	Best    Threshold `json:"best"`
	Worst   Threshold `json:"worst"`
	Dynamic bool      `json:"dynamic"`
}

// GroupCounts counts patients per tier
type GroupCounts struct {
	Best    int `json:"best"`
	Average int `json:"average"`
	Worst   int `json:"worst"`
	Total   int `json:"total"`
}

// PatientGrouping partitions patients into best, average and worst tiers
type PatientGrouping struct {
	Range       RangeInfo          `json:"range"`
	Thresholds  GroupingThresholds `json:"thresholds"`
	Best        []PatientSummary   `json:"best"`
	Average     []PatientSummary   `json:"average"`
	Worst       []PatientSummary   `json:"worst"`
	Counts      GroupCounts        `json:"counts"`
	GeneratedAt time.Time          `json:"generated_at"`
}
