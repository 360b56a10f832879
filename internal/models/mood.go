package models

// Tone is a coarse classification of a mood's valence
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// MaxMoodsPerDay is the write-time cap on selections for a single day
const MaxMoodsPerDay = 3

// MoodProfile holds the psychological dimension weights of a mood
type MoodProfile struct {
	MoodID          string  `json:"mood_id"`
	Label           string  `json:"label"`
	Valence         float64 `json:"valence"`
	Activation      float64 `json:"activation"`
	Dominance       float64 `json:"dominance"`
	RiskWeight      float64 `json:"risk_weight"`
	WellbeingWeight float64 `json:"wellbeing_weight"`
}

// MoodSelection is one mood logged on a day. At is a fixed-width UTC
// timestamp so it can be compared as a string.
type MoodSelection struct {
	MoodID string `json:"mood_id"`
	Note   string `json:"note,omitempty"`
	At     string `json:"at,omitempty"`
}

// DayMoodRecord holds the moods logged on one calendar day
type DayMoodRecord struct {
	Date  string          `json:"date"`
	Moods []MoodSelection `json:"moods"`
}

// MoodMonth is one user's mood records for a calendar month, keyed by the
// two-digit day of month.
type MoodMonth struct {
	UserID string                   `json:"user_id"`
	Year   int                      `json:"year"`
	Month  int                      `json:"month"`
	Days   map[string]DayMoodRecord `json:"days"`
}

// MoodInput is the request body for logging a mood
type MoodInput struct {
	MoodID string  `json:"mood_id" binding:"required,max=64"`
	Note   string  `json:"note" binding:"max=500"`
	At     *string `json:"at" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpsertDayRequest replaces all moods of a day
type UpsertDayRequest struct {
	Moods []MoodInput `json:"moods" binding:"max=3,dive"`
}

// TimelineMood is a mood occurrence enriched with its tone
type TimelineMood struct {
	MoodID string `json:"mood_id"`
	Tone   Tone   `json:"tone"`
	At     string `json:"at,omitempty"`
	Note   string `json:"note,omitempty"`
}

// MoodTimelineEntry is one tracked day in a timeline
type MoodTimelineEntry struct {
	Date     string         `json:"date"`
	DayScore float64        `json:"day_score"`
	Moods    []TimelineMood `json:"moods"`
}

// Timeline is a chronologically ordered view over a user's day records
type Timeline struct {
	Months  []string            `json:"months"`
	Entries []MoodTimelineEntry `json:"entries"`
}

// SentimentDistribution holds tone percentages
type SentimentDistribution struct {
	Positive float64 `json:"positive" bson:"positive"`
	Neutral  float64 `json:"neutral" bson:"neutral"`
	Negative float64 `json:"negative" bson:"negative"`
}

// AggregatedMetrics summarizes mood occurrences over a window. Wellbeing and
// risk are on a 0-100 scale.
type AggregatedMetrics struct {
	AverageWellbeing float64               `json:"average_wellbeing" bson:"average_wellbeing"`
	AverageRisk      float64               `json:"average_risk" bson:"average_risk"`
	AverageValence   float64               `json:"average_valence" bson:"average_valence"`
	TotalEntries     int                   `json:"total_entries" bson:"total_entries"`
	DaysTracked      int                   `json:"days_tracked" bson:"days_tracked"`
	LastEntryAt      *string               `json:"last_entry_at" bson:"last_entry_at"`
	Sentiment        SentimentDistribution `json:"sentiment" bson:"sentiment"`
}

// MoodAnalytics is a user's full-history tracking summary
type MoodAnalytics struct {
	CurrentStreak    int     `json:"current_streak"`
	LongestStreak    int     `json:"longest_streak"`
	DaysTracked      int     `json:"days_tracked"`
	TotalEntries     int     `json:"total_entries"`
	LastEntryDate    *string `json:"last_entry_date"`
	MostFrequentMood *string `json:"most_frequent_mood"`
}
