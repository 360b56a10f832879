package service

import (
	"runtime"
	"time"
)

const (
	// DefaultTrendThreshold is the wellbeing delta (0-100 scale) beyond which
	// a patient counts as improving or declining
	DefaultTrendThreshold = 5.0

	// Percentiles of the population used as dynamic grouping cut-offs
	DefaultUpperPercentile = 0.75
	DefaultLowerPercentile = 0.25

	// DefaultMonths is the report window when no range is given
	DefaultMonths = 3

	// MaxMonths bounds every report window and timeline lookback
	MaxMonths = 12

	DefaultReportLimit = 10
	MaxReportLimit     = 52

	// TopMoodCount is the size of the evolution report's mood histogram
	TopMoodCount = 5
)

// Fixed grouping thresholds used when no patient has data
var (
	defaultBestWellbeing  = 70.0
	defaultBestRisk       = 30.0
	defaultWorstWellbeing = 40.0
	defaultWorstRisk      = 60.0
)

// ReportOptions tunes the aggregation engine
type ReportOptions struct {
	TrendThreshold  float64
	UpperPercentile float64
	LowerPercentile float64
	DefaultMonths   int
	// Concurrency bounds per-patient fan-out
	Concurrency int
	// Now overrides the clock; nil means time.Now
	Now func() time.Time
}

// DefaultReportOptions returns the stock thresholds
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		TrendThreshold:  DefaultTrendThreshold,
		UpperPercentile: DefaultUpperPercentile,
		LowerPercentile: DefaultLowerPercentile,
		DefaultMonths:   DefaultMonths,
		Concurrency:     runtime.GOMAXPROCS(0),
	}
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.DefaultMonths < 1 || o.DefaultMonths > MaxMonths {
		o.DefaultMonths = DefaultMonths
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.UpperPercentile <= 0 || o.UpperPercentile >= 1 {
		o.UpperPercentile = DefaultUpperPercentile
	}
	if o.LowerPercentile < 0 || o.LowerPercentile > o.UpperPercentile {
		o.LowerPercentile = DefaultLowerPercentile
	}
	if o.TrendThreshold < 0 {
		o.TrendThreshold = DefaultTrendThreshold
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
