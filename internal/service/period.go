package service

import (
	"fmt"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// ResolveDateRange turns report filters into an inclusive UTC day range.
//
// A missing end date means today. A missing start date means
// (months-1) calendar months before the end. Reversed bounds are swapped
// and re-normalized to whole days. MonthsRange is the explicit months
// filter when given, otherwise the number of calendar months the range
// touches, clamped to 1..12 either way.
func ResolveDateRange(filters models.ReportFilters, now time.Time, defaultMonths int) (models.DateRange, error) {
	months := defaultMonths
	if filters.Months != nil {
		months = *filters.Months
	}
	months = calendar.Clamp(months, 1, MaxMonths)

	end := calendar.EndOfDay(now)
	if filters.EndDate != "" {
		t, err := calendar.ParseDate(filters.EndDate)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: endDate: %w", repository.ErrValidation, err)
		}
		end = calendar.EndOfDay(t)
	}

	start := calendar.StartOfDay(calendar.AddMonths(end, -(months - 1)))
	if filters.StartDate != "" {
		t, err := calendar.ParseDate(filters.StartDate)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: startDate: %w", repository.ErrValidation, err)
		}
		start = calendar.StartOfDay(t)
	}

	if start.After(end) {
		start, end = calendar.StartOfDay(end), calendar.EndOfDay(start)
	}

	monthsRange := calendar.MonthsBetween(start, end)
	if filters.Months != nil {
		monthsRange = *filters.Months
	}

	return models.DateRange{
		Start:       start,
		End:         end,
		MonthsRange: calendar.Clamp(monthsRange, 1, MaxMonths),
	}, nil
}

func rangeInfo(r models.DateRange) models.RangeInfo {
	return models.RangeInfo{
		StartDate:   calendar.DateKey(r.Start),
		EndDate:     calendar.DateKey(r.End),
		MonthsRange: r.MonthsRange,
	}
}
