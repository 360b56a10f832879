// Package calendar implements the UTC calendar arithmetic used by the
// analytics engine. Every function works on year/month/day values in UTC so
// report windows do not depend on the deployment's local timezone.
package calendar

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates (YYYY-MM-DD)
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format for calendar months (YYYY-MM)
	MonthLayout = "2006-01"
	// TimestampLayout is a fixed-width ISO-8601 layout with millisecond
	// precision. Fixed width keeps lexicographic order equal to time order.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	// Week is the length of a calendar week
	Week = 7 * 24 * time.Hour
)

// ParseDate parses a YYYY-MM-DD string into UTC midnight of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM string into UTC midnight of the first day of
// that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return t, nil
}

// StartOfDay returns 00:00:00.000 UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// StartOfWeek returns the Monday 00:00:00.000 UTC of the week containing t.
// Sunday belongs to the week that started six days earlier.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

// EndOfWeek returns the Sunday 23:59:59.999 UTC of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// ISOWeek returns the ISO 8601 year and week number of t's UTC day. Week 1
// is the week containing the year's first Thursday, so late-December dates
// can belong to week 1 of the following year.
func ISOWeek(t time.Time) (year, week int) {
	return StartOfDay(t).ISOWeek()
}

// AddMonths shifts t by n calendar months. Day overflow rolls into the next
// month (Jan 31 + 1 month = Mar 2 or 3), matching time.AddDate.
func AddMonths(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, n, 0)
}

// MonthsBetween returns the number of calendar months touched by the range
// [start, end], counting both ends. It returns at least 1.
func MonthsBetween(start, end time.Time) int {
	start, end = start.UTC(), end.UTC()
	n := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if n < 1 {
		return 1
	}
	return n
}

// MonthKey formats t's UTC month as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// DateKey formats t's UTC day as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// MonthKeysBack returns n contiguous month keys ending at focus, oldest first.
func MonthKeysBack(focus time.Time, n int) []string {
	if n < 1 {
		n = 1
	}
	first := time.Date(focus.UTC().Year(), focus.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, MonthKey(first.AddDate(0, -i, 0)))
	}
	return keys
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NormalizeTimestamp truncates t to millisecond precision in UTC.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// UntilNextMonday returns the delay from now until the next Monday
// 00:00:00.000 UTC. The result is always strictly positive: on a Monday the
// next run is a full week ahead.
func UntilNextMonday(now time.Time) time.Duration {
	now = now.UTC()
	days := (8 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	next := StartOfDay(now).AddDate(0, 0, days)
	return next.Sub(now)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
