package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
)

// Error taxonomy shared by every adapter. Callers match with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrLimitExceeded = errors.New("limit exceeded")
	ErrUpstream      = errors.New("upstream failure")
)

// upstream wraps a store I/O failure so it matches both ErrUpstream and the
// driver's own error.
func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

func notFound(resource, id string) error {
	return fmt.Errorf("%s %q: %w", resource, id, ErrNotFound)
}

func limitExceeded(date string) error {
	return fmt.Errorf("day %s already has %d moods: %w", date, maxMoods, ErrLimitExceeded)
}

// splitDate validates a YYYY-MM-DD date and returns its month key and
// two-digit day key.
func splitDate(date string) (monthKey, dayKey string, err error) {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	key := calendar.DateKey(t)
	return key[:7], key[8:], nil
}

// monthOf validates a YYYY-MM month key and returns its year and month.
func monthOf(month string) (int, int, error) {
	t, err := calendar.ParseMonth(month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return t.Year(), int(t.Month()), nil
}

// monthDocumentID is the primary key of a user-month document
func monthDocumentID(userID, month string) string {
	return userID + "_" + month
}

// monthFromDocumentID recovers the YYYY-MM suffix of a user-month key
func monthFromDocumentID(id string) string {
	i := strings.LastIndex(id, "_")
	if i < 0 {
		return ""
	}
	return id[i+1:]
}
