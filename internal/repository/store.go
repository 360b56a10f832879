package repository

import (
	"context"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// Store bundles the repositories of one storage backend
type Store interface {
	Moods() MoodRepository
	Users() UserRepository
	Reports() ReportRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// normalizeSelections returns a copy of moods with timestamps rewritten to
// the canonical millisecond UTC form. Unparseable timestamps are dropped.
func normalizeSelections(moods []models.MoodSelection) []models.MoodSelection {
	out := make([]models.MoodSelection, 0, len(moods))
	for _, m := range moods {
		m.At = normalizeAt(m.At)
		out = append(out, m)
	}
	return out
}

func normalizeAt(at string) string {
	if at == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return ""
	}
	return calendar.FormatTimestamp(calendar.NormalizeTimestamp(t))
}
