package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// MemoryStore is an in-process Store used for local development and tests
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]models.User
	days    map[string]map[string][]models.MoodSelection // user id -> date -> moods
	reports map[string]models.WeeklyReport
}

// Seed is the fixture format accepted by LoadSeed
type Seed struct {
	Users []models.User                                `json:"users"`
	Moods map[string]map[string][]models.MoodSelection `json:"moods"`
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]models.User),
		days:    make(map[string]map[string][]models.MoodSelection),
		reports: make(map[string]models.WeeklyReport),
	}
}

// LoadSeed reads a JSON fixture file into the store
func (s *MemoryStore) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to decode seed file: %w", err)
	}

	for _, u := range seed.Users {
		s.PutUser(u)
	}
	for userID, byDate := range seed.Moods {
		for date, moods := range byDate {
			if _, _, err := splitDate(date); err != nil {
				return fmt.Errorf("seed moods for %s: %w", userID, err)
			}
			s.putDay(userID, date, normalizeSelections(moods))
		}
	}
	return nil
}

// PutUser inserts or replaces a directory entry
func (s *MemoryStore) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// putDay writes a day without cap or user checks, as legacy data may.
func (s *MemoryStore) putDay(userID, date string, moods []models.MoodSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.days[userID] == nil {
		s.days[userID] = make(map[string][]models.MoodSelection)
	}
	s.days[userID][date] = moods
}

func (s *MemoryStore) Moods() MoodRepository     { return &memoryMoodRepository{s: s} }
func (s *MemoryStore) Users() UserRepository     { return &memoryUserRepository{s: s} }
func (s *MemoryStore) Reports() ReportRepository { return &memoryReportRepository{s: s} }

func (s *MemoryStore) Ping(ctx context.Context) error  { return ctx.Err() }
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

func copySelections(moods []models.MoodSelection) []models.MoodSelection {
	out := make([]models.MoodSelection, len(moods))
	copy(out, moods)
	return out
}

type memoryMoodRepository struct {
	s *MemoryStore
}

func (r *memoryMoodRepository) GetMonth(ctx context.Context, userID, month string) (*models.MoodMonth, error) {
	year, mon, err := monthOf(month)
	if err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := &models.MoodMonth{
		UserID: userID,
		Year:   year,
		Month:  mon,
		Days:   make(map[string]models.DayMoodRecord),
	}
	for date, moods := range r.s.days[userID] {
		if date[:7] != month {
			continue
		}
		result.Days[date[8:]] = models.DayMoodRecord{Date: date, Moods: copySelections(moods)}
	}
	return result, nil
}

func (r *memoryMoodRepository) GetDay(ctx context.Context, userID, date string) (*models.DayMoodRecord, error) {
	if _, _, err := splitDate(date); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return &models.DayMoodRecord{Date: date, Moods: copySelections(r.s.days[userID][date])}, nil
}

func (r *memoryMoodRepository) AddMood(ctx context.Context, userID, date string, mood models.MoodSelection) (*models.DayMoodRecord, error) {
	if _, _, err := splitDate(date); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return nil, notFound("user", userID)
	}

	existing := r.s.days[userID][date]
	if len(existing) >= maxMoods {
		return nil, limitExceeded(date)
	}

	moods := append(copySelections(existing), normalizeSelections([]models.MoodSelection{mood})...)
	if r.s.days[userID] == nil {
		r.s.days[userID] = make(map[string][]models.MoodSelection)
	}
	r.s.days[userID][date] = moods

	return &models.DayMoodRecord{Date: date, Moods: copySelections(moods)}, nil
}

func (r *memoryMoodRepository) UpsertDay(ctx context.Context, userID, date string, moods []models.MoodSelection) (*models.DayMoodRecord, error) {
	if _, _, err := splitDate(date); err != nil {
		return nil, err
	}
	if len(moods) > maxMoods {
		return nil, limitExceeded(date)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return nil, notFound("user", userID)
	}

	normalized := normalizeSelections(moods)
	if len(normalized) == 0 {
		delete(r.s.days[userID], date)
	} else {
		if r.s.days[userID] == nil {
			r.s.days[userID] = make(map[string][]models.MoodSelection)
		}
		r.s.days[userID][date] = normalized
	}

	return &models.DayMoodRecord{Date: date, Moods: copySelections(normalized)}, nil
}

func (r *memoryMoodRepository) DeleteDay(ctx context.Context, userID, date string) error {
	if _, _, err := splitDate(date); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return notFound("user", userID)
	}
	delete(r.s.days[userID], date)
	return nil
}

type memoryUserRepository struct {
	s *MemoryStore
}

func (r *memoryUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	if filter.Limit > 0 && len(users) > filter.Limit {
		users = users[:filter.Limit]
	}
	return users, nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (r *memoryUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.users[id]
	return ok, nil
}

type memoryReportRepository struct {
	s *MemoryStore
}

func (r *memoryReportRepository) Upsert(ctx context.Context, report *models.WeeklyReport) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("%w: report id is required", ErrValidation)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *report
	stored.Patients = append([]models.WeeklyPatientSummary(nil), report.Patients...)
	r.s.reports[report.ID] = stored
	return nil
}

func (r *memoryReportRepository) GetByID(ctx context.Context, id string) (*models.WeeklyReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	report, ok := r.s.reports[id]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

func (r *memoryReportRepository) List(ctx context.Context, limit int) ([]models.WeeklyReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reports := make([]models.WeeklyReport, 0, len(r.s.reports))
	for _, report := range r.s.reports {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].WeekStart != reports[j].WeekStart {
			return reports[i].WeekStart > reports[j].WeekStart
		}
		return reports[i].ID > reports[j].ID
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}
