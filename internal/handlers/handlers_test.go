package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/auth"
	"github.com/JonnyWalker81/moodtrack/backend/internal/cache"
	"github.com/JonnyWalker81/moodtrack/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
	"github.com/JonnyWalker81/moodtrack/backend/internal/service/mocks"
)

type tokenTable map[string]string

func (t tokenTable) Verify(_ context.Context, token string) (*auth.Identity, error) {
	uid, ok := t[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Identity{UID: uid}, nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type testAPI struct {
	router  *gin.Engine
	moods   *mocks.MockMoodService
	reports *mocks.MockReportService
}

func newTestAPI(t *testing.T, ping pingFunc) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	moods := mocks.NewMockMoodService(ctrl)
	reports := mocks.NewMockReportService(ctrl)

	store := repository.NewMemoryStore()
	store.PutUser(models.User{ID: "p1", Role: models.RolePatient, Status: models.UserStatusActive})
	store.PutUser(models.User{ID: "p2", Role: models.RolePatient, Status: models.UserStatusActive})
	store.PutUser(models.User{ID: "s1", Role: models.RoleStaff, Status: models.UserStatusActive})
	store.PutUser(models.User{ID: "a1", Role: models.RoleAdmin, Status: models.UserStatusActive})

	c := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	if ping == nil {
		ping = store.Ping
	}

	limiter := middleware.NewRateLimiter(100, time.Minute, "test-generate")
	t.Cleanup(limiter.Stop)

	router := gin.New()
	Routes{
		Moods:           NewMoodHandler(moods),
		Reports:         NewReportHandler(reports),
		Health:          NewHealthHandler(ping, "test"),
		Verifier:        tokenTable{"tok-p1": "p1", "tok-s1": "s1", "tok-a1": "a1"},
		Resolver:        auth.NewResolver(store.Users(), c, time.Minute),
		GenerateLimiter: limiter,
	}.Register(router)

	return &testAPI{router: router, moods: moods, reports: reports}
}

func (a *testAPI) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) apierror.ProblemDetails {
	t.Helper()
	require.Equal(t, apierror.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	var p apierror.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, nil)
	w := api.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)

	down := newTestAPI(t, func(context.Context) error { return errors.New("no primary") })
	w = down.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetCatalog(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodGet, "/api/v1/moods/catalog", "tok-p1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Moods []models.MoodProfile `json:"moods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Moods, 17)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/moods/catalog", "", "").Code)
}

func TestGetDayRejectsBadDate(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodGet, "/api/v1/moods/days/2024-13-01", "tok-p1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, apierror.TypeInvalidDate, p.Type)
}

func TestAddMood(t *testing.T) {
	api := newTestAPI(t, nil)

	api.moods.EXPECT().
		AddMood(gomock.Any(), "p1", "2024-06-03", models.MoodInput{MoodID: "feliz"}).
		Return(&models.DayMoodRecord{Date: "2024-06-03", Moods: []models.MoodSelection{{MoodID: "feliz"}}}, nil)

	w := api.do(http.MethodPost, "/api/v1/moods/days/2024-06-03", "tok-p1", `{"mood_id":"feliz"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var day models.DayMoodRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	assert.Equal(t, "2024-06-03", day.Date)
	assert.Len(t, day.Moods, 1)
}

func TestAddMoodMissingIDIsValidationProblem(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodPost, "/api/v1/moods/days/2024-06-03", "tok-p1", `{"note":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, apierror.TypeValidation, p.Type)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "moodID", p.Errors[0].Field)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"not found", fmt.Errorf("day: %w", repository.ErrNotFound), http.StatusNotFound, apierror.TypeNotFound},
		{"validation", fmt.Errorf("%w: unknown mood", repository.ErrValidation), http.StatusBadRequest, apierror.TypeBadRequest},
		{"limit", repository.ErrLimitExceeded, http.StatusConflict, apierror.TypeLimitExceeded},
		{"upstream", fmt.Errorf("find: %w: %w", repository.ErrUpstream, errors.New("socket closed")), http.StatusServiceUnavailable, apierror.TypeUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, apierror.TypeUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, apierror.TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, nil)
			api.moods.EXPECT().GetDay(gomock.Any(), "p1", "2024-06-03").Return(nil, tt.err)

			w := api.do(http.MethodGet, "/api/v1/moods/days/2024-06-03", "tok-p1", "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.typ, decodeProblem(t, w).Type)
			if tt.status == http.StatusServiceUnavailable {
				assert.NotEmpty(t, w.Header().Get("Retry-After"))
			}
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	api := newTestAPI(t, nil)
	api.moods.EXPECT().GetAnalytics(gomock.Any(), "p1").Return(nil, errors.New("secret connection string"))

	w := api.do(http.MethodGet, "/api/v1/moods/analytics", "tok-p1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret connection string")
}

func TestDeleteDay(t *testing.T) {
	api := newTestAPI(t, nil)
	api.moods.EXPECT().DeleteDay(gomock.Any(), "p1", "2024-06-03").Return(nil)

	w := api.do(http.MethodDelete, "/api/v1/moods/days/2024-06-03", "tok-p1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGenerateWeeklyRequiresPermission(t *testing.T) {
	api := newTestAPI(t, nil)

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/v1/reports/weekly", "tok-p1", "").Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/v1/reports/weekly", "tok-s1", "").Code)
}

func TestGenerateWeekly(t *testing.T) {
	api := newTestAPI(t, nil)

	api.reports.EXPECT().GenerateWeeklyReport(gomock.Any(), gomock.Nil()).
		Return(&models.WeeklyReport{ID: "week-2024-23"}, nil)
	w := api.do(http.MethodPost, "/api/v1/reports/weekly", "tok-a1", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "week-2024-23")

	api.reports.EXPECT().GenerateWeeklyReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, target *time.Time) (*models.WeeklyReport, error) {
			require.NotNil(t, target)
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *target)
			return &models.WeeklyReport{ID: "week-2025-1"}, nil
		})
	w = api.do(http.MethodPost, "/api/v1/reports/weekly?date=2025-01-01", "tok-a1", "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodPost, "/api/v1/reports/weekly?date=01/01/2025", "tok-a1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWeekly(t *testing.T) {
	api := newTestAPI(t, nil)

	api.reports.EXPECT().ListWeeklyReports(gomock.Any(), 0).Return([]models.WeeklyReport{{ID: "week-2024-23"}}, nil)
	w := api.do(http.MethodGet, "/api/v1/reports/weekly", "tok-s1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Reports []models.WeeklyReport `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Reports, 1)

	api.reports.EXPECT().ListWeeklyReports(gomock.Any(), 60).Return(nil, nil)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/reports/weekly?limit=60", "tok-s1", "").Code)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/reports/weekly?limit=abc", "tok-s1", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/reports/weekly?limit=0", "tok-s1", "").Code)
}

func TestGetWeeklyMissingIs404(t *testing.T) {
	api := newTestAPI(t, nil)
	api.reports.EXPECT().GetWeeklyReport(gomock.Any(), "week-1999-1").Return(nil, nil)

	w := api.do(http.MethodGet, "/api/v1/reports/weekly/week-1999-1", "tok-s1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierror.TypeNotFound, decodeProblem(t, w).Type)
}

func TestPatientEvolutionAccess(t *testing.T) {
	api := newTestAPI(t, nil)

	months := 6
	api.reports.EXPECT().
		GeneratePatientEvolutionReport(gomock.Any(), "p1", models.ReportFilters{Months: &months}).
		Return(&models.PatientEvolutionReport{Patient: models.PatientInfo{UserID: "p1"}}, nil).
		Times(2)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/reports/patients/p1/evolution?months=6", "tok-p1", "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/reports/patients/p1/evolution?months=6", "tok-s1", "").Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/v1/reports/patients/p2/evolution", "tok-p1", "").Code)
}

func TestPatientEvolutionUnknownPatient(t *testing.T) {
	api := newTestAPI(t, nil)
	api.reports.EXPECT().
		GeneratePatientEvolutionReport(gomock.Any(), "ghost", gomock.Any()).
		Return(nil, fmt.Errorf("user %q: %w", "ghost", repository.ErrNotFound))

	w := api.do(http.MethodGet, "/api/v1/reports/patients/ghost/evolution", "tok-s1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvolutionFilterValidation(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"months too large", "months=13", "months"},
		{"months too small", "months=0", "months"},
		{"bad start date", "startDate=2024-02-30", "startDate"},
		{"bad end date", "endDate=June", "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, "/api/v1/me/evolution?"+tt.query, "tok-p1", "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			p := decodeProblem(t, w)
			assert.Equal(t, apierror.TypeValidation, p.Type)
			require.NotEmpty(t, p.Errors)
			assert.Equal(t, tt.field, p.Errors[0].Field)
		})
	}
}

func TestMyEvolutionUsesCaller(t *testing.T) {
	api := newTestAPI(t, nil)
	api.reports.EXPECT().
		GeneratePatientEvolutionReport(gomock.Any(), "p1", models.ReportFilters{StartDate: "2024-01-01", EndDate: "2024-03-31"}).
		Return(&models.PatientEvolutionReport{}, nil)

	w := api.do(http.MethodGet, "/api/v1/me/evolution?startDate=2024-01-01&endDate=2024-03-31", "tok-p1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPatientGroups(t *testing.T) {
	api := newTestAPI(t, nil)

	api.reports.EXPECT().
		GroupPatientsByEmotionalState(gomock.Any(), models.ReportFilters{IncludeInactive: true}).
		Return(&models.PatientGrouping{
			Best:    []models.PatientSummary{},
			Average: []models.PatientSummary{},
			Worst:   []models.PatientSummary{},
		}, nil)

	w := api.do(http.MethodGet, "/api/v1/reports/patients/groups?includeInactive=true", "tok-s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"best":[]`)

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/v1/reports/patients/groups", "tok-p1", "").Code)
}
