package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/auth"
	"github.com/JonnyWalker81/moodtrack/backend/internal/cache"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// tokenTable verifies tokens by looking them up
type tokenTable map[string]string

func (t tokenTable) Verify(_ context.Context, token string) (*auth.Identity, error) {
	uid, ok := t[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Identity{UID: uid}, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	store.PutUser(models.User{ID: "p1", Role: models.RolePatient, Status: models.UserStatusActive})
	store.PutUser(models.User{ID: "p2", Role: models.RolePatient, Status: models.UserStatusActive})
	store.PutUser(models.User{ID: "s1", Role: models.RoleStaff, Status: models.UserStatusActive})

	c := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	resolver := auth.NewResolver(store.Users(), c, time.Minute)

	tokens := tokenTable{"tok-p1": "p1", "tok-s1": "s1", "tok-ghost": "ghost"}

	r := gin.New()
	r.Use(Logger(logger.NewSlogLogger(logger.Config{Level: logger.LevelError, Output: io.Discard})))
	api := r.Group("/api/v1", Auth(tokens))
	api.GET("/reports/weekly", RequirePermission(resolver, auth.PermReportsRead), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserID(c)})
	})
	api.GET("/reports/patients/:userId/evolution",
		RequireSelfOrPermission(resolver, "userId", auth.PermAnalyticsReadSelf, auth.PermPatientsRead),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingOrBadTokens(t *testing.T) {
	r := newAuthRouter(t)

	for _, token := range []string{"", "nope"} {
		w := get(r, "/api/v1/reports/weekly", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apierror.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermission(t *testing.T) {
	r := newAuthRouter(t)

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/reports/weekly", "tok-s1").Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/v1/reports/weekly", "tok-p1").Code)
	// authenticated but unknown to the directory
	assert.Equal(t, http.StatusForbidden, get(r, "/api/v1/reports/weekly", "tok-ghost").Code)
}

func TestRequireSelfOrPermission(t *testing.T) {
	r := newAuthRouter(t)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"patient reads self", "/api/v1/reports/patients/p1/evolution", "tok-p1", http.StatusOK},
		{"patient reads other", "/api/v1/reports/patients/p2/evolution", "tok-p1", http.StatusForbidden},
		{"staff reads any", "/api/v1/reports/patients/p2/evolution", "tok-s1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(r, tt.path, tt.token).Code)
		})
	}
}

func TestLoggerSetsRequestID(t *testing.T) {
	r := newAuthRouter(t)

	w := get(r, "/api/v1/reports/weekly", "tok-s1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly", nil)
	req.Header.Set("Authorization", "Bearer tok-s1")
	req.Header.Set(HeaderRequestID, "req-fixed")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-fixed", w.Header().Get(HeaderRequestID))
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, prod := range []bool{false, true} {
		r := gin.New()
		r.Use(SecurityHeaders(prod))
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := get(r, "/health", "")
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, prod, w.Header().Get("Strict-Transport-Security") != "")
	}
}

func TestRateLimitMiddlewareReturnsProblem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(1, time.Minute, "test-generate")
	t.Cleanup(limiter.Stop)

	r := gin.New()
	r.POST("/reports/weekly", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports/weekly", nil))
		return w
	}

	assert.Equal(t, http.StatusCreated, post().Code)
	w := post()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
