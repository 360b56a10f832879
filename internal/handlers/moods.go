package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/catalog"
	"github.com/JonnyWalker81/moodtrack/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// GetCatalog handles GET /api/v1/moods/catalog
func (h *MoodHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": catalog.All()})
}

// GetMonth handles GET /api/v1/moods/months/:month
func (h *MoodHandler) GetMonth(c *gin.Context) {
	month := c.Param("month")
	if _, err := calendar.ParseMonth(month); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), "month", month, "YYYY-MM"))
		return
	}

	result, err := h.moodService.GetMonth(c.Request.Context(), middleware.UserID(c), month)
	if err != nil {
		writeError(c, err, "Month", month)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDay handles GET /api/v1/moods/days/:date
func (h *MoodHandler) GetDay(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	day, err := h.moodService.GetDay(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		writeError(c, err, "Day", date)
		return
	}

	c.JSON(http.StatusOK, day)
}

// AddMood handles POST /api/v1/moods/days/:date
func (h *MoodHandler) AddMood(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var req models.MoodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	userID := middleware.UserID(c)
	day, err := h.moodService.AddMood(c.Request.Context(), userID, date, req)
	if err != nil {
		writeError(c, err, "User", userID)
		return
	}

	c.JSON(http.StatusCreated, day)
}

// UpsertDay handles PUT /api/v1/moods/days/:date
func (h *MoodHandler) UpsertDay(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var req models.UpsertDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	userID := middleware.UserID(c)
	day, err := h.moodService.UpsertDay(c.Request.Context(), userID, date, req.Moods)
	if err != nil {
		writeError(c, err, "User", userID)
		return
	}

	c.JSON(http.StatusOK, day)
}

// DeleteDay handles DELETE /api/v1/moods/days/:date
func (h *MoodHandler) DeleteDay(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.moodService.DeleteDay(c.Request.Context(), middleware.UserID(c), date); err != nil {
		writeError(c, err, "Day", date)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAnalytics handles GET /api/v1/moods/analytics
func (h *MoodHandler) GetAnalytics(c *gin.Context) {
	userID := middleware.UserID(c)
	analytics, err := h.moodService.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "User", userID)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

func dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := calendar.ParseDate(date); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), "date", date, "YYYY-MM-DD"))
		return "", false
	}
	return date, true
}
