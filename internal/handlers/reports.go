package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateWeekly handles POST /api/v1/reports/weekly?date=YYYY-MM-DD
func (h *ReportHandler) GenerateWeekly(c *gin.Context) {
	var target *time.Time
	if raw := c.Query("date"); raw != "" {
		t, err := calendar.ParseDate(raw)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), "date", raw, "YYYY-MM-DD"))
			return
		}
		target = &t
	}

	report, err := h.reportService.GenerateWeeklyReport(c.Request.Context(), target)
	if err != nil {
		writeError(c, err, "Weekly report", "")
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListWeekly handles GET /api/v1/reports/weekly?limit=N
func (h *ReportHandler) ListWeekly(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "limit", Message: "must be a positive integer", Code: "min"},
			}))
			return
		}
		limit = n
	}

	reports, err := h.reportService.ListWeeklyReports(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err, "Weekly report", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GetWeekly handles GET /api/v1/reports/weekly/:id
func (h *ReportHandler) GetWeekly(c *gin.Context) {
	id := c.Param("id")

	report, err := h.reportService.GetWeeklyReport(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Weekly report", id)
		return
	}
	if report == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "Weekly report", id))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPatientEvolution handles GET /api/v1/reports/patients/:id/evolution
func (h *ReportHandler) GetPatientEvolution(c *gin.Context) {
	h.evolution(c, c.Param("id"))
}

// GetMyEvolution handles GET /api/v1/me/evolution
func (h *ReportHandler) GetMyEvolution(c *gin.Context) {
	h.evolution(c, middleware.UserID(c))
}

func (h *ReportHandler) evolution(c *gin.Context, userID string) {
	var filters models.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		writeBindError(c, err)
		return
	}

	report, err := h.reportService.GeneratePatientEvolutionReport(c.Request.Context(), userID, filters)
	if err != nil {
		writeError(c, err, "Patient", userID)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPatientGroups handles GET /api/v1/reports/patients/groups
func (h *ReportHandler) GetPatientGroups(c *gin.Context) {
	var filters models.ReportFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		writeBindError(c, err)
		return
	}

	grouping, err := h.reportService.GroupPatientsByEmotionalState(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err, "Patients", "")
		return
	}

	c.JSON(http.StatusOK, grouping)
}
