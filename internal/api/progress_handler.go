package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/runplan-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler serves the derived progress views and snapshot exports.
type ProgressHandler struct {
	progressService service.ProgressService
	now             func() time.Time
}

// NewProgressHandler creates a new ProgressHandler. nowFn may be nil, in
// which case time.Now is used; tests inject a fixed clock so the derived
// views are deterministic.
func NewProgressHandler(progressService service.ProgressService, nowFn func() time.Time) *ProgressHandler {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ProgressHandler{progressService: progressService, now: nowFn}
}

// GetOverview returns the progress summary for the active plan.
func (h *ProgressHandler) GetOverview(c *gin.Context) {
	overview, err := h.progressService.Overview(c.Request.Context(), h.now())
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	if overview == nil {
		abortWithError(c, http.StatusNotFound, "No active plan")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetCalendar returns the dated schedule of the active plan. An optional
// ?month=YYYY-MM query restricts the result to one calendar month.
func (h *ProgressHandler) GetCalendar(c *gin.Context) {
	var year int
	var month time.Month
	if monthParam := c.Query("month"); monthParam != "" {
		parsed, err := time.Parse("2006-01", monthParam)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
			return
		}
		year, month = parsed.Year(), parsed.Month()
	}

	entries, err := h.progressService.Calendar(c.Request.Context(), year, month)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	if entries == nil {
		// Distinguish "no plan" from "plan but empty month": the service
		// returns nil only when there is no resolvable active plan.
		abortWithError(c, http.StatusNotFound, "No active plan")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ExportSnapshot uploads the raw progress record to object storage and
// returns a short-lived download URL for it.
func (h *ProgressHandler) ExportSnapshot(c *gin.Context) {
	export, err := h.progressService.ExportSnapshot(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			abortWithError(c, http.StatusNotFound, "No active plan")
			return
		}
		if errors.Is(err, service.ErrSnapshotUpload) || errors.Is(err, service.ErrSnapshotURLError) {
			abortWithError(c, http.StatusBadGateway, "Snapshot export failed")
			return
		}
		handlePlanServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}
