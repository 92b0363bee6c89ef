package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"alcyxob/runplan-app/internal/catalog"
	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the plan catalog and the active plan operations.
type PlanHandler struct {
	catalog     *catalog.Catalog
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(cat *catalog.Catalog, planService service.PlanService) *PlanHandler {
	return &PlanHandler{catalog: cat, planService: planService}
}

// --- Request/Response Structs ---

// PlanSummary is a catalog entry without its full schedule, for list views.
type PlanSummary struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Subtitle     string            `json:"subtitle"`
	Description  string            `json:"description"`
	Weeks        int               `json:"weeks"`
	Difficulty   domain.Difficulty `json:"difficulty"`
	WeeklyRuns   string            `json:"weeklyRuns"`
	WeeklyVolume string            `json:"weeklyVolume"`
}

type StartPlanRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type ToggleWorkoutRequest struct {
	WeekNumber int    `json:"weekNumber" binding:"required,min=1"`
	Day        int    `json:"day" binding:"required,min=1,max=7"`
	Notes      string `json:"notes"`
}

type ToggleWorkoutResponse struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ActivePlanResponse bundles the progress record with its catalog entry.
// Plan is null when the stored plan ID is not in this build's catalog.
type ActivePlanResponse struct {
	Active *domain.ActivePlan   `json:"active"`
	Plan   *domain.TrainingPlan `json:"plan,omitempty"`
}

// --- Catalog ---

// ListPlans returns every catalog plan as a summary, in catalog order.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans := h.catalog.All()
	summaries := make([]PlanSummary, 0, len(plans))
	for i := range plans {
		summaries = append(summaries, mapPlanToSummary(&plans[i]))
	}
	c.JSON(http.StatusOK, summaries)
}

// GetPlan returns one catalog plan with its full schedule.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, ok := h.catalog.FindByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Plan not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// --- Active Plan ---

// GetActivePlan returns the current progress record with its plan resolved.
func (h *PlanHandler) GetActivePlan(c *gin.Context) {
	view, err := h.planService.ActivePlan(c.Request.Context())
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	if view == nil {
		abortWithError(c, http.StatusNotFound, "No active plan")
		return
	}
	c.JSON(http.StatusOK, ActivePlanResponse{Active: view.Active, Plan: view.Plan})
}

// StartPlan activates a catalog plan, replacing any active plan and its
// progress.
func (h *PlanHandler) StartPlan(c *gin.Context) {
	var req StartPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	// The store accepts any ID; the API is the collaborator responsible for
	// only offering catalog plans.
	if _, ok := h.catalog.FindByID(req.PlanID); !ok {
		abortWithError(c, http.StatusNotFound, "Plan not found")
		return
	}

	active, err := h.planService.StartPlan(c.Request.Context(), req.PlanID)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, active)
}

// CancelPlan clears the active plan. Cancelling when none is active still
// returns 204.
func (h *PlanHandler) CancelPlan(c *gin.Context) {
	if err := h.planService.CancelPlan(c.Request.Context()); err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleWorkout inverts one completion record and returns the new state.
// With no active plan the toggle is a no-op and the response is 204.
func (h *PlanHandler) ToggleWorkout(c *gin.Context) {
	var req ToggleWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.planService.ToggleWorkout(c.Request.Context(), req.WeekNumber, req.Day, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSlot) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		handlePlanServiceError(c, err)
		return
	}
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ToggleWorkoutResponse{
		Completed:   result.Completed,
		CompletedAt: result.CompletedAt,
	})
}

// GetCompletion reports the completion state of one schedule slot; false when
// no plan is active.
func (h *PlanHandler) GetCompletion(c *gin.Context) {
	weekNumber, err := strconv.Atoi(c.Param("week"))
	if err != nil || weekNumber < 1 {
		abortWithError(c, http.StatusBadRequest, "Invalid week number")
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > 7 {
		abortWithError(c, http.StatusBadRequest, "Invalid day")
		return
	}

	completed, err := h.planService.IsCompleted(c.Request.Context(), weekNumber, day)
	if err != nil {
		handlePlanServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

// --- Helpers ---

func mapPlanToSummary(plan *domain.TrainingPlan) PlanSummary {
	return PlanSummary{
		ID:           plan.ID,
		Name:         plan.Name,
		Subtitle:     plan.Subtitle,
		Description:  plan.Description,
		Weeks:        plan.Weeks,
		Difficulty:   plan.Difficulty,
		WeeklyRuns:   plan.WeeklyRuns,
		WeeklyVolume: plan.WeeklyVolume,
	}
}

// handlePlanServiceError maps service errors to HTTP status codes.
func handlePlanServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPersistence) {
		abortWithError(c, http.StatusServiceUnavailable, "Progress store is unavailable")
		return
	}
	abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
}
