package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/runplan-app/internal/catalog"
	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/repository"
)

// --- Error Definitions ---
var (
	// ErrPersistence wraps failures of the durable store. The reference app
	// silently swallowed these; here a failed write surfaces to the caller so
	// a toggle is never silently lost.
	ErrPersistence = errors.New("progress persistence failed")

	ErrInvalidSlot = errors.New("week number or day out of range")
)

// ToggleResult reports the new completion state after a toggle.
type ToggleResult struct {
	Completed   bool
	CompletedAt *time.Time // set when Completed is true
}

// ActivePlanView bundles the progress record with its resolved catalog entry.
// Plan is nil when the stored plan ID is no longer in the catalog; callers
// must render that as "no active plan" rather than failing.
type ActivePlanView struct {
	Active *domain.ActivePlan
	Plan   *domain.TrainingPlan
}

// PlanService is the single source of truth for the active plan record: every
// mutation goes through it and is durably persisted before the call returns.
type PlanService interface {
	// StartPlan replaces any active plan with a fresh record for planID,
	// started today. Previous progress is discarded irrecoverably. The plan ID
	// is not validated against the catalog.
	StartPlan(ctx context.Context, planID string) (*domain.ActivePlan, error)

	// CancelPlan clears the active plan. Idempotent.
	CancelPlan(ctx context.Context) error

	// ToggleWorkout inverts the completion state at (weekNumber, day). With no
	// active plan it is a no-op and returns (nil, nil), not an error.
	ToggleWorkout(ctx context.Context, weekNumber, day int, notes string) (*ToggleResult, error)

	// IsCompleted reports the completion state at (weekNumber, day); false
	// when no plan is active.
	IsCompleted(ctx context.Context, weekNumber, day int) (bool, error)

	// ActivePlan returns the current record with its catalog entry resolved,
	// or (nil, nil) when no plan is active.
	ActivePlan(ctx context.Context) (*ActivePlanView, error)
}

// planService implements PlanService on top of the active plan repository and
// the read-only catalog.
type planService struct {
	activePlanRepo repository.ActivePlanRepository
	catalog        *catalog.Catalog
	now            func() time.Time
}

// NewPlanService creates a new plan service. nowFn supplies the current
// instant and may be nil, in which case time.Now is used; tests inject a fixed
// clock through it.
func NewPlanService(activePlanRepo repository.ActivePlanRepository, cat *catalog.Catalog, nowFn func() time.Time) PlanService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &planService{
		activePlanRepo: activePlanRepo,
		catalog:        cat,
		now:            nowFn,
	}
}

// StartPlan replaces the active plan record wholesale.
func (s *planService) StartPlan(ctx context.Context, planID string) (*domain.ActivePlan, error) {
	if planID == "" {
		return nil, errors.New("plan ID is required")
	}
	active := domain.NewActivePlan(planID, domain.DateOf(s.now()))
	if err := s.activePlanRepo.Put(ctx, active); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return active, nil
}

// CancelPlan clears the record; clearing an absent record succeeds.
func (s *planService) CancelPlan(ctx context.Context) error {
	if err := s.activePlanRepo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ToggleWorkout flips one completion record and persists the whole updated
// plan before returning. Calling it twice restores the original state.
func (s *planService) ToggleWorkout(ctx context.Context, weekNumber, day int, notes string) (*ToggleResult, error) {
	if weekNumber < 1 || day < 1 || day > 7 {
		return nil, ErrInvalidSlot
	}

	active, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		// No active plan: silently do nothing, per the store contract.
		return nil, nil
	}

	completedAt := s.now()
	completed := active.Toggle(weekNumber, day, notes, completedAt)
	if err := s.activePlanRepo.Put(ctx, active); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	result := &ToggleResult{Completed: completed}
	if completed {
		result.CompletedAt = &completedAt
	}
	return result, nil
}

// IsCompleted is a pure query against the persisted record.
func (s *planService) IsCompleted(ctx context.Context, weekNumber, day int) (bool, error) {
	active, err := s.load(ctx)
	if err != nil || active == nil {
		return false, err
	}
	return active.IsCompleted(weekNumber, day), nil
}

// ActivePlan resolves the record against the catalog. A stale plan ID yields a
// view with Plan == nil, not an error.
func (s *planService) ActivePlan(ctx context.Context) (*ActivePlanView, error) {
	active, err := s.load(ctx)
	if err != nil || active == nil {
		return nil, err
	}
	view := &ActivePlanView{Active: active}
	if plan, ok := s.catalog.FindByID(active.PlanID); ok {
		view.Plan = plan
	}
	return view, nil
}

// load fetches the current record, mapping "not found" to (nil, nil) and any
// other read failure to ErrPersistence.
func (s *planService) load(ctx context.Context) (*domain.ActivePlan, error) {
	active, err := s.activePlanRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return active, nil
}
