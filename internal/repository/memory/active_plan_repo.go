// Package memory provides in-memory repository implementations. They back the
// test suites and any deployment that wants the engine without MongoDB; the
// service layer only ever sees the repository interfaces.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/repository"
)

// ActivePlanRepository keeps the single progress record in memory. Like the
// mongo implementation it stores the record as its JSON payload, so the wire
// round-trip (date formats included) is exercised even in tests.
type ActivePlanRepository struct {
	mu      sync.Mutex
	payload []byte

	// FailWrites makes Put and Clear return the given error, for tests that
	// pin the hardened persistence-failure behavior.
	FailWrites error
}

// NewActivePlanRepository creates an empty in-memory active plan repository.
func NewActivePlanRepository() *ActivePlanRepository {
	return &ActivePlanRepository{}
}

// Get loads the record, or repository.ErrNotFound when none is stored or the
// payload does not decode.
func (r *ActivePlanRepository) Get(_ context.Context) (*domain.ActivePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.payload == nil {
		return nil, repository.ErrNotFound
	}
	var plan domain.ActivePlan
	if err := json.Unmarshal(r.payload, &plan); err != nil {
		return nil, repository.ErrNotFound
	}
	if plan.CompletedWorkouts == nil {
		plan.CompletedWorkouts = []domain.CompletedWorkout{}
	}
	return &plan, nil
}

// Put stores the record.
func (r *ActivePlanRepository) Put(_ context.Context, plan *domain.ActivePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWrites != nil {
		return r.FailWrites
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	r.payload = payload
	return nil
}

// Clear removes the record. Clearing an empty repository is a no-op.
func (r *ActivePlanRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWrites != nil {
		return r.FailWrites
	}
	r.payload = nil
	return nil
}

// Corrupt overwrites the stored payload with bytes that do not decode,
// simulating a record written by an incompatible app version.
func (r *ActivePlanRepository) Corrupt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = []byte("{not json")
}
