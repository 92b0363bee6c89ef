package catalog

import (
	"alcyxob/runplan-app/internal/domain"
)

// Catalog is the read-only collection of training plans the app ships with.
// It is built once at startup and never mutated afterwards; the progress engine
// only ever resolves plan IDs against it.
type Catalog struct {
	plans []domain.TrainingPlan
	byID  map[string]*domain.TrainingPlan
}

// New builds a catalog from an ordered list of plans. Plan IDs must be unique;
// a duplicate ID silently shadows the earlier entry, so the built-in list is
// covered by a uniqueness test instead of a runtime check.
func New(plans []domain.TrainingPlan) *Catalog {
	c := &Catalog{
		plans: plans,
		byID:  make(map[string]*domain.TrainingPlan, len(plans)),
	}
	for i := range c.plans {
		c.byID[c.plans[i].ID] = &c.plans[i]
	}
	return c
}

// Default returns the catalog of built-in running plans.
func Default() *Catalog {
	return New(builtinPlans())
}

// All returns the plans in catalog order.
func (c *Catalog) All() []domain.TrainingPlan {
	return c.plans
}

// FindByID resolves a plan ID. The second return value is false when the ID is
// unknown, which callers must treat as "no plan" rather than an error: a
// persisted active plan can reference an ID removed in a later app version.
func (c *Catalog) FindByID(id string) (*domain.TrainingPlan, bool) {
	plan, ok := c.byID[id]
	return plan, ok
}
