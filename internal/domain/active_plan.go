package domain

import (
	"fmt"
	"time"
)

// CompletedWorkout records that one scheduled session was marked done.
// Records are keyed by (weekNumber, day) within the owning ActivePlan and are
// created on toggle-on, destroyed on toggle-off.
type CompletedWorkout struct {
	PlanID      string    `json:"planId"`
	WeekNumber  int       `json:"weekNumber"`
	Day         int       `json:"day"` // 1 (Monday) .. 7 (Sunday)
	CompletedAt time.Time `json:"completedAt"`
	Notes       string    `json:"notes,omitempty"`
}

// ActivePlan is the single persisted progress record: which plan the athlete
// is on, when it started, and which scheduled sessions were marked done.
// At most one ActivePlan exists at a time; starting a new plan replaces it
// wholesale and discards the previous progress.
type ActivePlan struct {
	PlanID            string             `json:"planId"`
	StartDate         Date               `json:"startDate"`
	CompletedWorkouts []CompletedWorkout `json:"completedWorkouts"`
}

// NewActivePlan creates a fresh progress record for planID starting today.
// The plan ID is not validated against the catalog here; a stale ID simply
// resolves to "no plan data" at read time.
func NewActivePlan(planID string, startDate Date) *ActivePlan {
	return &ActivePlan{
		PlanID:            planID,
		StartDate:         startDate,
		CompletedWorkouts: []CompletedWorkout{},
	}
}

// Completion returns the completion record at (weekNumber, day), if any.
func (a *ActivePlan) Completion(weekNumber, day int) (*CompletedWorkout, bool) {
	for i := range a.CompletedWorkouts {
		if a.CompletedWorkouts[i].WeekNumber == weekNumber && a.CompletedWorkouts[i].Day == day {
			return &a.CompletedWorkouts[i], true
		}
	}
	return nil, false
}

// IsCompleted reports whether the session at (weekNumber, day) is marked done.
func (a *ActivePlan) IsCompleted(weekNumber, day int) bool {
	_, ok := a.Completion(weekNumber, day)
	return ok
}

// Toggle inverts the completion state at (weekNumber, day) and returns the new
// state. Toggling on records completedAt and the optional notes; toggling off
// removes the record. Calling Toggle twice restores the original state.
func (a *ActivePlan) Toggle(weekNumber, day int, notes string, completedAt time.Time) bool {
	if _, ok := a.Completion(weekNumber, day); ok {
		kept := a.CompletedWorkouts[:0]
		for _, cw := range a.CompletedWorkouts {
			if cw.WeekNumber == weekNumber && cw.Day == day {
				continue
			}
			kept = append(kept, cw)
		}
		a.CompletedWorkouts = kept
		return false
	}
	a.CompletedWorkouts = append(a.CompletedWorkouts, CompletedWorkout{
		PlanID:      a.PlanID,
		WeekNumber:  weekNumber,
		Day:         day,
		CompletedAt: completedAt,
		Notes:       notes,
	})
	return true
}

// CompletionDates returns the distinct calendar dates (local to each record's
// completedAt) on which at least one session was completed.
func (a *ActivePlan) CompletionDates() map[Date]bool {
	dates := make(map[Date]bool, len(a.CompletedWorkouts))
	for _, cw := range a.CompletedWorkouts {
		dates[DateOf(cw.CompletedAt)] = true
	}
	return dates
}

// CompletedInWeek counts the completion records of one schedule week.
func (a *ActivePlan) CompletedInWeek(weekNumber int) int {
	count := 0
	for _, cw := range a.CompletedWorkouts {
		if cw.WeekNumber == weekNumber {
			count++
		}
	}
	return count
}

// Validate checks the record's internal invariants against its plan: no
// duplicate (weekNumber, day) pairs, every record owned by the active plan ID,
// and week/day values within range. plan may be nil when the catalog no longer
// knows the plan ID; range checks against plan.Weeks are skipped in that case.
func (a *ActivePlan) Validate(plan *TrainingPlan) error {
	if a.StartDate.IsZero() {
		return fmt.Errorf("active plan %q has no start date", a.PlanID)
	}
	seen := make(map[[2]int]bool, len(a.CompletedWorkouts))
	for _, cw := range a.CompletedWorkouts {
		if cw.PlanID != a.PlanID {
			return fmt.Errorf("completion (%d,%d) belongs to plan %q, not %q", cw.WeekNumber, cw.Day, cw.PlanID, a.PlanID)
		}
		if cw.Day < 1 || cw.Day > 7 {
			return fmt.Errorf("completion (%d,%d): day out of range", cw.WeekNumber, cw.Day)
		}
		if cw.WeekNumber < 1 {
			return fmt.Errorf("completion (%d,%d): week out of range", cw.WeekNumber, cw.Day)
		}
		if plan != nil && cw.WeekNumber > plan.Weeks {
			return fmt.Errorf("completion (%d,%d): week beyond plan length %d", cw.WeekNumber, cw.Day, plan.Weeks)
		}
		key := [2]int{cw.WeekNumber, cw.Day}
		if seen[key] {
			return fmt.Errorf("duplicate completion for (%d,%d)", cw.WeekNumber, cw.Day)
		}
		seen[key] = true
	}
	return nil
}
