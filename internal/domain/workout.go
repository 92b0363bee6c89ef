package domain

// WorkoutType classifies a scheduled session within a training plan week.
type WorkoutType string

const (
	WorkoutEasy      WorkoutType = "easy"
	WorkoutTempo     WorkoutType = "tempo"
	WorkoutIntervals WorkoutType = "intervals"
	WorkoutLongRun   WorkoutType = "longRun"
	WorkoutRest      WorkoutType = "rest"
	WorkoutCross     WorkoutType = "cross"
)

// WorkoutTypes lists every valid workout type, in display order.
// Keep this and workoutTypeLabels in sync when adding a variant.
var WorkoutTypes = []WorkoutType{
	WorkoutEasy,
	WorkoutTempo,
	WorkoutIntervals,
	WorkoutLongRun,
	WorkoutRest,
	WorkoutCross,
}

// workoutTypeLabels is the single exhaustive mapping from workout type to its
// human-readable label; consumers must not scatter their own lookup tables.
var workoutTypeLabels = map[WorkoutType]string{
	WorkoutEasy:      "Easy run",
	WorkoutTempo:     "Tempo",
	WorkoutIntervals: "Intervals",
	WorkoutLongRun:   "Long run",
	WorkoutRest:      "Rest",
	WorkoutCross:     "Cross-training",
}

// Label returns the display label for the workout type, or the raw value for
// an unknown type so stale persisted data still renders.
func (t WorkoutType) Label() string {
	if label, ok := workoutTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsValid reports whether t is one of the known workout types.
func (t WorkoutType) IsValid() bool {
	_, ok := workoutTypeLabels[t]
	return ok
}

// IsRest reports whether the workout type is a rest day. Rest days are never
// recorded as completed.
func (t WorkoutType) IsRest() bool {
	return t == WorkoutRest
}

// Intensity grades the effort level of a workout.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// Workout is a single scheduled session within a plan week. Workouts are
// immutable catalog data; progress is tracked separately as CompletedWorkout
// records keyed by (weekNumber, day).
type Workout struct {
	Day         int         `json:"day"` // 1 (Monday) .. 7 (Sunday)
	Type        WorkoutType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Duration    *int        `json:"duration,omitempty"` // minutes, optional
	Distance    *float64    `json:"distance,omitempty"` // km, optional
	Intensity   Intensity   `json:"intensity"`
}
