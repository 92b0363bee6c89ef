package domain

// Difficulty rates how demanding a training plan is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Week is one week of a plan's schedule. WeekNumber is unique within a plan
// and the schedule holds weeks 1..N contiguously.
type Week struct {
	WeekNumber int       `json:"weekNumber"`
	Label      string    `json:"label"`
	Workouts   []Workout `json:"workouts"`
}

// WorkoutFor returns the scheduled workout for the given day of this week.
func (w *Week) WorkoutFor(day int) (*Workout, bool) {
	for i := range w.Workouts {
		if w.Workouts[i].Day == day {
			return &w.Workouts[i], true
		}
	}
	return nil, false
}

// NonRestCount counts the workouts of this week that can be completed.
func (w *Week) NonRestCount() int {
	count := 0
	for i := range w.Workouts {
		if !w.Workouts[i].Type.IsRest() {
			count++
		}
	}
	return count
}

// TrainingPlan is an immutable catalog entry describing a multi-week plan.
// Plans are supplied at build time and never mutated at runtime; user progress
// against a plan lives in the ActivePlan record instead.
type TrainingPlan struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Subtitle     string     `json:"subtitle"`
	Description  string     `json:"description"`
	Weeks        int        `json:"weeks"`
	Difficulty   Difficulty `json:"difficulty"`
	WeeklyRuns   string     `json:"weeklyRuns"`   // e.g. "3-4 runs"
	WeeklyVolume string     `json:"weeklyVolume"` // e.g. "60-120 min"
	Schedule     []Week     `json:"schedule"`
}

// WeekByNumber returns the schedule week with the given number.
func (p *TrainingPlan) WeekByNumber(weekNumber int) (*Week, bool) {
	for i := range p.Schedule {
		if p.Schedule[i].WeekNumber == weekNumber {
			return &p.Schedule[i], true
		}
	}
	return nil, false
}

// WorkoutFor returns the workout scheduled at (weekNumber, day).
func (p *TrainingPlan) WorkoutFor(weekNumber, day int) (*Workout, bool) {
	week, ok := p.WeekByNumber(weekNumber)
	if !ok {
		return nil, false
	}
	return week.WorkoutFor(day)
}

// TotalNonRestWorkouts counts the completable workouts across the whole
// schedule. This is the denominator of the completion percentage.
func (p *TrainingPlan) TotalNonRestWorkouts() int {
	total := 0
	for i := range p.Schedule {
		total += p.Schedule[i].NonRestCount()
	}
	return total
}
