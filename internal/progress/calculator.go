// Package progress derives read-only aggregates from an active plan, its
// catalog entry and an evaluation date: current week, completion counts and
// percentage, streak length, weekly volume. Every function is pure and takes
// the evaluation date as a parameter so tests can pin "today".
package progress

import (
	"math"

	"alcyxob/runplan-app/internal/domain"
)

// streakLookbackDays bounds the backward walk of Streak so corrupt timestamps
// can never make it scan unbounded history.
const streakLookbackDays = 365

// CurrentWeek returns the 1-based plan week the given date falls in, clamped
// to [1, plan.Weeks]. The difference is counted in calendar days, not elapsed
// hours, so the week advances at local midnight. With no active plan (or no
// resolvable catalog entry) the current week is defined as 1.
func CurrentWeek(active *domain.ActivePlan, plan *domain.TrainingPlan, today domain.Date) int {
	if active == nil || plan == nil {
		return 1
	}
	week := today.DaysSince(active.StartDate)/7 + 1
	if week < 1 {
		week = 1
	}
	if week > plan.Weeks {
		week = plan.Weeks
	}
	return week
}

// Completion returns the overall completed count, the total number of
// completable (non-rest) workouts in the schedule, and the rounded completion
// percentage. The denominator is guarded so an all-rest schedule yields 0%.
func Completion(active *domain.ActivePlan, plan *domain.TrainingPlan) (completed, total, percentage int) {
	if active == nil || plan == nil {
		return 0, 0, 0
	}
	completed = len(active.CompletedWorkouts)
	total = plan.TotalNonRestWorkouts()
	denominator := total
	if denominator == 0 {
		denominator = 1
	}
	percentage = int(math.Round(100 * float64(completed) / float64(denominator)))
	return completed, total, percentage
}

// WeeklyCompletion returns the completed count and total non-rest count
// restricted to one schedule week. An unknown week number yields (0, 0).
func WeeklyCompletion(active *domain.ActivePlan, plan *domain.TrainingPlan, weekNumber int) (completed, total int) {
	if active != nil {
		completed = active.CompletedInWeek(weekNumber)
	}
	if plan != nil {
		if week, ok := plan.WeekByNumber(weekNumber); ok {
			total = week.NonRestCount()
		}
	}
	return completed, total
}

// Streak counts the consecutive calendar days, walking backward from today,
// on which at least one workout was completed. A day with several completions
// counts once. If today itself has no completion yet, the walk starts at
// yesterday instead: an existing streak is not broken until the day has fully
// elapsed. A plan with zero completions has a streak of 0.
func Streak(active *domain.ActivePlan, today domain.Date) int {
	if active == nil {
		return 0
	}
	dates := active.CompletionDates()
	if len(dates) == 0 {
		return 0
	}
	day := today
	if !dates[day] {
		day = day.AddDays(-1)
	}
	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		if !dates[day] {
			break
		}
		streak++
		day = day.AddDays(-1)
	}
	return streak
}

// WeekVolume is one bar of the weekly volume chart.
type WeekVolume struct {
	Week      int `json:"week"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// WeeklyVolumeSeries returns per-week completion counts for the last n weeks
// up to and including the current week, floored at week 1. Totals exclude
// rest-type workouts.
func WeeklyVolumeSeries(active *domain.ActivePlan, plan *domain.TrainingPlan, today domain.Date, n int) []WeekVolume {
	if active == nil || plan == nil || n <= 0 {
		return nil
	}
	current := CurrentWeek(active, plan, today)
	first := current - (n - 1)
	if first < 1 {
		first = 1
	}
	series := make([]WeekVolume, 0, current-first+1)
	for wk := first; wk <= current; wk++ {
		completed, total := WeeklyCompletion(active, plan, wk)
		series = append(series, WeekVolume{Week: wk, Completed: completed, Total: total})
	}
	return series
}
