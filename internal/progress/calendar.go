package progress

import (
	"alcyxob/runplan-app/internal/domain"
)

// The calendar mapping anchors a plan's (weekNumber, day) grid onto absolute
// dates. The start date is first normalized to the Monday of its week, so a
// plan started mid-week still lines up with the Monday-first day numbering of
// the schedule; week 1 then spans that Monday through the following Sunday.

// StartMonday returns the Monday of the week containing the plan's start date.
func StartMonday(startDate domain.Date) domain.Date {
	return startDate.AddDays(1 - startDate.Weekday1())
}

// DateFor maps a schedule slot to its absolute calendar date.
func DateFor(startDate domain.Date, weekNumber, day int) domain.Date {
	return StartMonday(startDate).AddDays((weekNumber-1)*7 + (day - 1))
}

// Locate is the inverse of DateFor: it decomposes a calendar date back into
// the (weekNumber, day) slot it falls on. ok is false for dates before the
// normalized start Monday; dates past the plan's end still decompose (callers
// bound-check weekNumber against the plan when needed).
func Locate(startDate domain.Date, date domain.Date) (weekNumber, day int, ok bool) {
	offset := date.DaysSince(StartMonday(startDate))
	if offset < 0 {
		return 0, 0, false
	}
	return offset/7 + 1, offset%7 + 1, true
}

// Entry is one scheduled workout placed on an absolute date.
type Entry struct {
	Date       domain.Date    `json:"date"`
	WeekNumber int            `json:"weekNumber"`
	Workout    domain.Workout `json:"workout"`
	Completed  bool           `json:"completed"`
}

// Entries maps the whole schedule of the active plan onto calendar dates, in
// chronological order. Only one active plan exists at a time, so the mapping
// from date to entry is one-to-one.
func Entries(active *domain.ActivePlan, plan *domain.TrainingPlan) []Entry {
	if active == nil || plan == nil {
		return nil
	}
	var entries []Entry
	for _, week := range plan.Schedule {
		for _, workout := range week.Workouts {
			entries = append(entries, Entry{
				Date:       DateFor(active.StartDate, week.WeekNumber, workout.Day),
				WeekNumber: week.WeekNumber,
				Workout:    workout,
				Completed:  active.IsCompleted(week.WeekNumber, workout.Day),
			})
		}
	}
	return entries
}

// EntriesInMonth filters Entries down to one calendar month.
func EntriesInMonth(active *domain.ActivePlan, plan *domain.TrainingPlan, year int, month int) []Entry {
	var filtered []Entry
	for _, entry := range Entries(active, plan) {
		if entry.Date.Year == year && int(entry.Date.Month) == month {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
