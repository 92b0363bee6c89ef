package progress

import (
	"testing"
	"time"

	"alcyxob/runplan-app/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestStartMondayNormalization(t *testing.T) {
	monday := domain.NewDate(2026, time.March, 2)

	tests := []struct {
		name  string
		start domain.Date
	}{
		{"monday stays", monday},
		{"wednesday rolls back", domain.NewDate(2026, time.March, 4)},
		{"saturday rolls back", domain.NewDate(2026, time.March, 7)},
		{"sunday belongs to the preceding monday", domain.NewDate(2026, time.March, 8)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, monday, StartMonday(tc.start))
		})
	}
}

func TestDateForLocateRoundTrip(t *testing.T) {
	plan := c25kPlan(t)
	start := domain.NewDate(2026, time.March, 4) // mid-week start

	for _, week := range plan.Schedule {
		for _, workout := range week.Workouts {
			date := DateFor(start, week.WeekNumber, workout.Day)

			weekNumber, day, ok := Locate(start, date)
			require.True(t, ok)
			require.Equal(t, week.WeekNumber, weekNumber)
			require.Equal(t, workout.Day, day)
		}
	}
}

func TestLocateBeforeStartMonday(t *testing.T) {
	start := domain.NewDate(2026, time.March, 4)

	_, _, ok := Locate(start, domain.NewDate(2026, time.March, 1))
	require.False(t, ok)
}

func TestDateForPlacesScheduleDensely(t *testing.T) {
	start := domain.NewDate(2026, time.March, 2) // a Monday

	// Week 1 day 1 is the start Monday itself; week 2 day 1 is exactly one
	// week later; week 1 day 7 is the first Sunday.
	require.Equal(t, start, DateFor(start, 1, 1))
	require.Equal(t, start.AddDays(7), DateFor(start, 2, 1))
	require.Equal(t, start.AddDays(6), DateFor(start, 1, 7))
}

func TestEntriesCarryCompletionState(t *testing.T) {
	plan := c25kPlan(t)
	start := domain.NewDate(2026, time.March, 2)
	active := domain.NewActivePlan("c25k", start)
	completedOn(active, 1, 1, start)

	entries := Entries(active, plan)
	require.Len(t, entries, 8*7) // one entry per scheduled slot

	require.Equal(t, start, entries[0].Date)
	require.Equal(t, 1, entries[0].WeekNumber)
	require.True(t, entries[0].Completed)
	require.False(t, entries[1].Completed)
}

func TestEntriesInMonthFilters(t *testing.T) {
	plan := c25kPlan(t)
	// Started late March: the 8-week schedule spans March through May.
	start := domain.NewDate(2026, time.March, 30)
	active := domain.NewActivePlan("c25k", start)

	april := EntriesInMonth(active, plan, 2026, 4)
	require.NotEmpty(t, april)
	for _, entry := range april {
		require.Equal(t, time.April, entry.Date.Month)
		require.Equal(t, 2026, entry.Date.Year)
	}

	require.Empty(t, EntriesInMonth(active, plan, 2026, 1))
}

func TestEntriesWithoutActivePlan(t *testing.T) {
	require.Nil(t, Entries(nil, nil))
	require.Nil(t, Entries(nil, c25kPlan(t)))
}
