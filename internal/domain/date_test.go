package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	require.NoError(t, err)
	require.Equal(t, NewDate(2026, time.March, 2), d)
	require.Equal(t, "2026-03-02", d.String())

	_, err = ParseDate("02/03/2026")
	require.Error(t, err)
	_, err = ParseDate("")
	require.Error(t, err)
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.March, 2, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 2, 23, 45, 0, 0, time.UTC)
	require.Equal(t, DateOf(morning), DateOf(evening))
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	require.Equal(t, NewDate(2026, time.March, 1), NewDate(2026, time.February, 28).AddDays(1))
	require.Equal(t, NewDate(2027, time.January, 1), NewDate(2026, time.December, 31).AddDays(1))
	require.Equal(t, NewDate(2026, time.February, 28), NewDate(2026, time.March, 7).AddDays(-7))
}

func TestDaysSinceIsCalendarBased(t *testing.T) {
	start := NewDate(2026, time.March, 2)
	require.Equal(t, 0, start.DaysSince(start))
	require.Equal(t, 7, start.AddDays(7).DaysSince(start))
	require.Equal(t, -3, start.DaysSince(start.AddDays(3)))

	// Spanning a whole year stays exact.
	require.Equal(t, 365, NewDate(2027, time.March, 2).DaysSince(start))
}

func TestWeekday1(t *testing.T) {
	// 2026-03-02 is a Monday.
	require.Equal(t, 1, NewDate(2026, time.March, 2).Weekday1())
	require.Equal(t, 3, NewDate(2026, time.March, 4).Weekday1())
	require.Equal(t, 6, NewDate(2026, time.March, 7).Weekday1())
	require.Equal(t, 7, NewDate(2026, time.March, 8).Weekday1())
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2026, time.March, 2))
	require.NoError(t, err)
	require.Equal(t, `"2026-03-02"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-12-31"`), &d))
	require.Equal(t, NewDate(2026, time.December, 31), d)

	require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	require.Error(t, json.Unmarshal([]byte(`12345`), &d))
}
