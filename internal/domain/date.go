package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates ("YYYY-MM-DD", no time component).
const DateFormat = "2006-01-02"

// Date is a calendar date without a time-of-day component. All plan scheduling
// and progress arithmetic works on local wall-clock days, so Date carries no
// location: two instants on the same local day map to the same Date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	// Normalize through time.Date so e.g. Feb 30 rolls over the same way
	// the time package would.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String returns the date in wire format.
func (d Date) String() string {
	return d.midnightUTC().Format(DateFormat)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnightUTC().AddDate(0, 0, n))
}

// DaysSince returns the calendar-day difference d - other. It is a
// midnight-to-midnight count, never an elapsed-hours division.
func (d Date) DaysSince(other Date) int {
	return int(d.midnightUTC().Sub(other.midnightUTC()) / (24 * time.Hour))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.midnightUTC().Before(other.midnightUTC())
}

// Weekday1 returns the Monday-first weekday number: Monday=1 .. Sunday=7.
func (d Date) Weekday1() int {
	wd := int(d.midnightUTC().Weekday()) // Sunday=0 .. Saturday=6
	if wd == 0 {
		return 7
	}
	return wd
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// midnightUTC pins the date to midnight UTC for arithmetic. UTC avoids DST
// transitions producing 23h/25h "days" in the subtraction.
func (d Date) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
