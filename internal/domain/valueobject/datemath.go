// Package valueobject contains domain value objects for the FinanzasApp system.
package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used at every external boundary.
const DateLayout = "2006-01-02"

// MonthIDLayout is the zero-padded YYYY-MM month identifier format.
const MonthIDLayout = "2006-01"

// LastDayOfMonth returns the number of days in the given month.
// Month is 1-based (time.Month). Handles leap years via the stdlib calendar.
func LastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// ClampedDate returns the date (year, month, day) normalized to local
// midnight, with the day clamped to the month's last valid day. Obligations
// may nominate day 30/31 for months that lack it; the effective due date
// shifts to the month's last day.
func ClampedDate(year int, month time.Month, day int) time.Time {
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Midnight truncates a time to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of calendar days from today until date.
// Positive means future, zero means today, negative means overdue.
// Both times are truncated to midnight and the difference is rounded up,
// so a due date 12 hours away still reports 1 day, not 0.
func DaysUntil(today, date time.Time) int {
	from := Midnight(today)
	to := Midnight(date)

	diff := to.Sub(from)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// MonthID returns the zero-padded YYYY-MM identifier for the month of t.
func MonthID(t time.Time) string {
	return t.Format(MonthIDLayout)
}

// MonthIDFor returns the zero-padded YYYY-MM identifier for a year and month.
func MonthIDFor(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseDate parses a YYYY-MM-DD calendar date into a local-midnight time.
// The core never works with timezone-shifted date values.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
