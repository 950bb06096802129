package valueobject

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestLastDayOfMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2026, time.April, 30},
		{2026, time.December, 31},
	}

	for _, c := range cases {
		if got := LastDayOfMonth(c.year, c.month); got != c.want {
			t.Errorf("LastDayOfMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestClampedDate(t *testing.T) {
	t.Run("day within month is unchanged", func(t *testing.T) {
		got := ClampedDate(2026, time.March, 15)
		if !got.Equal(date(2026, time.March, 15)) {
			t.Errorf("got %v, want 2026-03-15", got)
		}
	})

	t.Run("day 30 clamps to end of February", func(t *testing.T) {
		got := ClampedDate(2026, time.February, 30)
		if !got.Equal(date(2026, time.February, 28)) {
			t.Errorf("got %v, want 2026-02-28", got)
		}
	})

	t.Run("day 30 clamps to Feb 29 in leap years", func(t *testing.T) {
		got := ClampedDate(2024, time.February, 30)
		if !got.Equal(date(2024, time.February, 29)) {
			t.Errorf("got %v, want 2024-02-29", got)
		}
	})

	t.Run("day 31 clamps in 30-day months", func(t *testing.T) {
		got := ClampedDate(2026, time.April, 31)
		if !got.Equal(date(2026, time.April, 30)) {
			t.Errorf("got %v, want 2026-04-30", got)
		}
	})
}

func TestDaysUntil(t *testing.T) {
	today := date(2026, time.March, 10)

	cases := []struct {
		name string
		date time.Time
		want int
	}{
		{"same day", date(2026, time.March, 10), 0},
		{"tomorrow", date(2026, time.March, 11), 1},
		{"next week", date(2026, time.March, 17), 7},
		{"yesterday", date(2026, time.March, 9), -1},
		{"last month", date(2026, time.February, 10), -28},
		{"across month boundary", date(2026, time.April, 2), 23},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DaysUntil(today, c.date); got != c.want {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", today, c.date, got, c.want)
			}
		})
	}

	t.Run("partial days round up", func(t *testing.T) {
		// Noon today against tomorrow midnight is still 1 day away.
		noon := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
		if got := DaysUntil(noon, date(2026, time.March, 11)); got != 1 {
			t.Errorf("got %d, want 1", got)
		}
	})
}

func TestMonthID(t *testing.T) {
	if got := MonthID(date(2026, time.March, 5)); got != "2026-03" {
		t.Errorf("MonthID = %q, want 2026-03", got)
	}
	if got := MonthIDFor(2026, time.November); got != "2026-11" {
		t.Errorf("MonthIDFor = %q, want 2026-11", got)
	}
	// Single-digit months must be zero-padded so string keys of adjacent
	// months never collide.
	if got := MonthIDFor(2026, time.January); got != "2026-01" {
		t.Errorf("MonthIDFor = %q, want 2026-01", got)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid date round-trips", func(t *testing.T) {
		parsed, err := ParseDate("2026-08-30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := FormatDate(parsed); got != "2026-08-30" {
			t.Errorf("round-trip got %q", got)
		}
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		if _, err := ParseDate("30/08/2026"); err == nil {
			t.Error("expected error for non-ISO date")
		}
	})
}
