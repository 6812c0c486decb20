package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used throughout the console.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component, e.g. "2024-03-15".
// The zero value is the empty string and means "not set".
type Date string

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates s and returns it as a Date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(s), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == "" }

// Time returns midnight UTC of the date.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// Valid reports whether the date is set and well formed.
func (d Date) Valid() bool {
	if d.IsZero() {
		return false
	}
	_, err := d.Time()
	return err == nil
}

// AddDate offsets the date with time.AddDate semantics, so overflowing days
// roll into the next month (Jan 31 + 1 month = Mar 3 in non-leap years).
func (d Date) AddDate(years, months, days int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", fmt.Errorf("add to date %q: %w", d, err)
	}
	return DateOf(t.AddDate(years, months, days)), nil
}

// Before reports whether d is strictly earlier than other. Both must be valid;
// comparison falls back to string order, which matches for DateLayout.
func (d Date) Before(other Date) bool { return d < other }

// Month returns the "YYYY-MM" prefix of a valid date.
func (d Date) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

func (d Date) String() string { return string(d) }
