package utils

import (
	"fmt"
	"time"
)

// LoadLocation resolves the display timezone; an empty name means local time.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}
	return loc, nil
}

// FormatIn returns t formatted in loc.
func FormatIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04")
}

// ParseDay accepts 2025-02-07 or 07/02/25 and returns midnight of that day in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		day, err = time.ParseInLocation("02/01/06", s, loc)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse day %q: %w", s, err)
	}
	return day, nil
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format("2006-01-02") == b.In(loc).Format("2006-01-02")
}
