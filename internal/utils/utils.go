package utils

import (
	"fmt"
	"time"
)

// WeekStreak counts consecutive ISO weeks, ending with the week of now, that
// contain at least one of the given times.
func WeekStreak(times []time.Time, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, t := range times {
		year, week := t.ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}
