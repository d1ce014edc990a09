// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// InactivityCutoff returns the timestamp before which a user counts as
// inactive for the daily nudge (24 hours before now).
func InactivityCutoff(now time.Time) time.Time {
	return now.Add(-24 * time.Hour)
}

// AladhanDate formats a date the way the Aladhan timings endpoint expects
// (DD-MM-YYYY, no zero padding).
func AladhanDate(t time.Time) string {
	return t.Format("2-1-2006")
}
