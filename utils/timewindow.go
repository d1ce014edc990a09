// utils/timewindow.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string into minutes since local midnight.
// The Aladhan API sometimes appends a zone suffix like "05:12 (BST)"; anything
// after the first space is ignored.
func ParseClock(s string) (int, error) {
	clock, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q: missing ':'", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock for offsets in [0, MinutesPerDay).
func FormatClock(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CurrentMinutes returns "now" as minutes since midnight in the named timezone,
// truncated to minute granularity. Unknown zones fall back to UTC.
func CurrentMinutes(now time.Time, timezone string) int {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return local.Hour()*60 + local.Minute()
}

// RolloverAdjust maps an end offset onto the same day axis as its start offset.
// If the interval crosses midnight (end < start) the end is pushed into the next
// day. Callers comparing "now" against the result must apply the same +1440
// shift to now when it also falls past midnight.
func RolloverAdjust(end, start int) int {
	if end < start {
		return end + MinutesPerDay
	}
	return end
}
