// utils/windows.go
package utils

// startToleranceMin is how long after an event start its window stays hot.
// Matched to the 5-minute dispatch tick so each window fires at most once.
const startToleranceMin = 5

// Ending-soon band: [17, 23] minutes before the prayer's effective end.
const (
	endingSoonMin = 17
	endingSoonMax = 23
)

// WindowKind distinguishes the notification windows evaluated per prayer.
type WindowKind string

const (
	WindowStart      WindowKind = "prayer_start"
	WindowEndingSoon WindowKind = "prayer_ending"
)

// Prayers lists the five daily prayers in dispatch order.
var Prayers = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// PrayerSuccessor maps each prayer to the timing that marks its effective end.
// This is a fixed table, not a chronological sort: Fajr ends at Sunrise (not at
// Dhuhr), and Isha wraps around to the next day's Fajr.
var PrayerSuccessor = map[string]string{
	"Fajr":    "Sunrise",
	"Dhuhr":   "Asr",
	"Asr":     "Maghrib",
	"Maghrib": "Isha",
	"Isha":    "Fajr",
}

// DuaSlot is a fixed-hour devotional reminder window.
type DuaSlot struct {
	Name string
	Hour int
}

// DuaSlots are the four daily dua reminder slots (local time).
var DuaSlots = []DuaSlot{
	{Name: "morning", Hour: 7},
	{Name: "midday", Hour: 13},
	{Name: "evening", Hour: 17},
	{Name: "night", Hour: 21},
}

// ActiveWindow identifies one currently-hot notification window.
type ActiveWindow struct {
	Prayer string
	Kind   WindowKind
}

// InStartWindow reports whether now is within [start, start+5) minutes.
func InStartWindow(now, start int) bool {
	return now >= start && now < start+startToleranceMin
}

// InEndingWindow reports whether now falls 17–23 minutes (inclusive) before the
// prayer's effective end. Both the successor start and now are shifted past
// midnight when the interval wraps.
func InEndingWindow(now, start, next int) bool {
	adjustedNext := RolloverAdjust(next, start)
	if now < start {
		now += MinutesPerDay
	}
	untilEnd := adjustedNext - now
	return untilEnd >= endingSoonMin && untilEnd <= endingSoonMax
}

// InHourWindow reports whether now is within [hour*60, hour*60+5) minutes.
func InHourWindow(now, hour int) bool {
	return InStartWindow(now, hour*60)
}

// ActiveWindows evaluates every prayer window against now, given the day's
// timings in minutes since midnight. Prayers missing from timings (or whose
// successor is missing) are skipped for the affected window. If a malformed
// timing set makes several windows hot at once, all of them are surfaced.
func ActiveWindows(now int, timings map[string]int) []ActiveWindow {
	var active []ActiveWindow
	for _, prayer := range Prayers {
		start, ok := timings[prayer]
		if !ok {
			continue
		}
		if InStartWindow(now, start) {
			active = append(active, ActiveWindow{Prayer: prayer, Kind: WindowStart})
		}
		next, ok := timings[PrayerSuccessor[prayer]]
		if !ok {
			continue
		}
		if InEndingWindow(now, start, next) {
			active = append(active, ActiveWindow{Prayer: prayer, Kind: WindowEndingSoon})
		}
	}
	return active
}

// ActiveDuaSlots returns the dua slots whose fixed-hour window contains now.
func ActiveDuaSlots(now int) []DuaSlot {
	var active []DuaSlot
	for _, slot := range DuaSlots {
		if InHourWindow(now, slot.Hour) {
			active = append(active, slot)
		}
	}
	return active
}
