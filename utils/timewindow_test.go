package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockFormatClockRoundTrip(t *testing.T) {
	for minutes := 0; minutes < MinutesPerDay; minutes++ {
		clock := FormatClock(minutes)
		parsed, err := ParseClock(clock)
		require.NoError(t, err, "clock %s", clock)
		assert.Equal(t, minutes, parsed, "clock %s", clock)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "05:12", want: 312},
		{in: "23:59", want: 1439},
		{in: "5:07", want: 307},
		{in: "05:12 (BST)", want: 312},
		{in: " 12:30 ", want: 750},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:30", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "1230", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestCurrentMinutes(t *testing.T) {
	// 12:34 UTC is 18:34 in Dhaka (UTC+6).
	now := time.Date(2026, 8, 27, 12, 34, 56, 0, time.UTC)

	assert.Equal(t, 12*60+34, CurrentMinutes(now, "UTC"))
	assert.Equal(t, 18*60+34, CurrentMinutes(now, "Asia/Dhaka"))

	// Unknown zones fall back to UTC.
	assert.Equal(t, 12*60+34, CurrentMinutes(now, "Not/AZone"))
	assert.Equal(t, 12*60+34, CurrentMinutes(now, ""))
}

func TestRolloverAdjust(t *testing.T) {
	// Same-day interval is untouched.
	assert.Equal(t, 930, RolloverAdjust(930, 720))
	assert.Equal(t, 720, RolloverAdjust(720, 720))

	// Interval crossing midnight pushes the end into the next day.
	assert.Equal(t, 300+MinutesPerDay, RolloverAdjust(300, 1430))
}
