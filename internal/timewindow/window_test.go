package timewindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMinutes_RoundsUpToHalfHour(t *testing.T) {
	// 7:14 rounds up to 7:30.
	w := FromMinutes(7*60 + 14)
	assert.Equal(t, 7*60+30, w.Start)
	assert.Equal(t, 9*60+30, w.End)
}

func TestFromMinutes_OnMarkUnchanged(t *testing.T) {
	w := FromMinutes(9 * 60)
	assert.Equal(t, 9*60, w.Start)
	assert.Equal(t, 11*60, w.End)
}

func TestFromMinutes_ClampsEarly(t *testing.T) {
	w := FromMinutes(5 * 60)
	assert.Equal(t, 7*60, w.Start)
}

func TestFromMinutes_ClampsLate(t *testing.T) {
	// Past 6:00 PM the start pins to 6:00 PM; the end still runs to 8:00 PM.
	w := FromMinutes(22*60 + 45)
	assert.Equal(t, 18*60, w.Start)
	assert.Equal(t, 20*60, w.End)
	assert.Equal(t, "between 6:00 and 8:00 PM", w.Text())
}

func TestFromMinutes_WholeDayBounds(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes++ {
		w := FromMinutes(minutes)
		assert.GreaterOrEqual(t, w.Start, 7*60, "minutes=%d", minutes)
		assert.LessOrEqual(t, w.Start, 18*60, "minutes=%d", minutes)
		assert.Equal(t, w.Start+120, w.End, "minutes=%d", minutes)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"morning with meridiem", "9:14 AM", "between 9:30 and 11:30 AM"},
		{"afternoon", "2:15 PM", "between 2:30 and 4:30 PM"},
		{"crosses noon", "10:45 AM", "between 11:00 AM and 1:00 PM"},
		{"24-hour clock", "14:15", "between 2:30 and 4:30 PM"},
		{"with seconds", "14:15:00", "between 2:30 and 4:30 PM"},
		{"full timestamp", "2026-09-14 16:05:00", "between 4:30 and 6:30 PM"},
		{"bare hour", "9 AM", "between 9:00 and 11:00 AM"},
		{"noon", "12:00 PM", "between 12:00 and 2:00 PM"},
		{"midnight clamps", "12:05 AM", "between 7:00 and 9:00 AM"},
		{"unparseable falls back to 9am", "whenever works", "between 9:00 and 11:00 AM"},
		{"empty falls back to 9am", "", "between 9:00 and 11:00 AM"},
		{"past closing clamps", "7:30 PM", "between 6:00 and 8:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromString(tt.raw).Text())
		})
	}
}
