// Package timewindow converts raw delivery times into the canonical
// 2-hour window shown to customers.
package timewindow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// fallbackMinutes is used for unparseable input: 9:00 AM.
	fallbackMinutes = 540

	earliestStart = 420  // 7:00 AM
	latestStart   = 1080 // 6:00 PM

	durationMinutes = 120
	roundTo         = 30
)

// Window is a customer-facing delivery window. Start and End are
// minutes from midnight; End is always Start+120.
type Window struct {
	Start int
	End   int
}

var (
	clockRe     = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})(?::\d{2})?\s*(AM|PM)?\b`)
	bareMeridRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(AM|PM)\b`)
)

// FromMinutes builds the window for a time given as minutes from midnight.
// The start rounds up to the next 30-minute mark and is clamped to
// [7:00 AM, 6:00 PM]; the end is exactly two hours after the start and
// is never clamped.
func FromMinutes(minutes int) Window {
	start := minutes
	if rem := start % roundTo; rem != 0 {
		start += roundTo - rem
	}

	if start < earliestStart {
		start = earliestStart
	}
	if start > latestStart {
		start = latestStart
	}

	return Window{Start: start, End: start + durationMinutes}
}

// FromString parses a raw time string ("2:15 PM", "14:15", "14:15:00",
// or a full timestamp containing a clock time) and builds the window.
// Unparseable input falls back to 9:00 AM rather than failing: a missing
// time still deserves a plausible window.
func FromString(raw string) Window {
	return FromMinutes(parseMinutes(raw))
}

func parseMinutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallbackMinutes
	}

	if m := clockRe.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if minute > 59 {
			return fallbackMinutes
		}

		switch strings.ToUpper(m[3]) {
		case "PM":
			if hour < 1 || hour > 12 {
				return fallbackMinutes
			}
			if hour != 12 {
				hour += 12
			}
		case "AM":
			if hour < 1 || hour > 12 {
				return fallbackMinutes
			}
			if hour == 12 {
				hour = 0
			}
		default:
			if hour > 23 {
				return fallbackMinutes
			}
		}

		return hour*60 + minute
	}

	// "9 AM" with no minutes.
	if m := bareMeridRe.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return fallbackMinutes
		}
		if strings.EqualFold(m[2], "PM") && hour != 12 {
			hour += 12
		}
		if strings.EqualFold(m[2], "AM") && hour == 12 {
			hour = 0
		}
		return hour * 60
	}

	return fallbackMinutes
}

// Text renders the window as e.g. "between 9:00 and 11:00 AM" or
// "between 11:00 AM and 1:00 PM". The meridiem collapses to a single
// suffix when both ends share it.
func (w Window) Text() string {
	startClock, startMerid := clock(w.Start)
	endClock, endMerid := clock(w.End)

	if startMerid == endMerid {
		return fmt.Sprintf("between %s and %s %s", startClock, endClock, endMerid)
	}

	return fmt.Sprintf("between %s %s and %s %s", startClock, startMerid, endClock, endMerid)
}

// clock renders minutes-from-midnight as a 12-hour clock and meridiem.
func clock(minutes int) (string, string) {
	minutes %= 24 * 60

	hour := minutes / 60
	minute := minutes % 60

	merid := "AM"
	if hour >= 12 {
		merid = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d", display, minute), merid
}
