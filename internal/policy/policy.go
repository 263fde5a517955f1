// Package policy holds per-store delivery-day rules: which weekdays a
// store delivers on, documented flexible days, blackout dates, and the
// minimum lead time for rescheduling.
package policy

import (
	"fmt"
	"strings"
	"time"
)

// Store is the delivery-day policy for a single store/region tag.
type Store struct {
	Days          []time.Weekday // base delivery days
	FlexibleDays  []time.Weekday // days the store can deliver on by exception
	Blackouts     []time.Time    // calendar dates with no deliveries
	ExceptionNote string         // documented exceptions, passed verbatim to the oracle
}

// Set is the full policy configuration.
type Set struct {
	Stores      map[string]Store
	MinLeadDays int // minimum days between "now" and a rescheduled date
}

// For returns the policy for a store tag. ok is false when the store has
// no configured policy, which forces manual handling downstream.
func (s Set) For(store string) (Store, bool) {
	st, ok := s.Stores[store]
	return st, ok
}

// AllowsDay reports whether d is one of the store's base delivery days.
func (st Store) AllowsDay(d time.Weekday) bool {
	for _, w := range st.Days {
		if w == d {
			return true
		}
	}
	return false
}

// AllowsReschedule reports whether d is acceptable for a rescheduled
// delivery: base days plus documented flexible days.
func (st Store) AllowsReschedule(d time.Weekday) bool {
	if st.AllowsDay(d) {
		return true
	}
	for _, w := range st.FlexibleDays {
		if w == d {
			return true
		}
	}
	return false
}

// IsBlackout reports whether date falls on a configured blackout date.
// Comparison is by calendar date only.
func (st Store) IsBlackout(date time.Time) bool {
	y, m, d := date.Date()
	for _, b := range st.Blackouts {
		by, bm, bd := b.Date()
		if y == by && m == bm && d == bd {
			return true
		}
	}
	return false
}

// DayNames renders the base delivery days for customer-facing messages,
// e.g. "Tuesday and Thursday" or "Monday, Wednesday and Friday".
func (st Store) DayNames() string {
	names := make([]string, len(st.Days))
	for i, d := range st.Days {
		names[i] = d.String()
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// ParseWeekday converts a config day name ("monday", "Mon") to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue", "tues":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu", "thur", "thurs":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
