package allocation

import (
	"fmt"
	"strings"
	"time"
)

// Clock is a time of day in minutes since midnight.
type Clock int

const minutesPerDay = 24 * 60

// ParsePolicy controls what the availability oracle does when an
// appointment window cannot be parsed.
type ParsePolicy int

const (
	// ParsePermissive treats an unparseable window as "available" so a
	// malformed cell never blocks an edit.
	ParsePermissive ParsePolicy = iota
	ParseStrict
)

// OnParseFailure is the active policy. The dashboard has always been
// permissive here; flip this deliberately, not casually.
const OnParseFailure = ParsePermissive

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3:04 pm", "3:04pm"}

// ParseClock parses grid time strings like "09:30", "14:00:00" or "2:30 PM".
func ParseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock(t.Hour()*60 + t.Minute()), true
		}
	}
	return 0, false
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60%24, int(c)%60)
}

// Hours returns the clock value as hour + minute/60, the unit the
// time-of-day rule thresholds are expressed in.
func (c Clock) Hours() float64 {
	return float64(c) / 60.0
}

// span normalizes a window, treating end < start as crossing midnight.
// A zero-length window stays zero-length and overlaps nothing.
func span(start, end Clock) (int, int) {
	s, e := int(start), int(end)
	if e < s {
		e += minutesPerDay
	}
	return s, e
}

// overlaps reports whether two half-open windows intersect. Windows that
// wrap past midnight are extended by 24h before comparing.
func overlaps(aStart, aEnd, bStart, bEnd Clock) bool {
	as, ae := span(aStart, aEnd)
	bs, be := span(bStart, bEnd)
	return as < be && bs < ae
}

// contains reports whether the instant at falls inside the window.
func contains(start, end, at Clock) bool {
	s, e := span(start, end)
	t := int(at)
	if t < s {
		t += minutesPerDay
	}
	return t >= s && t < e
}
