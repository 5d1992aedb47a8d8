package allocation

import "fmt"

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// IsAvailable answers whether an assistant is free for the proposed window.
// Checks run in order and short-circuit on the first failure: punch gate,
// ad-hoc time blocks, then overlap against the assistant's other active
// appointments. excludeID skips the row being edited so an appointment never
// conflicts with itself. The reason string is empty when available.
func (s *Snapshot) IsAvailable(assistant, start, end, excludeID string) (bool, string) {
	if s.onWeeklyOff(assistant) {
		return false, fmt.Sprintf("weekly off on %s", weekdayNames[((s.Weekday%7)+7)%7])
	}
	rec, ok := s.punch(assistant)
	if ok && rec.Out != "" {
		return false, fmt.Sprintf("punched out at %s", rec.Out)
	}
	if !ok || rec.In == "" {
		return false, "not punched in"
	}

	ws, okStart := ParseClock(start)
	we, okEnd := ParseClock(end)
	if !okStart || !okEnd {
		// Cannot determine a window; the permissive policy lets the edit
		// through rather than blocking on malformed data.
		if OnParseFailure == ParsePermissive {
			return true, ""
		}
		return false, "unparseable time window"
	}

	key := NormalizeIdentity(assistant)
	for _, block := range s.TimeBlocks {
		if NormalizeIdentity(block.Assistant) != key {
			continue
		}
		if block.Date != "" && s.Date != "" && block.Date != s.Date {
			continue
		}
		bs, ok1 := ParseClock(block.Start)
		be, ok2 := ParseClock(block.End)
		if !ok1 || !ok2 {
			continue
		}
		if overlaps(ws, we, bs, be) {
			return false, fmt.Sprintf("Blocked: %s", block.Reason)
		}
	}

	for _, appt := range s.Appointments {
		if appt.ID == excludeID || !appt.Active() {
			continue
		}
		if !s.assignedTo(appt, key) {
			continue
		}
		as, ok1 := ParseClock(appt.Start)
		ae, ok2 := ParseClock(appt.End)
		if !ok1 || !ok2 {
			continue
		}
		if overlaps(ws, we, as, ae) {
			return false, fmt.Sprintf("With %s (%s-%s)", appt.Patient, as, ae)
		}
	}

	return true, ""
}

func (s *Snapshot) assignedTo(appt Appointment, key string) bool {
	for _, role := range Roles {
		if name := appt.Assistant(role); name != "" && NormalizeIdentity(name) == key {
			return true
		}
	}
	return false
}
