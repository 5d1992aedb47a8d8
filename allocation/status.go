package allocation

import (
	"fmt"
	"sort"
)

// AssistantStatus is the dashboard legend state for one assistant.
type AssistantStatus string

const (
	StatusFree    AssistantStatus = "free"
	StatusBusy    AssistantStatus = "busy"
	StatusBlocked AssistantStatus = "blocked"
	StatusOff     AssistantStatus = "off"
	StatusUnknown AssistantStatus = "unknown"
)

// StatusEntry is one assistant's current state on the status board.
type StatusEntry struct {
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Status     AssistantStatus `json:"status"`
	Detail     string          `json:"detail,omitempty"`
}

// StatusBoard reports every configured assistant's state at the given clock
// instant: off (weekly off or not punched in), blocked by a time block, busy
// on an appointment covering now, otherwise free. Unknown covers an
// unparseable "now".
func (s *Snapshot) StatusBoard(now string) []StatusEntry {
	at, ok := ParseClock(now)

	deptNames := make([]string, 0, len(s.Config.Departments))
	for name := range s.Config.Departments {
		deptNames = append(deptNames, name)
	}
	sort.Strings(deptNames)

	var board []StatusEntry
	for _, deptName := range deptNames {
		for _, assistant := range s.Config.Departments[deptName].Assistants {
			entry := StatusEntry{Name: assistant, Department: deptName}
			if !ok {
				entry.Status = StatusUnknown
			} else {
				entry.Status, entry.Detail = s.statusAt(assistant, at)
			}
			board = append(board, entry)
		}
	}
	return board
}

func (s *Snapshot) statusAt(assistant string, at Clock) (AssistantStatus, string) {
	if s.onWeeklyOff(assistant) {
		return StatusOff, fmt.Sprintf("weekly off on %s", weekdayNames[((s.Weekday%7)+7)%7])
	}
	rec, ok := s.punch(assistant)
	if ok && rec.Out != "" {
		return StatusOff, fmt.Sprintf("punched out at %s", rec.Out)
	}
	if !ok || rec.In == "" {
		return StatusOff, "not punched in"
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
		if ok1 && ok2 && contains(bs, be, at) {
			return StatusBlocked, fmt.Sprintf("Blocked: %s", block.Reason)
		}
	}

	for _, appt := range s.Appointments {
		if !appt.Active() || !s.assignedTo(appt, key) {
			continue
		}
		as, ok1 := ParseClock(appt.Start)
		ae, ok2 := ParseClock(appt.End)
		if ok1 && ok2 && contains(as, ae, at) {
			return StatusBusy, fmt.Sprintf("With %s (%s-%s)", appt.Patient, as, ae)
		}
	}

	return StatusFree, ""
}
