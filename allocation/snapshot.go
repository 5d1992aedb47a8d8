package allocation

// Appointment is the slice of a grid row the engine needs: who, when, and
// which assistants are already on it.
type Appointment struct {
	ID      string
	Patient string
	Doctor  string
	Start   string
	End     string
	Status  string
	First   string
	Second  string
	Third   string
}

// Assistant returns the name assigned to a role, "" when the slot is empty.
func (a Appointment) Assistant(role Role) string {
	switch role {
	case RoleFirst:
		return a.First
	case RoleSecond:
		return a.Second
	case RoleThird:
		return a.Third
	}
	return ""
}

// Active reports whether the appointment still counts for conflict checks.
// Cancelled, finished and shifted rows no longer occupy their assistants.
func (a Appointment) Active() bool {
	switch NormalizeIdentity(a.Status) {
	case "CANCELLED", "DONE", "COMPLETED", "SHIFTED":
		return false
	}
	return true
}

// TimeBlock is an ad-hoc single-day exclusion window for an assistant.
type TimeBlock struct {
	Assistant string
	Date      string
	Start     string
	End       string
	Reason    string
}

// PunchRecord is today's punch state for one assistant. Empty strings mean
// the corresponding punch has not happened.
type PunchRecord struct {
	In  string
	Out string
}

// Preference maps a role to "yes", "no" or "" (unset, treated as allowed).
type Preference map[Role]string

// Snapshot is a consistent read-only view of everything the engine needs
// for one decision. The surrounding application builds it per interaction;
// the engine never loads or writes anything itself.
type Snapshot struct {
	Config       Config
	Appointments []Appointment
	// Punches and Preferences are keyed by NormalizeIdentity(name).
	Punches     map[string]PunchRecord
	Preferences map[string]Preference
	// WeeklyOff maps weekday index (0=Sunday) to assistant names off that day.
	WeeklyOff  map[int][]string
	TimeBlocks []TimeBlock
	Date       string
	Weekday    int
}

func (s *Snapshot) punch(assistant string) (PunchRecord, bool) {
	rec, ok := s.Punches[NormalizeIdentity(assistant)]
	return rec, ok
}

func (s *Snapshot) preference(assistant string) Preference {
	return s.Preferences[NormalizeIdentity(assistant)]
}

func (s *Snapshot) onWeeklyOff(assistant string) bool {
	key := NormalizeIdentity(assistant)
	for _, name := range s.WeeklyOff[s.Weekday] {
		if NormalizeIdentity(name) == key {
			return true
		}
	}
	return false
}
