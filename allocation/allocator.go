package allocation

import "sort"

// Assignment is the resolved three-slot mapping. Blank means the slot could
// not be filled.
type Assignment struct {
	First  string `json:"FIRST"`
	Second string `json:"SECOND"`
	Third  string `json:"THIRD"`
}

// Get returns the name held by a role.
func (a Assignment) Get(role Role) string {
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

// Set writes a name into a role.
func (a *Assignment) Set(role Role, name string) {
	switch role {
	case RoleFirst:
		a.First = name
	case RoleSecond:
		a.Second = name
	case RoleThird:
		a.Third = name
	}
}

// AllocateRequest describes one appointment edit to resolve assistants for.
type AllocateRequest struct {
	Doctor string
	Start  string
	End    string
	// ExcludeID is the row being edited, skipped during conflict checks.
	ExcludeID string
	// Current holds the row's existing assignments.
	Current Assignment
	// OnlyFillEmpty leaves already-filled slots untouched.
	OnlyFillEmpty bool
}

// Allocate resolves FIRST, SECOND and THIRD for one appointment. Roles are
// filled in order so the SECOND rule's when_first_is chain can see the FIRST
// pick made in the same call. A blank doctor or an unparseable window
// returns the current assignments unchanged; a role with no admissible
// candidate stays blank. Never fails.
func (s *Snapshot) Allocate(req AllocateRequest) Assignment {
	if NormalizeIdentity(req.Doctor) == "" {
		return req.Current
	}
	startClock, ok := ParseClock(req.Start)
	if !ok {
		return req.Current
	}
	if _, ok := ParseClock(req.End); !ok {
		return req.Current
	}

	department := s.Config.DepartmentForDoctor(req.Doctor)

	deptScope := selectScope{available: s.availableFrom(s.rosterOf(department), req.Start, req.End, req.ExcludeID)}
	var allScope selectScope
	if s.Config.Global.CrossDepartmentFallback {
		allScope = selectScope{available: s.availableFrom(s.allAssistants(), req.Start, req.End, req.ExcludeID)}
	}

	load := s.assignmentLoad(req.ExcludeID)

	result := req.Current
	used := make(map[string]bool)
	if req.OnlyFillEmpty {
		for _, role := range Roles {
			if name := result.Get(role); name != "" {
				used[NormalizeIdentity(name)] = true
			}
		}
	}

	for _, role := range Roles {
		if req.OnlyFillEmpty && result.Get(role) != "" {
			continue
		}

		var ranked []string
		if rule, ok := s.Config.Rule(department, role); ok {
			ranked = RankCandidates(role, rule, req.Doctor, startClock.Hours(), result.First)
		}

		chosen := s.selectCandidate(role, ranked, deptScope, used, load)
		if chosen == "" && s.Config.Global.CrossDepartmentFallback {
			chosen = s.selectCandidate(role, ranked, allScope, used, load)
		}

		result.Set(role, chosen)
		if chosen != "" {
			used[NormalizeIdentity(chosen)] = true
		}
	}

	return result
}

// rosterOf returns a department's assistant roster in configured order.
func (s *Snapshot) rosterOf(department string) []string {
	dept, ok := s.Config.Departments[department]
	if !ok {
		return nil
	}
	return dept.Assistants
}

// allAssistants flattens every department roster, department names sorted
// for a deterministic cross-department fallback order.
func (s *Snapshot) allAssistants() []string {
	names := make([]string, 0, len(s.Config.Departments))
	for name := range s.Config.Departments {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	seen := make(map[string]bool)
	for _, deptName := range names {
		for _, assistant := range s.Config.Departments[deptName].Assistants {
			key := NormalizeIdentity(assistant)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, assistant)
		}
	}
	return out
}

// availableFrom filters a roster down to assistants free for the window,
// preserving roster order.
func (s *Snapshot) availableFrom(roster []string, start, end, excludeID string) []string {
	var out []string
	for _, name := range roster {
		if free, _ := s.IsAvailable(name, start, end, excludeID); free {
			out = append(out, name)
		}
	}
	return out
}

// assignmentLoad counts how many active appointments each assistant is
// already on, keyed by normalized identity. Used for load balancing.
func (s *Snapshot) assignmentLoad(excludeID string) map[string]int {
	load := make(map[string]int)
	for _, appt := range s.Appointments {
		if appt.ID == excludeID || !appt.Active() {
			continue
		}
		for _, role := range Roles {
			if name := appt.Assistant(role); name != "" {
				load[NormalizeIdentity(name)]++
			}
		}
	}
	return load
}
