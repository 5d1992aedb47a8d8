package allocation

import "sort"

// selectScope is one availability pool to select from: an ordered list of
// available assistants, which doubles as the fallback order when none of the
// ranked candidates is admissible.
type selectScope struct {
	available []string
}

func (sc selectScope) has(key string) bool {
	for _, name := range sc.available {
		if NormalizeIdentity(name) == key {
			return true
		}
	}
	return false
}

// selectCandidate picks the first admissible name for a role. Step one walks
// the ranked candidates; step two falls back to the pool's own ordering.
// Admissible means: available, not already used on this appointment, and not
// explicitly opted out of the role when preference gating is on. With load
// balancing enabled, candidates are stable-sorted by ascending assignment
// count before picking. Returns "" when nothing is admissible.
func (s *Snapshot) selectCandidate(role Role, ranked []string, scope selectScope, used map[string]bool, load map[string]int) string {
	pass := func(names []string) string {
		var admissible []string
		for _, name := range names {
			key := NormalizeIdentity(name)
			if key == "" || used[key] {
				continue
			}
			if !scope.has(key) {
				continue
			}
			if s.Config.Global.UseProfileRoleFlags && s.prefDenied(name, role) {
				continue
			}
			admissible = append(admissible, name)
		}
		if len(admissible) == 0 {
			return ""
		}
		if s.Config.Global.LoadBalance {
			sort.SliceStable(admissible, func(i, j int) bool {
				return load[NormalizeIdentity(admissible[i])] < load[NormalizeIdentity(admissible[j])]
			})
		}
		return admissible[0]
	}

	if chosen := pass(ranked); chosen != "" {
		return chosen
	}
	return pass(scope.available)
}

func (s *Snapshot) prefDenied(assistant string, role Role) bool {
	pref := s.preference(assistant)
	if pref == nil {
		return false
	}
	// Unset or blank defaults to allowed; only an explicit "no" gates.
	return NormalizeIdentity(pref[role]) == "NO"
}
