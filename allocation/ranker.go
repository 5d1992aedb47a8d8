package allocation

import "sort"

// RankCandidates builds the ordered candidate list for one role. Precedence,
// highest first: the when_first_is chain keyed by the already-resolved FIRST
// assignment, the doctor-specific override, every matched time-of-day
// threshold (latest threshold first), then the department default. Duplicate
// names keep their first-seen position.
func RankCandidates(role Role, rule RoleRule, doctor string, hour float64, firstAssigned string) []string {
	var out []string

	if firstAssigned != "" {
		firstKey := NormalizeIdentity(firstAssigned)
		for cond, names := range rule.WhenFirstIs {
			if NormalizeIdentity(cond) == firstKey {
				out = append(out, names...)
				break
			}
		}
	}

	if doctor != "" {
		doctorKey := NormalizeIdentity(doctor)
		for cond, names := range rule.DoctorOverrides {
			if NormalizeIdentity(cond) == doctorKey {
				out = append(out, names...)
				break
			}
		}
	}

	var matched []TimeOverride
	for _, to := range rule.TimeOverrides {
		if to.AfterHour <= hour {
			matched = append(matched, to)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AfterHour > matched[j].AfterHour
	})
	for _, to := range matched {
		out = append(out, to.Names...)
	}

	out = append(out, rule.Default...)

	return dedupeNames(out)
}

// dedupeNames removes duplicates by normalized identity, preserving the
// first occurrence's spelling and position.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		key := NormalizeIdentity(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
