package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func selectorSnapshot(flags GlobalFlags) *Snapshot {
	cfg := DefaultConfig()
	cfg.Global = flags
	s := testSnapshot()
	s.Config = cfg
	return s
}

func TestSelectCandidateRankedFirst(t *testing.T) {
	s := selectorSnapshot(GlobalFlags{})
	scope := selectScope{available: []string{"NITIN", "ARCHANA", "RAJA"}}

	got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, nil)
	assert.Equal(t, "ARCHANA", got)
}

func TestSelectCandidateSkipsUsed(t *testing.T) {
	s := selectorSnapshot(GlobalFlags{})
	scope := selectScope{available: []string{"NITIN", "ARCHANA"}}
	used := map[string]bool{"ARCHANA": true}

	got := s.selectCandidate(RoleSecond, []string{"ARCHANA", "NITIN"}, scope, used, nil)
	assert.Equal(t, "NITIN", got)
}

func TestSelectCandidateFallbackToScopeOrder(t *testing.T) {
	s := selectorSnapshot(GlobalFlags{})
	scope := selectScope{available: []string{"RAJA", "NITIN"}}

	// Nobody ranked is available; the pool's own ordering decides.
	got := s.selectCandidate(RoleFirst, []string{"ARCHANA"}, scope, map[string]bool{}, nil)
	assert.Equal(t, "RAJA", got)
}

func TestSelectCandidateNothingAdmissible(t *testing.T) {
	s := selectorSnapshot(GlobalFlags{})
	got := s.selectCandidate(RoleFirst, []string{"ARCHANA"}, selectScope{}, map[string]bool{}, nil)
	assert.Empty(t, got)
}

func TestSelectCandidatePreferenceGating(t *testing.T) {
	t.Run("Explicit No Gates When Enabled", func(t *testing.T) {
		s := selectorSnapshot(GlobalFlags{UseProfileRoleFlags: true})
		s.Preferences["ARCHANA"] = Preference{RoleFirst: "no"}
		scope := selectScope{available: []string{"ARCHANA", "NITIN"}}

		got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, nil)
		assert.Equal(t, "NITIN", got)
	})

	t.Run("Unset Preference Allows", func(t *testing.T) {
		s := selectorSnapshot(GlobalFlags{UseProfileRoleFlags: true})
		scope := selectScope{available: []string{"ARCHANA", "NITIN"}}

		got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, nil)
		assert.Equal(t, "ARCHANA", got)
	})

	t.Run("Gating Disabled Ignores Flags", func(t *testing.T) {
		s := selectorSnapshot(GlobalFlags{UseProfileRoleFlags: false})
		s.Preferences["ARCHANA"] = Preference{RoleFirst: "no"}
		scope := selectScope{available: []string{"ARCHANA", "NITIN"}}

		got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, nil)
		assert.Equal(t, "ARCHANA", got)
	})
}

func TestSelectCandidateLoadBalance(t *testing.T) {
	load := map[string]int{"ARCHANA": 2, "NITIN": 0}
	scope := selectScope{available: []string{"ARCHANA", "NITIN"}}

	t.Run("Fewest Assignments Wins", func(t *testing.T) {
		s := selectorSnapshot(GlobalFlags{LoadBalance: true})
		got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, load)
		assert.Equal(t, "NITIN", got)
	})

	t.Run("Ties Keep Rank Order", func(t *testing.T) {
		s := selectorSnapshot(GlobalFlags{LoadBalance: true})
		even := map[string]int{"ARCHANA": 1, "NITIN": 1}
		got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, even)
		assert.Equal(t, "ARCHANA", got)
	})

	t.Run("Disabled Keeps Rank Order", func(t *testing.T) {
		s := selectorSnapshot(GlobalFlags{LoadBalance: false})
		got := s.selectCandidate(RoleFirst, []string{"ARCHANA", "NITIN"}, scope, map[string]bool{}, load)
		assert.Equal(t, "ARCHANA", got)
	})
}
