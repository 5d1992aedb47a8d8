package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankCandidatesDefaultOnly(t *testing.T) {
	rule := RoleRule{Default: []string{"ANSHIKA", "RAJA", "NITIN"}}
	got := RankCandidates(RoleFirst, rule, "DR. PUTT", 10, "")
	assert.Equal(t, []string{"ANSHIKA", "RAJA", "NITIN"}, got)
}

func TestRankCandidatesEmptyRule(t *testing.T) {
	got := RankCandidates(RoleFirst, RoleRule{}, "DR. PUTT", 10, "")
	assert.Empty(t, got)
}

func TestRankCandidatesDoctorOverride(t *testing.T) {
	rule := RoleRule{
		DoctorOverrides: map[string][]string{"DR. MEHTA": {"RAJA"}},
		Default:         []string{"ANSHIKA", "RAJA"},
	}

	t.Run("Override Leads For Matching Doctor", func(t *testing.T) {
		got := RankCandidates(RoleFirst, rule, "dr.mehta", 10, "")
		assert.Equal(t, []string{"RAJA", "ANSHIKA"}, got)
	})

	t.Run("Other Doctor Gets Default", func(t *testing.T) {
		got := RankCandidates(RoleFirst, rule, "DR. PUTT", 10, "")
		assert.Equal(t, []string{"ANSHIKA", "RAJA"}, got)
	})
}

func TestRankCandidatesTimeOverrides(t *testing.T) {
	rule := RoleRule{
		TimeOverrides: []TimeOverride{
			{AfterHour: 12, Names: []string{"A"}},
			{AfterHour: 15.5, Names: []string{"B"}},
		},
		Default: []string{"C"},
	}

	t.Run("Latest Matching Threshold Wins", func(t *testing.T) {
		got := RankCandidates(RoleFirst, rule, "", 16, "")
		assert.Equal(t, []string{"B", "A", "C"}, got)
	})

	t.Run("Only Earlier Threshold Matches", func(t *testing.T) {
		got := RankCandidates(RoleFirst, rule, "", 13, "")
		assert.Equal(t, []string{"A", "C"}, got)
	})

	t.Run("No Threshold Matches", func(t *testing.T) {
		got := RankCandidates(RoleFirst, rule, "", 9, "")
		assert.Equal(t, []string{"C"}, got)
	})

	t.Run("Boundary Hour Matches", func(t *testing.T) {
		got := RankCandidates(RoleFirst, rule, "", 15.5, "")
		assert.Equal(t, []string{"B", "A", "C"}, got)
	})
}

func TestRankCandidatesWhenFirstIs(t *testing.T) {
	rule := RoleRule{
		WhenFirstIs: map[string][]string{"ANSHIKA": {"ARCHANA", "NITIN"}},
		Default:     []string{"NITIN", "ANSHIKA"},
	}

	t.Run("Chained From First Assignment", func(t *testing.T) {
		got := RankCandidates(RoleSecond, rule, "", 10, "Anshika")
		assert.Equal(t, []string{"ARCHANA", "NITIN", "ANSHIKA"}, got)
	})

	t.Run("No First Assignment", func(t *testing.T) {
		got := RankCandidates(RoleSecond, rule, "", 10, "")
		assert.Equal(t, []string{"NITIN", "ANSHIKA"}, got)
	})

	t.Run("Unmatched First Assignment", func(t *testing.T) {
		got := RankCandidates(RoleSecond, rule, "", 10, "RAJA")
		assert.Equal(t, []string{"NITIN", "ANSHIKA"}, got)
	})
}

func TestRankCandidatesDeduplicates(t *testing.T) {
	rule := RoleRule{
		DoctorOverrides: map[string][]string{"DR. PUTT": {"Archana", "Nitin"}},
		TimeOverrides:   []TimeOverride{{AfterHour: 13, Names: []string{"ARCHANA"}}},
		Default:         []string{"NITIN", "RAJA", "archana"},
	}

	got := RankCandidates(RoleFirst, rule, "DR. PUTT", 14, "")
	// First-seen spelling and position are kept.
	assert.Equal(t, []string{"Archana", "Nitin", "RAJA"}, got)
}
