package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Dr. Smith", "DRSMITH"},
		{"DR.SMITH", "DRSMITH"},
		{"  anshika  ", "ANSHIKA"},
		{"A-R_C!H A N.A", "ARCHANA"},
		{"", ""},
		{"...", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeIdentity(tc.in), "input %q", tc.in)
	}
}

func TestSameIdentity(t *testing.T) {
	assert.True(t, sameIdentity("Dr. Smith", "dr smith"))
	assert.False(t, sameIdentity("Dr. Smith", "Dr. Smythe"))
}
