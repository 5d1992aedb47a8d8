package allocation

import "strings"

// NormalizeIdentity reduces a staff or doctor name to its matching key.
// All identity comparison in this package (rule lookups, availability,
// de-duplication) goes through this one function so that formatting
// differences like "Dr. Smith" vs "DR.SMITH" resolve to the same person.
func NormalizeIdentity(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sameIdentity(a, b string) bool {
	return NormalizeIdentity(a) == NormalizeIdentity(b)
}
