package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:3000", "*.puttdental.com"}

	t.Run("exact match", func(t *testing.T) {
		assert.True(t, originAllowed(allowed, "http://localhost:3000"))
	})

	t.Run("wildcard suffix", func(t *testing.T) {
		assert.True(t, originAllowed(allowed, "https://desk.puttdental.com"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		assert.False(t, originAllowed(allowed, "https://evil.example.com"))
	})

	t.Run("suffix must include the dot", func(t *testing.T) {
		assert.False(t, originAllowed(allowed, "https://notputtdental.com"))
	})

	t.Run("empty origin", func(t *testing.T) {
		assert.False(t, originAllowed(allowed, ""))
	})
}
