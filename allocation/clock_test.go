package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Run("24 Hour", func(t *testing.T) {
		c, ok := ParseClock("09:30")
		assert.True(t, ok)
		assert.Equal(t, Clock(9*60+30), c)
	})

	t.Run("With Seconds", func(t *testing.T) {
		c, ok := ParseClock("14:00:00")
		assert.True(t, ok)
		assert.Equal(t, Clock(14*60), c)
	})

	t.Run("12 Hour", func(t *testing.T) {
		c, ok := ParseClock("2:30 PM")
		assert.True(t, ok)
		assert.Equal(t, Clock(14*60+30), c)
	})

	t.Run("Whitespace", func(t *testing.T) {
		c, ok := ParseClock("  10:15 ")
		assert.True(t, ok)
		assert.Equal(t, Clock(10*60+15), c)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, ok := ParseClock("half past nine")
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := ParseClock("")
		assert.False(t, ok)
	})
}

func TestClockString(t *testing.T) {
	c, _ := ParseClock("9:05")
	assert.Equal(t, "09:05", c.String())
}

func TestClockHours(t *testing.T) {
	c, _ := ParseClock("13:30")
	assert.InDelta(t, 13.5, c.Hours(), 0.0001)
}

func TestOverlaps(t *testing.T) {
	mustClock := func(s string) Clock {
		c, ok := ParseClock(s)
		if !ok {
			t.Fatalf("bad clock literal %q", s)
		}
		return c
	}

	t.Run("Plain Overlap", func(t *testing.T) {
		assert.True(t, overlaps(mustClock("09:00"), mustClock("10:00"), mustClock("09:30"), mustClock("10:30")))
	})

	t.Run("Touching Windows Do Not Overlap", func(t *testing.T) {
		assert.False(t, overlaps(mustClock("09:00"), mustClock("10:00"), mustClock("10:00"), mustClock("11:00")))
	})

	t.Run("Disjoint", func(t *testing.T) {
		assert.False(t, overlaps(mustClock("09:00"), mustClock("10:00"), mustClock("12:00"), mustClock("13:00")))
	})

	t.Run("Overnight Span", func(t *testing.T) {
		// 22:00-02:00 wraps midnight and covers 23:00-23:30.
		assert.True(t, overlaps(mustClock("22:00"), mustClock("02:00"), mustClock("23:00"), mustClock("23:30")))
	})

	t.Run("Zero Length Never Overlaps", func(t *testing.T) {
		assert.False(t, overlaps(mustClock("09:00"), mustClock("09:00"), mustClock("08:00"), mustClock("12:00")))
	})
}

func TestContains(t *testing.T) {
	mustClock := func(s string) Clock {
		c, _ := ParseClock(s)
		return c
	}

	assert.True(t, contains(mustClock("09:00"), mustClock("10:00"), mustClock("09:30")))
	assert.False(t, contains(mustClock("09:00"), mustClock("10:00"), mustClock("10:00")))
	assert.True(t, contains(mustClock("23:00"), mustClock("01:00"), mustClock("00:30")))
	assert.False(t, contains(mustClock("23:00"), mustClock("01:00"), mustClock("12:00")))
}
