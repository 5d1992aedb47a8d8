package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Config: DefaultConfig(),
		Punches: map[string]PunchRecord{
			"ANSHIKA": {In: "08:30"},
			"NITIN":   {In: "09:00"},
			"ARCHANA": {In: "09:00"},
			"RAJA":    {In: "08:00", Out: "12:00"},
		},
		Preferences: map[string]Preference{},
		WeeklyOff:   map[int][]string{},
		Date:        "2026-09-01",
		Weekday:     2, // Tuesday
	}
}

func TestIsAvailablePunchGate(t *testing.T) {
	t.Run("Weekly Off", func(t *testing.T) {
		s := testSnapshot()
		s.WeeklyOff[2] = []string{"Anshika"}

		free, reason := s.IsAvailable("ANSHIKA", "09:00", "10:00", "")
		assert.False(t, free)
		assert.Equal(t, "weekly off on Tuesday", reason)
	})

	t.Run("Punched Out", func(t *testing.T) {
		s := testSnapshot()

		free, reason := s.IsAvailable("RAJA", "13:00", "14:00", "")
		assert.False(t, free)
		assert.Equal(t, "punched out at 12:00", reason)
	})

	t.Run("Never Punched In", func(t *testing.T) {
		s := testSnapshot()

		free, reason := s.IsAvailable("KOMAL", "09:00", "10:00", "")
		assert.False(t, free)
		assert.Equal(t, "not punched in", reason)
	})
}

func TestIsAvailableTimeBlocks(t *testing.T) {
	s := testSnapshot()
	s.TimeBlocks = []TimeBlock{
		{Assistant: "Nitin", Date: "2026-09-01", Start: "10:00", End: "11:00", Reason: "lab pickup"},
	}

	t.Run("Overlapping Block", func(t *testing.T) {
		free, reason := s.IsAvailable("NITIN", "10:30", "11:30", "")
		assert.False(t, free)
		assert.Equal(t, "Blocked: lab pickup", reason)
	})

	t.Run("Disjoint Block", func(t *testing.T) {
		free, reason := s.IsAvailable("NITIN", "12:00", "13:00", "")
		assert.True(t, free)
		assert.Empty(t, reason)
	})

	t.Run("Other Date Ignored", func(t *testing.T) {
		s2 := testSnapshot()
		s2.TimeBlocks = []TimeBlock{
			{Assistant: "Nitin", Date: "2026-08-31", Start: "10:00", End: "11:00", Reason: "stale"},
		}
		free, _ := s2.IsAvailable("NITIN", "10:30", "11:30", "")
		assert.True(t, free)
	})
}

func TestIsAvailableAppointmentOverlap(t *testing.T) {
	s := testSnapshot()
	s.Appointments = []Appointment{
		{ID: "r1", Patient: "John", Start: "09:30", End: "10:30", Status: "waiting", First: "Nitin"},
	}

	t.Run("Conflicting Appointment", func(t *testing.T) {
		free, reason := s.IsAvailable("NITIN", "09:00", "10:00", "")
		assert.False(t, free)
		assert.Equal(t, "With John (09:30-10:30)", reason)
	})

	t.Run("Editing Same Row Is Excluded", func(t *testing.T) {
		free, _ := s.IsAvailable("NITIN", "09:00", "10:00", "r1")
		assert.True(t, free)
	})

	t.Run("Cancelled Rows Do Not Conflict", func(t *testing.T) {
		s2 := testSnapshot()
		s2.Appointments = []Appointment{
			{ID: "r1", Patient: "John", Start: "09:30", End: "10:30", Status: "cancelled", First: "Nitin"},
		}
		free, _ := s2.IsAvailable("NITIN", "09:00", "10:00", "")
		assert.True(t, free)
	})

	t.Run("Other Assistant Unaffected", func(t *testing.T) {
		free, _ := s.IsAvailable("ARCHANA", "09:00", "10:00", "")
		assert.True(t, free)
	})
}

func TestIsAvailableParseFailureIsPermissive(t *testing.T) {
	s := testSnapshot()
	s.Appointments = []Appointment{
		{ID: "r1", Patient: "John", Start: "09:30", End: "10:30", Status: "waiting", First: "Nitin"},
	}

	free, reason := s.IsAvailable("NITIN", "soonish", "later", "")
	assert.True(t, free, "unparseable window falls back to available")
	assert.Empty(t, reason)
}
