package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateGuards(t *testing.T) {
	s := testSnapshot()
	current := Assignment{First: "NITIN"}

	t.Run("Blank Doctor Returns Unchanged", func(t *testing.T) {
		got := s.Allocate(AllocateRequest{Doctor: "", Start: "09:00", End: "10:00", Current: current})
		assert.Equal(t, current, got)
	})

	t.Run("Unparseable Window Returns Unchanged", func(t *testing.T) {
		got := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "morning", End: "10:00", Current: current})
		assert.Equal(t, current, got)

		got = s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "09:00", End: "", Current: current})
		assert.Equal(t, current, got)
	})
}

// Department PROSTHO, 14:00 appointment: ANSHIKA on weekly off, RAJA punched
// out, NITIN and ARCHANA in. The 13:00 time override puts ARCHANA ahead of
// the default list.
func TestAllocateTimeOverrideScenario(t *testing.T) {
	s := testSnapshot()
	s.WeeklyOff[s.Weekday] = []string{"ANSHIKA"}

	got := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "14:00", End: "15:00"})

	assert.Equal(t, "ARCHANA", got.First)
	assert.Equal(t, "NITIN", got.Second)
}

// SECOND's when_first_is chain must see the FIRST pick made in the same call.
func TestAllocateRoleChainingScenario(t *testing.T) {
	s := testSnapshot()

	got := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "10:00", End: "11:00"})

	require.Equal(t, "ANSHIKA", got.First)
	assert.Equal(t, "ARCHANA", got.Second, "when_first_is ANSHIKA prefers ARCHANA over the default list")
}

func TestAllocateUnknownDoctorNoFallback(t *testing.T) {
	s := testSnapshot()
	s.Config.Global.CrossDepartmentFallback = false

	got := s.Allocate(AllocateRequest{Doctor: "DR.UNKNOWN", Start: "10:00", End: "11:00"})

	assert.Equal(t, Assignment{}, got, "no department and no fallback leaves every slot blank")
}

func TestAllocateUnknownDoctorWithFallback(t *testing.T) {
	s := testSnapshot()

	got := s.Allocate(AllocateRequest{Doctor: "DR.UNKNOWN", Start: "10:00", End: "11:00"})

	assert.NotEmpty(t, got.First, "cross-department fallback can still staff an unknown doctor")
}

func TestAllocateDoctorOverridePrecedence(t *testing.T) {
	s := testSnapshot()
	s.Punches["RAJA"] = PunchRecord{In: "08:00"}

	got := s.Allocate(AllocateRequest{Doctor: "DR. MEHTA", Start: "10:00", End: "11:00"})

	assert.Equal(t, "RAJA", got.First, "doctor override beats the default list's first name")
	assert.NotEqual(t, "ANSHIKA", got.First)
}

func TestAllocateNeverSelectsWeeklyOff(t *testing.T) {
	s := testSnapshot()
	s.WeeklyOff[s.Weekday] = []string{"ANSHIKA"}

	got := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "10:00", End: "11:00"})

	for _, role := range Roles {
		assert.NotEqual(t, "ANSHIKA", got.Get(role))
	}
}

func TestAllocateNoDoubleBooking(t *testing.T) {
	s := testSnapshot()

	got := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "10:00", End: "11:00"})

	seen := map[string]bool{}
	for _, role := range Roles {
		name := got.Get(role)
		if name == "" {
			continue
		}
		key := NormalizeIdentity(name)
		assert.False(t, seen[key], "assistant %s assigned twice", name)
		seen[key] = true
	}
}

func TestAllocateSelectionsPassAvailability(t *testing.T) {
	s := testSnapshot()
	s.Appointments = []Appointment{
		{ID: "r1", Patient: "John", Doctor: "DR. PUTT", Start: "09:30", End: "10:30", Status: "waiting", First: "NITIN"},
	}

	got := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "10:00", End: "11:00", ExcludeID: "r2"})

	for _, role := range Roles {
		name := got.Get(role)
		if name == "" {
			continue
		}
		free, reason := s.IsAvailable(name, "10:00", "11:00", "r2")
		assert.True(t, free, "%s selected while unavailable: %s", name, reason)
	}
	for _, role := range Roles {
		assert.NotEqual(t, "NITIN", got.Get(role), "NITIN is mid-appointment with John")
	}
}

func TestAllocateOnlyFillEmpty(t *testing.T) {
	s := testSnapshot()

	t.Run("Existing Slots Kept And Not Reused", func(t *testing.T) {
		got := s.Allocate(AllocateRequest{
			Doctor:        "DR. PUTT",
			Start:         "10:00",
			End:           "11:00",
			Current:       Assignment{First: "NITIN"},
			OnlyFillEmpty: true,
		})

		assert.Equal(t, "NITIN", got.First)
		assert.NotEqual(t, "NITIN", got.Second)
		assert.NotEqual(t, "NITIN", got.Third)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "10:00", End: "11:00", OnlyFillEmpty: true})
		second := s.Allocate(AllocateRequest{Doctor: "DR. PUTT", Start: "10:00", End: "11:00", Current: first, OnlyFillEmpty: true})
		assert.Equal(t, first, second)
	})
}

func TestAllocateCrossDepartmentFallback(t *testing.T) {
	s := testSnapshot()

	// Nobody in ENDO is punched in; PROSTHO staff cover.
	got := s.Allocate(AllocateRequest{Doctor: "DR. SHARMA", Start: "10:00", End: "11:00"})

	assert.Equal(t, "ANSHIKA", got.First)
}

func TestStatusBoard(t *testing.T) {
	s := testSnapshot()
	s.WeeklyOff[s.Weekday] = []string{"ANSHIKA"}
	s.TimeBlocks = []TimeBlock{
		{Assistant: "ARCHANA", Date: s.Date, Start: "10:00", End: "11:00", Reason: "sterilization"},
	}
	s.Appointments = []Appointment{
		{ID: "r1", Patient: "John", Start: "10:00", End: "10:45", Status: "ongoing", First: "NITIN"},
	}

	board := s.StatusBoard("10:30")
	byName := map[string]StatusEntry{}
	for _, entry := range board {
		byName[entry.Name] = entry
	}

	assert.Equal(t, StatusOff, byName["ANSHIKA"].Status)
	assert.Equal(t, StatusOff, byName["RAJA"].Status)
	assert.Equal(t, StatusBlocked, byName["ARCHANA"].Status)
	assert.Equal(t, StatusBusy, byName["NITIN"].Status)
	assert.Equal(t, StatusOff, byName["PRIYA"].Status) // not punched in
	assert.Equal(t, "With John (10:00-10:45)", byName["NITIN"].Detail)
}
