package services

import (
	"time"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/store"
)

// BuildSnapshot assembles everything the allocation engine needs for one day:
// the saved grid, assistant punches, profile preferences and weekly offs, and
// the active rule config. The returned state is the same object the caller
// should mutate and save back.
func BuildSnapshot(st store.Store, date string) (*allocation.Snapshot, *models.ScheduleState, error) {
	state, err := st.LoadSchedule()
	if err != nil {
		return nil, nil, err
	}

	cfg := allocation.DefaultConfig()
	if state.Meta.Allocation != nil {
		cfg = *state.Meta.Allocation
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	weekday := int(time.Now().Weekday())
	if d, err := time.Parse("2006-01-02", date); err == nil {
		weekday = int(d.Weekday())
	}

	snap := &allocation.Snapshot{
		Config:      cfg,
		Punches:     map[string]allocation.PunchRecord{},
		Preferences: map[string]allocation.Preference{},
		WeeklyOff:   map[int][]string{},
		Date:        date,
		Weekday:     weekday,
	}

	for _, row := range state.Rows {
		snap.Appointments = append(snap.Appointments, allocation.Appointment{
			ID:      row.ID,
			Patient: row.PatientName,
			Doctor:  row.Doctor,
			Start:   row.InTime,
			End:     row.OutTime,
			Status:  row.Status,
			First:   row.First,
			Second:  row.Second,
			Third:   row.Third,
		})
	}

	records, err := st.ListAttendance(date)
	if err != nil {
		return nil, nil, err
	}
	for _, rec := range records {
		snap.Punches[allocation.NormalizeIdentity(rec.Assistant)] = allocation.PunchRecord{
			In:  rec.PunchIn,
			Out: rec.PunchOut,
		}
	}

	profiles, err := st.ListProfiles(models.KindAssistants)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range profiles {
		if !p.ActiveProfile() {
			continue
		}
		key := allocation.NormalizeIdentity(p.Name)
		pref := allocation.Preference{}
		if p.PrefFirst != "" {
			pref[allocation.RoleFirst] = p.PrefFirst
		}
		if p.PrefSecond != "" {
			pref[allocation.RoleSecond] = p.PrefSecond
		}
		if p.PrefThird != "" {
			pref[allocation.RoleThird] = p.PrefThird
		}
		if len(pref) > 0 {
			snap.Preferences[key] = pref
		}
		for _, day := range p.WeeklyOffDays() {
			snap.WeeklyOff[day] = append(snap.WeeklyOff[day], p.Name)
		}
	}

	for _, tb := range state.Meta.TimeBlocks {
		snap.TimeBlocks = append(snap.TimeBlocks, allocation.TimeBlock{
			Assistant: tb.Assistant,
			Date:      tb.Date,
			Start:     tb.Start,
			End:       tb.End,
			Reason:    tb.Reason,
		})
	}

	return snap, state, nil
}
