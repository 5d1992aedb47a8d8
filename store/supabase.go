package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/puttdental/backend-allotment/models"
)

// Table and row names from the original deployment.
const (
	stateTable = "tdb_allotment_state"
	stateRowID = "main"
)

// SupabaseStore persists everything to Supabase tables. The day grid lives
// as a single JSONB payload row; the rest are plain tables.
type SupabaseStore struct {
	client *supa.Client
	logger *zap.Logger
}

func NewSupabaseStore(client *supa.Client, logger *zap.Logger) *SupabaseStore {
	return &SupabaseStore{client: client, logger: logger}
}

func (s *SupabaseStore) Name() string { return "supabase" }

func (s *SupabaseStore) Ping() error {
	_, _, err := s.client.From(stateTable).
		Select("id", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return fmt.Errorf("supabase connectivity check: %w", err)
	}
	return nil
}

type stateRow struct {
	ID        string               `json:"id"`
	Payload   models.ScheduleState `json:"payload"`
	UpdatedAt string               `json:"updated_at,omitempty"`
}

func (s *SupabaseStore) LoadSchedule() (*models.ScheduleState, error) {
	data, _, err := s.client.From(stateTable).
		Select("*", "", false).
		Eq("id", stateRowID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("load schedule state: %w", err)
	}

	var rows []stateRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode schedule state: %w", err)
	}
	if len(rows) == 0 {
		s.logger.Info("no schedule state row yet, starting empty")
		return models.NewScheduleState(), nil
	}

	state := rows[0].Payload
	if len(state.Columns) == 0 {
		state.Columns = append([]string(nil), models.ScheduleColumns...)
	}
	return &state, nil
}

func (s *SupabaseStore) SaveSchedule(state *models.ScheduleState) error {
	state.Meta.SaveVersion++
	state.Meta.SavedAt = time.Now().Format(time.RFC3339)

	row := stateRow{ID: stateRowID, Payload: *state, UpdatedAt: state.Meta.SavedAt}
	_, _, err := s.client.From(stateTable).
		Insert(row, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("save schedule state: %w", err)
	}
	return nil
}

func (s *SupabaseStore) ListProfiles(kind string) ([]models.Profile, error) {
	query := s.client.From("profiles").
		Select("*", "", false).
		Order("name", nil)
	if kind != "" {
		query = query.Eq("kind", kind)
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	var profiles []models.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

func (s *SupabaseStore) UpsertProfile(profile models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	_, _, err := s.client.From("profiles").
		Insert(profile, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", profile.Name, err)
	}
	return nil
}

func (s *SupabaseStore) DeleteProfile(id string) error {
	_, _, err := s.client.From("profiles").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

func (s *SupabaseStore) ListAttendance(date string) ([]models.AttendanceRecord, error) {
	query := s.client.From("assistant_attendance").
		Select("*", "", false).
		Order("assistant", nil)
	if date != "" {
		query = query.Eq("date", date)
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	var records []models.AttendanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return records, nil
}

func (s *SupabaseStore) SaveAttendance(record models.AttendanceRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	_, _, err := s.client.From("assistant_attendance").
		Insert(record, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("save attendance for %s: %w", record.Assistant, err)
	}
	return nil
}

func (s *SupabaseStore) ListDuties() ([]models.Duty, error) {
	data, _, err := s.client.From("duties_master").
		Select("*", "", false).
		Order("title", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("list duties: %w", err)
	}
	var duties []models.Duty
	if err := json.Unmarshal(data, &duties); err != nil {
		return nil, fmt.Errorf("decode duties: %w", err)
	}
	return duties, nil
}

func (s *SupabaseStore) SaveDuty(duty models.Duty) error {
	if duty.ID == "" {
		duty.ID = uuid.NewString()
	}
	_, _, err := s.client.From("duties_master").
		Insert(duty, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("save duty %s: %w", duty.Title, err)
	}
	return nil
}

func (s *SupabaseStore) ListDutyAssignments() ([]models.DutyAssignment, error) {
	data, _, err := s.client.From("duty_assignments").
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("list duty assignments: %w", err)
	}
	var assignments []models.DutyAssignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, fmt.Errorf("decode duty assignments: %w", err)
	}
	return assignments, nil
}

func (s *SupabaseStore) SaveDutyAssignment(assignment models.DutyAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	_, _, err := s.client.From("duty_assignments").
		Insert(assignment, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("save duty assignment: %w", err)
	}
	return nil
}

func (s *SupabaseStore) ListDutyRuns(date string) ([]models.DutyRun, error) {
	query := s.client.From("duty_runs").
		Select("*", "", false).
		Order("started_at", &postgrest.OrderOpts{Ascending: false})
	if date != "" {
		query = query.Eq("date", date)
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("list duty runs: %w", err)
	}
	var runs []models.DutyRun
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("decode duty runs: %w", err)
	}
	return runs, nil
}

func (s *SupabaseStore) SaveDutyRun(run models.DutyRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, _, err := s.client.From("duty_runs").
		Insert(run, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("save duty run: %w", err)
	}
	return nil
}

func (s *SupabaseStore) ListPatients() ([]models.Patient, error) {
	data, _, err := s.client.From("patients").
		Select("*", "", false).
		Order("name", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	var patients []models.Patient
	if err := json.Unmarshal(data, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (s *SupabaseStore) SavePatient(patient models.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	_, _, err := s.client.From("patients").
		Insert(patient, true, "id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("save patient %s: %w", patient.Name, err)
	}
	return nil
}
