package store

import "github.com/puttdental/backend-allotment/models"

// Store is the persistence boundary the handlers talk to. Two backends
// implement it: Supabase (managed Postgres) and a local Excel workbook.
// Which one runs is decided once at startup.
type Store interface {
	// Name identifies the active backend in logs and the health endpoint.
	Name() string
	// Ping verifies the backend is reachable and initialized.
	Ping() error

	LoadSchedule() (*models.ScheduleState, error)
	SaveSchedule(state *models.ScheduleState) error

	ListProfiles(kind string) ([]models.Profile, error)
	UpsertProfile(profile models.Profile) error
	DeleteProfile(id string) error

	ListAttendance(date string) ([]models.AttendanceRecord, error)
	SaveAttendance(record models.AttendanceRecord) error

	ListDuties() ([]models.Duty, error)
	SaveDuty(duty models.Duty) error

	ListDutyAssignments() ([]models.DutyAssignment, error)
	SaveDutyAssignment(assignment models.DutyAssignment) error

	ListDutyRuns(date string) ([]models.DutyRun, error)
	SaveDutyRun(run models.DutyRun) error

	ListPatients() ([]models.Patient, error)
	SavePatient(patient models.Patient) error
}
