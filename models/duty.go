package models

// Duty is one recurring chore from the master list (OP cleaning, suction
// line flush, ...).
type Duty struct {
	ID             string `json:"id" db:"id"`
	Title          string `json:"title" db:"title"`
	Frequency      string `json:"frequency" db:"frequency"`
	DefaultMinutes int    `json:"default_minutes" db:"default_minutes"`
	OP             string `json:"op,omitempty" db:"op"`
	Active         bool   `json:"active" db:"active"`
	CreatedAt      string `json:"created_at,omitempty" db:"created_at"`
}

// DutyAssignment pins a duty to an assistant, optionally per operatory.
type DutyAssignment struct {
	ID         string `json:"id" db:"id"`
	DutyID     string `json:"duty_id" db:"duty_id"`
	Assistant  string `json:"assistant" db:"assistant"`
	OP         string `json:"op,omitempty" db:"op"`
	EstMinutes int    `json:"est_minutes" db:"est_minutes"`
	Active     bool   `json:"active" db:"active"`
}

// DutyRun is one timed execution of a duty: started, due after the
// estimated minutes, then completed (or left overdue).
type DutyRun struct {
	ID         string `json:"id" db:"id"`
	Date       string `json:"date" db:"date"`
	Assistant  string `json:"assistant" db:"assistant"`
	DutyID     string `json:"duty_id" db:"duty_id"`
	Status     string `json:"status" db:"status"`
	StartedAt  string `json:"started_at,omitempty" db:"started_at"`
	DueAt      string `json:"due_at,omitempty" db:"due_at"`
	EndedAt    string `json:"ended_at,omitempty" db:"ended_at"`
	EstMinutes int    `json:"est_minutes" db:"est_minutes"`
	OP         string `json:"op,omitempty" db:"op"`
}

// Duty run lifecycle.
const (
	DutyRunRunning = "running"
	DutyRunDone    = "done"
)

// CreateDutyRequest adds a duty to the master list.
type CreateDutyRequest struct {
	Title          string `json:"title" binding:"required"`
	Frequency      string `json:"frequency"`
	DefaultMinutes int    `json:"default_minutes"`
	OP             string `json:"op"`
}

// UpdateDutyRequest edits a master duty; nil fields are untouched.
type UpdateDutyRequest struct {
	Title          *string `json:"title,omitempty"`
	Frequency      *string `json:"frequency,omitempty"`
	DefaultMinutes *int    `json:"default_minutes,omitempty"`
	OP             *string `json:"op,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}

// CreateDutyAssignmentRequest pins a duty to an assistant.
type CreateDutyAssignmentRequest struct {
	DutyID     string `json:"duty_id" binding:"required"`
	Assistant  string `json:"assistant" binding:"required"`
	OP         string `json:"op"`
	EstMinutes int    `json:"est_minutes"`
}

// StartDutyRunRequest starts the timer on an assigned duty.
type StartDutyRunRequest struct {
	DutyID    string `json:"duty_id" binding:"required"`
	Assistant string `json:"assistant" binding:"required"`
	OP        string `json:"op"`
}
