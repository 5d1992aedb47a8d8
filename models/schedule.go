package models

import "github.com/puttdental/backend-allotment/allocation"

// ScheduleRow is one line of the day grid, mirroring the workbook's Sheet1
// columns. Times are clock-of-day strings as typed by the front desk.
type ScheduleRow struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	InTime      string `json:"in_time"`
	OutTime     string `json:"out_time"`
	Procedure   string `json:"procedure"`
	Doctor      string `json:"doctor"`
	First       string `json:"first"`
	Second      string `json:"second"`
	Third       string `json:"third"`
	CasePaper   string `json:"case_paper"`
	OP          string `json:"op"`
	Suction     string `json:"suction"`
	Cleaning    string `json:"cleaning"`
	Status      string `json:"status"`
	Reminder    string `json:"reminder"`
	// Stamped on the first transition into ongoing / done.
	ActualStart string `json:"actual_start,omitempty"`
	ActualEnd   string `json:"actual_end,omitempty"`
}

// ScheduleColumns is the fixed grid header, kept byte-for-byte compatible
// with the original workbook.
var ScheduleColumns = []string{
	"Patient ID", "Patient Name", "In Time", "Out Time", "Procedure",
	"DR.", "FIRST", "SECOND", "Third", "CASE PAPER", "OP", "SUCTION",
	"CLEANING", "STATUS", "REMINDER",
}

// Statuses is the appointment lifecycle vocabulary.
var Statuses = []string{
	"pending", "waiting", "arriving", "arrived", "ongoing",
	"done", "completed", "cancelled", "shifted", "late",
}

// ValidStatus reports whether s belongs to the lifecycle vocabulary.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ScheduleMeta travels with the grid payload: save bookkeeping, the ad-hoc
// time blocks and the allocation configuration.
type ScheduleMeta struct {
	SaveVersion         int                `json:"save_version"`
	SavedAt             string             `json:"saved_at,omitempty"`
	TimeBlocksUpdatedAt string             `json:"time_blocks_updated_at,omitempty"`
	TimeBlocks          []TimeBlock        `json:"time_blocks,omitempty"`
	Allocation          *allocation.Config `json:"allocation,omitempty"`
}

// ScheduleState is the whole persisted dashboard state: one day's grid plus
// meta, stored as a single payload (JSONB row in Supabase, Sheet1 + Meta in
// the workbook).
type ScheduleState struct {
	Columns []string      `json:"columns"`
	Rows    []ScheduleRow `json:"rows"`
	Meta    ScheduleMeta  `json:"meta"`
}

// NewScheduleState returns an empty grid with the standard columns.
func NewScheduleState() *ScheduleState {
	return &ScheduleState{Columns: append([]string(nil), ScheduleColumns...)}
}

// Row finds a row by id.
func (s *ScheduleState) Row(id string) (*ScheduleRow, bool) {
	for i := range s.Rows {
		if s.Rows[i].ID == id {
			return &s.Rows[i], true
		}
	}
	return nil, false
}

// CreateRowRequest adds a grid row.
type CreateRowRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name" binding:"required"`
	InTime      string `json:"in_time"`
	OutTime     string `json:"out_time"`
	Procedure   string `json:"procedure"`
	Doctor      string `json:"doctor"`
	OP          string `json:"op"`
	Status      string `json:"status"`
}

// UpdateRowRequest edits a grid row; nil fields are untouched.
type UpdateRowRequest struct {
	PatientID   *string `json:"patient_id,omitempty"`
	PatientName *string `json:"patient_name,omitempty"`
	InTime      *string `json:"in_time,omitempty"`
	OutTime     *string `json:"out_time,omitempty"`
	Procedure   *string `json:"procedure,omitempty"`
	Doctor      *string `json:"doctor,omitempty"`
	First       *string `json:"first,omitempty"`
	Second      *string `json:"second,omitempty"`
	Third       *string `json:"third,omitempty"`
	CasePaper   *string `json:"case_paper,omitempty"`
	OP          *string `json:"op,omitempty"`
	Suction     *string `json:"suction,omitempty"`
	Cleaning    *string `json:"cleaning,omitempty"`
	Status      *string `json:"status,omitempty"`
	Reminder    *string `json:"reminder,omitempty"`
}

// SaveScheduleRequest replaces the whole grid (dashboard "save" button).
type SaveScheduleRequest struct {
	Rows []ScheduleRow `json:"rows" binding:"required"`
}
