package models

// AttendanceRecord is one assistant's punch pair for a calendar date.
type AttendanceRecord struct {
	ID        string `json:"id,omitempty" db:"id"`
	Date      string `json:"date" db:"date"`
	Assistant string `json:"assistant" db:"assistant"`
	PunchIn   string `json:"punch_in,omitempty" db:"punch_in"`
	PunchOut  string `json:"punch_out,omitempty" db:"punch_out"`
}

// PunchRequest punches an assistant in or out. Time defaults to "now" when
// omitted.
type PunchRequest struct {
	Assistant string `json:"assistant" binding:"required"`
	Time      string `json:"time"`
}
