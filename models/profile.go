package models

import (
	"strconv"
	"strings"
)

// Profile kinds, matching the original workbook sheet names.
const (
	KindAssistants = "Assistants"
	KindDoctors    = "Doctors"
)

// Profile is one staff record from the profiles table (Assistants and
// Doctors sheets in the workbook share this shape).
type Profile struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Kind         string  `json:"kind" db:"kind"`
	Department   string  `json:"department" db:"department"`
	ContactEmail *string `json:"contact_email,omitempty" db:"contact_email"`
	ContactPhone *string `json:"contact_phone,omitempty" db:"contact_phone"`
	Status       string  `json:"status" db:"status"`
	// WeeklyOff is a comma-separated list of weekday indices (0=Sunday).
	WeeklyOff  string `json:"weekly_off" db:"weekly_off"`
	PrefFirst  string `json:"pref_first" db:"pref_first"`
	PrefSecond string `json:"pref_second" db:"pref_second"`
	PrefThird  string `json:"pref_third" db:"pref_third"`
	CreatedAt  string `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt  string `json:"updated_at,omitempty" db:"updated_at"`
	CreatedBy  string `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy  string `json:"updated_by,omitempty" db:"updated_by"`
}

// ActiveProfile reports whether the record is usable for assignment.
func (p Profile) ActiveProfile() bool {
	return p.Status == "" || strings.EqualFold(p.Status, "active")
}

// WeeklyOffDays parses the weekly_off field into weekday indices; malformed
// entries are skipped.
func (p Profile) WeeklyOffDays() []int {
	var days []int
	for _, part := range strings.Split(p.WeeklyOff, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if d, err := strconv.Atoi(part); err == nil && d >= 0 && d <= 6 {
			days = append(days, d)
		}
	}
	return days
}

// UpsertProfileRequest creates or updates a staff record.
type UpsertProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Kind         string  `json:"kind" binding:"required,oneof=Assistants Doctors"`
	Department   string  `json:"department"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Status       string  `json:"status"`
	WeeklyOff    string  `json:"weekly_off"`
	PrefFirst    string  `json:"pref_first"`
	PrefSecond   string  `json:"pref_second"`
	PrefThird    string  `json:"pref_third"`
}
