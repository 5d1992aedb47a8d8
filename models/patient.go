package models

// Patient is one directory entry backing the grid's patient picker.
type Patient struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreatePatientRequest adds a directory entry.
type CreatePatientRequest struct {
	Name string `json:"name" binding:"required"`
}
