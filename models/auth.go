package models

// LoginRequest authenticates a front-desk user against the configured
// credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
}

// LoginResponse carries the issued JWT.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Reminder is a computed notice about an upcoming or overdue appointment.
type Reminder struct {
	RowID    string `json:"row_id"`
	Patient  string `json:"patient"`
	Doctor   string `json:"doctor"`
	InTime   string `json:"in_time"`
	Kind     string `json:"kind"`
	Minutes  int    `json:"minutes"`
	Message  string `json:"message"`
	Notified bool   `json:"notified,omitempty"`
}

// Reminder kinds.
const (
	ReminderUpcoming = "upcoming"
	ReminderOverdue  = "overdue"
)
