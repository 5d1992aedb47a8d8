package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/models"
)

// ReminderService turns the day grid into upcoming/overdue notices and can
// push them out over SMS when a provider is configured.
type ReminderService struct {
	SMS         SMSClient
	Phone       string
	LeadMinutes int
	Logger      *zap.Logger
}

func NewReminderService(sms SMSClient, phone string, leadMinutes int, logger *zap.Logger) *ReminderService {
	return &ReminderService{SMS: sms, Phone: phone, LeadMinutes: leadMinutes, Logger: logger}
}

// ComputeReminders scans the rows against the wall clock. A row is upcoming
// when it starts within the lead window, and overdue when its start has
// passed without the patient having arrived. Inactive rows and rows already
// underway are skipped.
func (r *ReminderService) ComputeReminders(rows []models.ScheduleRow, now allocation.Clock) []models.Reminder {
	var reminders []models.Reminder
	for _, row := range rows {
		if row.ActualStart != "" {
			continue
		}
		appt := allocation.Appointment{Status: row.Status}
		if !appt.Active() {
			continue
		}
		start, ok := allocation.ParseClock(row.InTime)
		if !ok {
			continue
		}

		delta := int(start - now)
		switch {
		case delta < 0 && arrivedStatus(row.Status):
			// Patient is in the clinic (or already flagged late), nothing
			// to chase.
		case delta >= 0 && delta <= r.LeadMinutes:
			reminders = append(reminders, models.Reminder{
				RowID:   row.ID,
				Patient: row.PatientName,
				Doctor:  row.Doctor,
				InTime:  row.InTime,
				Kind:    models.ReminderUpcoming,
				Minutes: delta,
				Message: fmt.Sprintf("%s with %s in %d min (at %s)", row.PatientName, row.Doctor, delta, row.InTime),
			})
		case delta < 0:
			reminders = append(reminders, models.Reminder{
				RowID:   row.ID,
				Patient: row.PatientName,
				Doctor:  row.Doctor,
				InTime:  row.InTime,
				Kind:    models.ReminderOverdue,
				Minutes: -delta,
				Message: fmt.Sprintf("%s with %s overdue by %d min (was %s)", row.PatientName, row.Doctor, -delta, row.InTime),
			})
		}
	}
	return reminders
}

// arrivedStatus reports whether the patient is already accounted for:
// arrived and ongoing mean they are in the clinic, late means the front desk
// has flagged them by hand.
func arrivedStatus(status string) bool {
	switch allocation.NormalizeIdentity(status) {
	case "ARRIVED", "ONGOING", "LATE":
		return true
	}
	return false
}

// Dispatch sends each reminder to the configured phone. Failures are logged
// and skipped so one bad send does not block the rest.
func (r *ReminderService) Dispatch(reminders []models.Reminder) []models.Reminder {
	if r.SMS == nil || r.Phone == "" {
		return reminders
	}
	for i := range reminders {
		if err := r.SMS.SendMessage(r.Phone, reminders[i].Message); err != nil {
			r.Logger.Warn("reminder send failed",
				zap.String("row_id", reminders[i].RowID),
				zap.Error(err))
			continue
		}
		reminders[i].Notified = true
	}
	return reminders
}
