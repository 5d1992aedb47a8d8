package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/models"
)

func mustClock(t *testing.T, s string) allocation.Clock {
	t.Helper()
	c, ok := allocation.ParseClock(s)
	require.True(t, ok)
	return c
}

func TestComputeReminders(t *testing.T) {
	svc := NewReminderService(nil, "", 15, zap.NewNop())
	rows := []models.ScheduleRow{
		{ID: "r1", PatientName: "John", Doctor: "Dr. Putt", InTime: "10:10", Status: "waiting"},
		{ID: "r2", PatientName: "Maya", Doctor: "Dr. Putt", InTime: "09:40", Status: "pending"},
		{ID: "r3", PatientName: "Asha", Doctor: "Dr. Mehta", InTime: "11:30", Status: "waiting"},
		{ID: "r4", PatientName: "Ravi", Doctor: "Dr. Putt", InTime: "09:30", Status: "cancelled"},
		{ID: "r5", PatientName: "Nila", Doctor: "Dr. Putt", InTime: "09:00", Status: "ongoing", ActualStart: "09:05"},
		{ID: "r6", PatientName: "Kiran", Doctor: "Dr. Putt", InTime: "bad", Status: "waiting"},
		{ID: "r7", PatientName: "Tara", Doctor: "Dr. Putt", InTime: "09:30", Status: "arrived"},
		{ID: "r8", PatientName: "Vikram", Doctor: "Dr. Putt", InTime: "09:45", Status: "late"},
	}

	reminders := svc.ComputeReminders(rows, mustClock(t, "10:00"))
	require.Len(t, reminders, 2)

	t.Run("upcoming within lead window", func(t *testing.T) {
		assert.Equal(t, "r1", reminders[0].RowID)
		assert.Equal(t, models.ReminderUpcoming, reminders[0].Kind)
		assert.Equal(t, 10, reminders[0].Minutes)
		assert.Contains(t, reminders[0].Message, "John")
	})

	t.Run("overdue when not started", func(t *testing.T) {
		assert.Equal(t, "r2", reminders[1].RowID)
		assert.Equal(t, models.ReminderOverdue, reminders[1].Kind)
		assert.Equal(t, 20, reminders[1].Minutes)
	})

	t.Run("outside window cancelled started and unparseable are skipped", func(t *testing.T) {
		for _, r := range reminders {
			assert.NotContains(t, []string{"r3", "r4", "r5", "r6"}, r.RowID)
		}
	})

	t.Run("arrived or late past start is not overdue", func(t *testing.T) {
		for _, r := range reminders {
			assert.NotContains(t, []string{"r7", "r8"}, r.RowID)
		}
	})
}

func TestComputeRemindersArrivedBeforeStart(t *testing.T) {
	svc := NewReminderService(nil, "", 15, zap.NewNop())
	rows := []models.ScheduleRow{
		{ID: "r1", PatientName: "Tara", Doctor: "Dr. Putt", InTime: "10:10", Status: "arrived"},
	}

	// An early arrival still gets the upcoming notice for the team.
	reminders := svc.ComputeReminders(rows, mustClock(t, "10:00"))
	require.Len(t, reminders, 1)
	assert.Equal(t, models.ReminderUpcoming, reminders[0].Kind)
}

type fakeSMS struct {
	sent []string
	fail bool
}

func (f *fakeSMS) SendMessage(phone, message string) error {
	if f.fail {
		return errors.New("provider down")
	}
	f.sent = append(f.sent, message)
	return nil
}

func TestDispatch(t *testing.T) {
	reminders := []models.Reminder{
		{RowID: "r1", Message: "m1"},
		{RowID: "r2", Message: "m2"},
	}

	t.Run("marks notified on success", func(t *testing.T) {
		sms := &fakeSMS{}
		svc := NewReminderService(sms, "+911234567890", 15, zap.NewNop())
		out := svc.Dispatch(append([]models.Reminder(nil), reminders...))
		assert.Len(t, sms.sent, 2)
		assert.True(t, out[0].Notified)
		assert.True(t, out[1].Notified)
	})

	t.Run("send failure leaves reminder unnotified", func(t *testing.T) {
		svc := NewReminderService(&fakeSMS{fail: true}, "+911234567890", 15, zap.NewNop())
		out := svc.Dispatch(append([]models.Reminder(nil), reminders...))
		assert.False(t, out[0].Notified)
	})

	t.Run("no provider is a no op", func(t *testing.T) {
		svc := NewReminderService(nil, "", 15, zap.NewNop())
		out := svc.Dispatch(append([]models.Reminder(nil), reminders...))
		assert.False(t, out[0].Notified)
	})
}
