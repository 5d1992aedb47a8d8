package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/services"
	"github.com/puttdental/backend-allotment/store"
)

type ReminderHandler struct {
	store     store.Store
	reminders *services.ReminderService
}

func NewReminderHandler(st store.Store, reminders *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{store: st, reminders: reminders}
}

// GetReminders computes upcoming and overdue notices against the wall clock
// (or ?now=HH:MM). ?notify=true also pushes them over SMS.
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	nowStr := c.Query("now")
	if nowStr == "" {
		nowStr = time.Now().Format("15:04")
	}
	now, ok := allocation.ParseClock(nowStr)
	if !ok {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "now must be a clock time",
		})
		return
	}

	reminders := h.reminders.ComputeReminders(state.Rows, now)
	if c.Query("notify") == "true" {
		reminders = h.reminders.Dispatch(reminders)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    reminders,
	})
}
