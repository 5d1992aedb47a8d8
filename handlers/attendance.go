package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/store"
)

type AttendanceHandler struct {
	store  store.Store
	config *config.Config
}

func NewAttendanceHandler(st store.Store, cfg *config.Config) *AttendanceHandler {
	return &AttendanceHandler{store: st, config: cfg}
}

func (h *AttendanceHandler) today(c *gin.Context) string {
	if d := c.Query("date"); d != "" {
		return d
	}
	return time.Now().Format("2006-01-02")
}

// GetAttendance lists punch records for a date (default today).
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	records, err := h.store.ListAttendance(h.today(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch attendance",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    records,
	})
}

// PunchIn records an assistant's arrival. Time defaults to now.
func (h *AttendanceHandler) PunchIn(c *gin.Context) {
	var req models.PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "assistant is required",
		})
		return
	}

	at := req.Time
	if at == "" {
		at = time.Now().Format("15:04")
	}
	if _, ok := allocation.ParseClock(at); !ok {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Unparseable time %q", at),
		})
		return
	}

	date := h.today(c)
	record := h.findRecord(date, req.Assistant)
	record.PunchIn = at

	if err := h.store.SaveAttendance(record); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save attendance",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("%s punched in at %s", req.Assistant, at),
		Data:    record,
	})
}

// PunchOut records an assistant's departure and clears them out of every
// still-active row so the grid never shows a gone assistant.
func (h *AttendanceHandler) PunchOut(c *gin.Context) {
	var req models.PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "assistant is required",
		})
		return
	}

	at := req.Time
	if at == "" {
		at = time.Now().Format("15:04")
	}
	if _, ok := allocation.ParseClock(at); !ok {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Unparseable time %q", at),
		})
		return
	}

	date := h.today(c)
	record := h.findRecord(date, req.Assistant)
	record.PunchOut = at

	if err := h.store.SaveAttendance(record); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save attendance",
		})
		return
	}

	cleared, err := h.clearAssignments(req.Assistant)
	if err != nil {
		fmt.Printf("[AttendanceHandler] Clearing assignments failed: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Punched out but failed to clear assignments",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("%s punched out at %s, cleared from %d rows", req.Assistant, at, cleared),
		Data:    record,
	})
}

// findRecord returns today's record for the assistant, or a fresh one.
func (h *AttendanceHandler) findRecord(date, assistant string) models.AttendanceRecord {
	records, err := h.store.ListAttendance(date)
	if err == nil {
		key := allocation.NormalizeIdentity(assistant)
		for _, rec := range records {
			if allocation.NormalizeIdentity(rec.Assistant) == key {
				return rec
			}
		}
	}
	return models.AttendanceRecord{Date: date, Assistant: assistant}
}

// clearAssignments removes the assistant from the assistant columns of every
// row that has not finished yet.
func (h *AttendanceHandler) clearAssignments(assistant string) (int, error) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		return 0, err
	}

	key := allocation.NormalizeIdentity(assistant)
	cleared := 0
	for i := range state.Rows {
		row := &state.Rows[i]
		appt := allocation.Appointment{Status: row.Status}
		if !appt.Active() {
			continue
		}
		touched := false
		for _, col := range []*string{&row.First, &row.Second, &row.Third} {
			if allocation.NormalizeIdentity(*col) == key && key != "" {
				*col = ""
				touched = true
			}
		}
		if touched {
			cleared++
		}
	}

	if cleared == 0 {
		return 0, nil
	}
	return cleared, h.store.SaveSchedule(state)
}
