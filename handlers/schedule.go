package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/services"
	"github.com/puttdental/backend-allotment/store"
)

type ScheduleHandler struct {
	store  store.Store
	config *config.Config
}

func NewScheduleHandler(st store.Store, cfg *config.Config) *ScheduleHandler {
	return &ScheduleHandler{store: st, config: cfg}
}

// GetSchedule returns the whole day grid with its meta.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		fmt.Printf("[ScheduleHandler] Load failed: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    state,
	})
}

// SaveSchedule replaces the grid rows wholesale (the dashboard save button).
func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	var req models.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "rows are required",
		})
		return
	}

	state, err := h.store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	for i := range req.Rows {
		if req.Rows[i].ID == "" {
			req.Rows[i].ID = uuid.NewString()
		}
	}
	state.Rows = req.Rows

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save schedule",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Schedule saved",
		Data:    state.Meta,
	})
}

// CreateRow appends a grid row and auto-fills its assistant columns when the
// doctor and window are already known.
func (h *ScheduleHandler) CreateRow(c *gin.Context) {
	var req models.CreateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "patient_name is required",
		})
		return
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Unknown status %q", req.Status),
		})
		return
	}

	snap, state, err := services.BuildSnapshot(h.store, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	row := models.ScheduleRow{
		ID:          uuid.NewString(),
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		InTime:      req.InTime,
		OutTime:     req.OutTime,
		Procedure:   req.Procedure,
		Doctor:      req.Doctor,
		OP:          req.OP,
		Status:      req.Status,
	}

	assignment := snap.Allocate(allocation.AllocateRequest{
		Doctor:    row.Doctor,
		Start:     row.InTime,
		End:       row.OutTime,
		ExcludeID: row.ID,
	})
	row.First = assignment.First
	row.Second = assignment.Second
	row.Third = assignment.Third

	state.Rows = append(state.Rows, row)
	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save schedule",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Data:    row,
	})
}

// UpdateRow edits a row in place. A first transition into ongoing stamps the
// actual start, a first transition into done/completed stamps the actual end,
// and a changed doctor or window re-fills any empty assistant columns.
func (h *ScheduleHandler) UpdateRow(c *gin.Context) {
	var req models.UpdateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Unknown status %q", *req.Status),
		})
		return
	}

	snap, state, err := services.BuildSnapshot(h.store, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	row, ok := state.Row(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Row not found",
		})
		return
	}

	reallocate := false
	setString := func(dst *string, src *string, triggers bool) {
		if src != nil && *src != *dst {
			*dst = *src
			if triggers {
				reallocate = true
			}
		}
	}

	setString(&row.PatientID, req.PatientID, false)
	setString(&row.PatientName, req.PatientName, false)
	setString(&row.InTime, req.InTime, true)
	setString(&row.OutTime, req.OutTime, true)
	setString(&row.Procedure, req.Procedure, false)
	setString(&row.Doctor, req.Doctor, true)
	setString(&row.First, req.First, false)
	setString(&row.Second, req.Second, false)
	setString(&row.Third, req.Third, false)
	setString(&row.CasePaper, req.CasePaper, false)
	setString(&row.OP, req.OP, false)
	setString(&row.Suction, req.Suction, false)
	setString(&row.Cleaning, req.Cleaning, false)
	setString(&row.Reminder, req.Reminder, false)

	if req.Status != nil && *req.Status != row.Status {
		row.Status = *req.Status
		now := time.Now().Format("15:04")
		switch *req.Status {
		case "ongoing":
			if row.ActualStart == "" {
				row.ActualStart = now
			}
		case "done", "completed":
			if row.ActualEnd == "" {
				row.ActualEnd = now
			}
		}
	}

	if reallocate {
		assignment := snap.Allocate(allocation.AllocateRequest{
			Doctor:        row.Doctor,
			Start:         row.InTime,
			End:           row.OutTime,
			ExcludeID:     row.ID,
			Current:       allocation.Assignment{First: row.First, Second: row.Second, Third: row.Third},
			OnlyFillEmpty: true,
		})
		row.First = assignment.First
		row.Second = assignment.Second
		row.Third = assignment.Third
	}

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save schedule",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    row,
	})
}

// DeleteRow removes a row from the grid.
func (h *ScheduleHandler) DeleteRow(c *gin.Context) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	id := c.Param("id")
	kept := state.Rows[:0]
	found := false
	for _, row := range state.Rows {
		if row.ID == id {
			found = true
			continue
		}
		kept = append(kept, row)
	}
	if !found {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Row not found",
		})
		return
	}
	state.Rows = kept

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save schedule",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Row deleted",
	})
}

// AllocateRow runs the allocation engine for one row. only_fill_empty=true
// (the default) keeps whatever the front desk already typed in.
func (h *ScheduleHandler) AllocateRow(c *gin.Context) {
	onlyFillEmpty := c.DefaultQuery("only_fill_empty", "true") == "true"

	snap, state, err := services.BuildSnapshot(h.store, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	row, ok := state.Row(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Row not found",
		})
		return
	}

	assignment := snap.Allocate(allocation.AllocateRequest{
		Doctor:        row.Doctor,
		Start:         row.InTime,
		End:           row.OutTime,
		ExcludeID:     row.ID,
		Current:       allocation.Assignment{First: row.First, Second: row.Second, Third: row.Third},
		OnlyFillEmpty: onlyFillEmpty,
	})
	row.First = assignment.First
	row.Second = assignment.Second
	row.Third = assignment.Third

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save schedule",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    row,
	})
}

// AllocateAll sweeps the grid top to bottom, filling empty assistant columns
// row by row so later rows see earlier picks.
func (h *ScheduleHandler) AllocateAll(c *gin.Context) {
	snap, state, err := services.BuildSnapshot(h.store, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	allocated := 0
	for i := range state.Rows {
		row := &state.Rows[i]
		assignment := snap.Allocate(allocation.AllocateRequest{
			Doctor:        row.Doctor,
			Start:         row.InTime,
			End:           row.OutTime,
			ExcludeID:     row.ID,
			Current:       allocation.Assignment{First: row.First, Second: row.Second, Third: row.Third},
			OnlyFillEmpty: true,
		})
		if assignment.First != row.First || assignment.Second != row.Second || assignment.Third != row.Third {
			allocated++
		}
		row.First = assignment.First
		row.Second = assignment.Second
		row.Third = assignment.Third

		// Mirror the pick into the snapshot so the next rows respect it.
		for j := range snap.Appointments {
			if snap.Appointments[j].ID == row.ID {
				snap.Appointments[j].First = row.First
				snap.Appointments[j].Second = row.Second
				snap.Appointments[j].Third = row.Third
				break
			}
		}
	}

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save schedule",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("Allocated %d rows", allocated),
		Data:    state.Rows,
	})
}
