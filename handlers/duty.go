package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/store"
)

type DutyHandler struct {
	store  store.Store
	config *config.Config
}

func NewDutyHandler(st store.Store, cfg *config.Config) *DutyHandler {
	return &DutyHandler{store: st, config: cfg}
}

// GetDuties lists the duty master.
func (h *DutyHandler) GetDuties(c *gin.Context) {
	duties, err := h.store.ListDuties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch duties",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    duties,
	})
}

// CreateDuty adds a duty to the master list.
func (h *DutyHandler) CreateDuty(c *gin.Context) {
	var req models.CreateDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "title is required",
		})
		return
	}

	duty := models.Duty{
		Title:          req.Title,
		Frequency:      req.Frequency,
		DefaultMinutes: req.DefaultMinutes,
		OP:             req.OP,
		Active:         true,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}

	if err := h.store.SaveDuty(duty); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save duty",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Data:    duty,
	})
}

// UpdateDuty edits a master duty; nil fields are untouched.
func (h *DutyHandler) UpdateDuty(c *gin.Context) {
	var req models.UpdateDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	duties, err := h.store.ListDuties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch duties",
		})
		return
	}

	id := c.Param("id")
	var duty *models.Duty
	for i := range duties {
		if duties[i].ID == id {
			duty = &duties[i]
			break
		}
	}
	if duty == nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Duty not found",
		})
		return
	}

	if req.Title != nil {
		duty.Title = *req.Title
	}
	if req.Frequency != nil {
		duty.Frequency = *req.Frequency
	}
	if req.DefaultMinutes != nil {
		duty.DefaultMinutes = *req.DefaultMinutes
	}
	if req.OP != nil {
		duty.OP = *req.OP
	}
	if req.Active != nil {
		duty.Active = *req.Active
	}

	if err := h.store.SaveDuty(*duty); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save duty",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    duty,
	})
}

// GetDutyAssignments lists who does what.
func (h *DutyHandler) GetDutyAssignments(c *gin.Context) {
	assignments, err := h.store.ListDutyAssignments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch duty assignments",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    assignments,
	})
}

// CreateDutyAssignment pins a duty to an assistant. The estimated minutes
// fall back to the duty's default.
func (h *DutyHandler) CreateDutyAssignment(c *gin.Context) {
	var req models.CreateDutyAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "duty_id and assistant are required",
		})
		return
	}

	est := req.EstMinutes
	if est == 0 {
		duties, err := h.store.ListDuties()
		if err == nil {
			for _, d := range duties {
				if d.ID == req.DutyID {
					est = d.DefaultMinutes
					break
				}
			}
		}
	}

	assignment := models.DutyAssignment{
		DutyID:     req.DutyID,
		Assistant:  req.Assistant,
		OP:         req.OP,
		EstMinutes: est,
		Active:     true,
	}

	if err := h.store.SaveDutyAssignment(assignment); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save duty assignment",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Data:    assignment,
	})
}

// GetDutyRuns lists runs for a date (default today).
func (h *DutyHandler) GetDutyRuns(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	runs, err := h.store.ListDutyRuns(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch duty runs",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    runs,
	})
}

// StartDutyRun starts the timer on a duty. The due time is the start plus
// the assignment's estimated minutes (falling back to the duty default).
func (h *DutyHandler) StartDutyRun(c *gin.Context) {
	var req models.StartDutyRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "duty_id and assistant are required",
		})
		return
	}

	est := 0
	if assignments, err := h.store.ListDutyAssignments(); err == nil {
		for _, a := range assignments {
			if a.DutyID == req.DutyID && a.Assistant == req.Assistant && a.Active {
				est = a.EstMinutes
				break
			}
		}
	}
	if est == 0 {
		if duties, err := h.store.ListDuties(); err == nil {
			for _, d := range duties {
				if d.ID == req.DutyID {
					est = d.DefaultMinutes
					break
				}
			}
		}
	}

	now := time.Now()
	run := models.DutyRun{
		Date:       now.Format("2006-01-02"),
		Assistant:  req.Assistant,
		DutyID:     req.DutyID,
		Status:     models.DutyRunRunning,
		StartedAt:  now.Format(time.RFC3339),
		EstMinutes: est,
		OP:         req.OP,
	}
	if est > 0 {
		run.DueAt = now.Add(time.Duration(est) * time.Minute).Format(time.RFC3339)
	}

	if err := h.store.SaveDutyRun(run); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to start duty run",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: fmt.Sprintf("Duty started for %s", req.Assistant),
		Data:    run,
	})
}

// CompleteDutyRun marks a running duty as done.
func (h *DutyHandler) CompleteDutyRun(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	runs, err := h.store.ListDutyRuns(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch duty runs",
		})
		return
	}

	id := c.Param("id")
	var run *models.DutyRun
	for i := range runs {
		if runs[i].ID == id {
			run = &runs[i]
			break
		}
	}
	if run == nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Duty run not found",
		})
		return
	}
	if run.Status == models.DutyRunDone {
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Duty run already done",
			Data:    run,
		})
		return
	}

	run.Status = models.DutyRunDone
	run.EndedAt = time.Now().Format(time.RFC3339)

	if err := h.store.SaveDutyRun(*run); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to complete duty run",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    run,
	})
}
