package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/allocation"
	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/services"
	"github.com/puttdental/backend-allotment/store"
)

type AllocationHandler struct {
	store  store.Store
	config *config.Config
}

func NewAllocationHandler(st store.Store, cfg *config.Config) *AllocationHandler {
	return &AllocationHandler{store: st, config: cfg}
}

// GetStatusBoard returns each assistant's live status (free, busy, blocked,
// off) for the requested moment. Defaults to today and the wall clock.
func (h *AllocationHandler) GetStatusBoard(c *gin.Context) {
	snap, _, err := services.BuildSnapshot(h.store, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	now := c.Query("now")
	if now == "" {
		now = time.Now().Format("15:04")
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    snap.StatusBoard(now),
	})
}

// GetConfig returns the active allocation rules. Falls back to the built-in
// defaults when nothing has been saved yet.
func (h *AllocationHandler) GetConfig(c *gin.Context) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	cfg := allocation.DefaultConfig()
	if state.Meta.Allocation != nil {
		cfg = *state.Meta.Allocation
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    cfg,
	})
}

// UpdateConfig replaces the saved allocation rules.
func (h *AllocationHandler) UpdateConfig(c *gin.Context) {
	var cfg allocation.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid allocation config",
		})
		return
	}
	if len(cfg.Departments) == 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "At least one department is required",
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

	state.Meta.Allocation = &cfg
	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save allocation config",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Allocation config updated",
		Data:    cfg,
	})
}
