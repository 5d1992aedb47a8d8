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
	"github.com/puttdental/backend-allotment/store"
)

type TimeBlockHandler struct {
	store  store.Store
	config *config.Config
}

func NewTimeBlockHandler(st store.Store, cfg *config.Config) *TimeBlockHandler {
	return &TimeBlockHandler{store: st, config: cfg}
}

// GetTimeBlocks lists the exclusion windows, optionally filtered by date.
func (h *TimeBlockHandler) GetTimeBlocks(c *gin.Context) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	date := c.Query("date")
	blocks := []models.TimeBlock{}
	for _, tb := range state.Meta.TimeBlocks {
		if date != "" && tb.Date != "" && tb.Date != date {
			continue
		}
		blocks = append(blocks, tb)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    blocks,
	})
}

// CreateTimeBlock records a new exclusion window for an assistant.
func (h *TimeBlockHandler) CreateTimeBlock(c *gin.Context) {
	var req models.CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "assistant, start and end are required",
		})
		return
	}
	if _, ok := allocation.ParseClock(req.Start); !ok {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Unparseable start %q", req.Start),
		})
		return
	}
	if _, ok := allocation.ParseClock(req.End); !ok {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Unparseable end %q", req.End),
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

	block := models.TimeBlock{
		ID:        uuid.NewString(),
		Assistant: req.Assistant,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Reason:    req.Reason,
	}
	state.Meta.TimeBlocks = append(state.Meta.TimeBlocks, block)
	state.Meta.TimeBlocksUpdatedAt = time.Now().Format(time.RFC3339)

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save time block",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Data:    block,
	})
}

// DeleteTimeBlock removes an exclusion window by id.
func (h *TimeBlockHandler) DeleteTimeBlock(c *gin.Context) {
	state, err := h.store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to load schedule",
		})
		return
	}

	id := c.Param("id")
	kept := state.Meta.TimeBlocks[:0]
	found := false
	for _, tb := range state.Meta.TimeBlocks {
		if tb.ID == id {
			found = true
			continue
		}
		kept = append(kept, tb)
	}
	if !found {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Time block not found",
		})
		return
	}
	state.Meta.TimeBlocks = kept
	state.Meta.TimeBlocksUpdatedAt = time.Now().Format(time.RFC3339)

	if err := h.store.SaveSchedule(state); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save time block",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Time block deleted",
	})
}
