package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/store"
)

type ProfileHandler struct {
	store  store.Store
	config *config.Config
}

func NewProfileHandler(st store.Store, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{store: st, config: cfg}
}

// GetProfiles lists staff records, optionally filtered by kind
// (Assistants or Doctors).
func (h *ProfileHandler) GetProfiles(c *gin.Context) {
	kind := c.Query("kind")
	if kind != "" && kind != models.KindAssistants && kind != models.KindDoctors {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "kind must be Assistants or Doctors",
		})
		return
	}

	profiles, err := h.store.ListProfiles(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch profiles",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    profiles,
	})
}

// UpsertProfile creates or updates a staff record.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "name and kind are required",
		})
		return
	}

	username, _ := c.Get("username")
	editor, _ := username.(string)
	now := time.Now().Format(time.RFC3339)

	profile := models.Profile{
		ID:           c.Param("id"),
		Name:         req.Name,
		Kind:         req.Kind,
		Department:   req.Department,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       req.Status,
		WeeklyOff:    req.WeeklyOff,
		PrefFirst:    req.PrefFirst,
		PrefSecond:   req.PrefSecond,
		PrefThird:    req.PrefThird,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    editor,
		UpdatedBy:    editor,
	}
	if profile.Status == "" {
		profile.Status = "active"
	}

	if err := h.store.UpsertProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile saved",
		Data:    profile,
	})
}

// DeleteProfile removes a staff record by id.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.store.DeleteProfile(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to delete profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile deleted",
	})
}
