package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/models"
	"github.com/puttdental/backend-allotment/store"
)

type PatientHandler struct {
	store  store.Store
	config *config.Config
}

func NewPatientHandler(st store.Store, cfg *config.Config) *PatientHandler {
	return &PatientHandler{store: st, config: cfg}
}

// GetPatients lists the patient directory, with an optional name filter.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.store.ListPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch patients",
		})
		return
	}

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := patients[:0]
		for _, p := range patients {
			if strings.Contains(strings.ToLower(p.Name), q) {
				filtered = append(filtered, p)
			}
		}
		patients = filtered
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    patients,
	})
}

// CreatePatient adds a directory entry.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req models.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "name is required",
		})
		return
	}

	patient := models.Patient{Name: req.Name}
	if err := h.store.SavePatient(patient); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save patient",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Data:    patient,
	})
}
