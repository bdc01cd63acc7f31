package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"surgirisk/internal/models"
	"surgirisk/internal/store"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	store store.PatientStore
}

func NewPatientController(store store.PatientStore) *PatientController {
	return &PatientController{store: store}
}

// RegisterPatient godoc
// @Summary Register a new patient
// @Description Validate the registration fields, compute BMI and assign the next patient ID
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.RegisterPatientRequest true "Patient registration data"
// @Success 201 {object} map[string]interface{} "Patient registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid registration data"
// @Router /patients [post]
func (pc *PatientController) RegisterPatient(c *gin.Context) {
	var req models.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	patient, err := pc.store.Register(&req)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid registration data",
				"error":   verr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Patient registered successfully",
		"data":    patient,
	})
}

// ListPatients godoc
// @Summary List all patients
// @Description Retrieve every registered patient in insertion order
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{} "Patients retrieved successfully"
// @Router /patients [get]
func (pc *PatientController) ListPatients(c *gin.Context) {
	patients := pc.store.All()
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patients retrieved successfully",
		"data":    patients,
		"count":   len(patients),
	})
}

// GetPatient godoc
// @Summary Get a patient by ID
// @Description Retrieve a single patient record
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Patient retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id} [get]
func (pc *PatientController) GetPatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := pc.store.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Patient not found",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient retrieved successfully",
		"data":    patient,
	})
}
