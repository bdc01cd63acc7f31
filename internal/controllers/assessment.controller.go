package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"surgirisk/internal/risk"
	"surgirisk/internal/store"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	store store.PatientStore
}

func NewAssessmentController(store store.PatientStore) *AssessmentController {
	return &AssessmentController{store: store}
}

// GetAssessment godoc
// @Summary Assess surgical risk for a patient
// @Description Compute the risk score, category, mortality estimate, factor breakdowns and recommendations for one patient
// @Tags assessment
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Assessment computed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id}/assessment [get]
func (ac *AssessmentController) GetAssessment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := ac.store.FindByID(uint(id))
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

	assessment := risk.Assess(patient)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessment computed successfully",
		"data": gin.H{
			"patient":    patient,
			"assessment": assessment,
		},
	})
}
