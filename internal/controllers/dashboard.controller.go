package controllers

import (
	"net/http"

	"surgirisk/internal/risk"
	"surgirisk/internal/store"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	store store.PatientStore
}

func NewDashboardController(store store.PatientStore) *DashboardController {
	return &DashboardController{store: store}
}

// GetDashboard godoc
// @Summary Dashboard statistics over all patients
// @Description Aggregate counts, category distribution and per-surgery-type score lists. Recomputed per request.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard statistics"
// @Failure 404 {object} map[string]interface{} "No patient data available"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	patients := dc.store.All()
	if len(patients) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No patient data available",
			"error":   store.ErrEmptyStore.Error(),
		})
		return
	}

	stats := risk.Aggregate(patients)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard statistics computed successfully",
		"data":    stats,
	})
}
