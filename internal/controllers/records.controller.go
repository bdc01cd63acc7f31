package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"surgirisk/internal/models"
	"surgirisk/internal/store"

	"github.com/gin-gonic/gin"
)

type RecordsController struct {
	store store.PatientStore
}

func NewRecordsController(store store.PatientStore) *RecordsController {
	return &RecordsController{store: store}
}

// GetRecords godoc
// @Summary Query patient records with their assessments
// @Description Filter by risk category and surgery type, sorted ascending by the given key. Omitted filters select everything.
// @Tags records
// @Produce json
// @Param risk query []string false "Risk categories to include (Low, Moderate, High, Critical)"
// @Param surgery_type query []string false "Surgery types to include (Minor, Moderate, Major, Complex)"
// @Param sort_by query string false "Sort key: name, age, score or surgery_date" default(name)
// @Success 200 {object} map[string]interface{} "Records retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid filter or sort key"
// @Failure 404 {object} map[string]interface{} "No patient records available"
// @Router /records [get]
func (rc *RecordsController) GetRecords(c *gin.Context) {
	categories, err := parseCategoryFilter(c.QueryArray("risk"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid risk filter",
			"error":   err.Error(),
		})
		return
	}

	surgeryTypes, err := parseSurgeryTypeFilter(c.QueryArray("surgery_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid surgery type filter",
			"error":   err.Error(),
		})
		return
	}

	sortBy := c.DefaultQuery("sort_by", store.SortByName)
	records, err := rc.store.Query(categories, surgeryTypes, sortBy)
	if err != nil {
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid sort key",
				"error":   verr.Error(),
			})
		case errors.Is(err, store.ErrEmptyStore):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "No patient records available",
				"error":   err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to query records",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Records retrieved successfully",
		"data":    records,
		"count":   len(records),
	})
}

// parseCategoryFilter maps query values onto risk categories; no values means
// all categories.
func parseCategoryFilter(values []string) ([]models.RiskCategory, error) {
	if len(values) == 0 {
		return []models.RiskCategory{
			models.RiskLow, models.RiskModerate, models.RiskHigh, models.RiskCritical,
		}, nil
	}
	categories := make([]models.RiskCategory, 0, len(values))
	for _, v := range values {
		category := models.RiskCategory(v)
		if !models.ValidRiskCategories[category] {
			return nil, fmt.Errorf("unknown risk category %q", v)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func parseSurgeryTypeFilter(values []string) ([]models.SurgeryType, error) {
	if len(values) == 0 {
		return []models.SurgeryType{
			models.SurgeryMinor, models.SurgeryModerate, models.SurgeryMajor, models.SurgeryComplex,
		}, nil
	}
	surgeryTypes := make([]models.SurgeryType, 0, len(values))
	for _, v := range values {
		surgeryType := models.SurgeryType(v)
		if !models.ValidSurgeryTypes[surgeryType] {
			return nil, fmt.Errorf("unknown surgery type %q", v)
		}
		surgeryTypes = append(surgeryTypes, surgeryType)
	}
	return surgeryTypes, nil
}
