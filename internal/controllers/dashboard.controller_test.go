package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardEmptyStore(t *testing.T) {
	router, _ := setupTestAPI()

	w := getJSON(router, "/dashboard")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No patient data available", decodeBody(t, w)["message"])
}

func TestGetDashboard(t *testing.T) {
	router := seedRecords(t)

	w := getJSON(router, "/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	stats := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_patients"])
	assert.Equal(t, float64(1), stats["high_risk_patients"])
	assert.Equal(t, 47.5, stats["average_age"])

	distribution := stats["category_distribution"].(map[string]interface{})
	assert.Equal(t, float64(1), distribution["Critical"])
	assert.Equal(t, float64(1), distribution["Low"])

	scores := stats["scores_by_surgery_type"].(map[string]interface{})
	assert.Len(t, scores["Major"].([]interface{}), 1)
	assert.Len(t, scores["Minor"].([]interface{}), 1)

	scatter := stats["scatter_points"].([]interface{})
	assert.Len(t, scatter, 2)
}
