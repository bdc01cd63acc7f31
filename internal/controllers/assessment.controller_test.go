package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAssessment(t *testing.T) {
	router, _ := setupTestAPI()

	payload := validPatientPayload()
	payload["age"] = 70
	payload["weight_kg"] = 92.5 // bmi 32.01
	payload["asa_class"] = 3
	payload["comorbidities"] = []string{"Diabetes", "Hypertension"}
	require.Equal(t, http.StatusCreated, postJSON(router, "/patients", payload).Code)

	w := getJSON(router, "/patients/1/assessment")
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assessment := data["assessment"].(map[string]interface{})

	assert.Equal(t, float64(27), assessment["score"])
	assert.Equal(t, "Critical", assessment["category"])
	assert.Equal(t, 13.5, assessment["mortality_risk_pct"])

	breakdown := assessment["factor_breakdown"].(map[string]interface{})
	assert.Equal(t, float64(7), breakdown["Age Factor"])
	assert.Equal(t, float64(4), breakdown["BMI Factor"])

	recommendations := assessment["recommendations"].([]interface{})
	assert.Len(t, recommendations, 3)
	assert.Equal(t, "Consider postponing non-emergency surgery", recommendations[0])
}

func TestGetAssessmentUnknownPatient(t *testing.T) {
	router, _ := setupTestAPI()
	w := getJSON(router, "/patients/1/assessment")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
