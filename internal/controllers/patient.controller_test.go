package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"surgirisk/internal/controllers"
	"surgirisk/internal/store"
	"surgirisk/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestAPI() (*gin.Engine, store.PatientStore) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	patientStore := store.NewPatientStore()
	routes.RegisterPatientRoutes(router,
		controllers.NewPatientController(patientStore),
		controllers.NewAssessmentController(patientStore))
	routes.RegisterRecordsRoutes(router, controllers.NewRecordsController(patientStore))
	routes.RegisterDashboardRoutes(router, controllers.NewDashboardController(patientStore))
	return router, patientStore
}

func validPatientPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jane Doe",
		"age":           54,
		"gender":        "Female",
		"height_cm":     170,
		"weight_kg":     70,
		"surgery_date":  time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		"surgery_type":  "Major",
		"surgeon":       "Dr. Patel",
		"asa_class":     2,
		"comorbidities": []string{"Diabetes"},
	}
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegisterPatient(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(map[string]interface{})
		expectedStatus int
	}{
		{
			name:           "successful registration",
			mutate:         func(p map[string]interface{}) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty name rejected",
			mutate:         func(p map[string]interface{}) { p["name"] = "" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "age out of range rejected",
			mutate:         func(p map[string]interface{}) { p["age"] = 130 },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown comorbidity rejected",
			mutate:         func(p map[string]interface{}) { p["comorbidities"] = []string{"Vertigo"} },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, patientStore := setupTestAPI()
			payload := validPatientPayload()
			tt.mutate(payload)

			w := postJSON(router, "/patients", payload)
			assert.Equal(t, tt.expectedStatus, w.Code)

			body := decodeBody(t, w)
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, "success", body["status"])
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(1), data["id"])
				assert.Equal(t, 24.22, data["bmi"])
				assert.Equal(t, 1, patientStore.Count())
			} else {
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, 0, patientStore.Count())
			}
		})
	}
}

func TestListPatients(t *testing.T) {
	router, _ := setupTestAPI()

	w := getJSON(router, "/patients")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["count"])

	require.Equal(t, http.StatusCreated, postJSON(router, "/patients", validPatientPayload()).Code)

	w = getJSON(router, "/patients")
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
}

func TestGetPatient(t *testing.T) {
	router, _ := setupTestAPI()
	require.Equal(t, http.StatusCreated, postJSON(router, "/patients", validPatientPayload()).Code)

	w := getJSON(router, "/patients/1")
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", data["name"])

	w = getJSON(router, "/patients/99")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getJSON(router, "/patients/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
