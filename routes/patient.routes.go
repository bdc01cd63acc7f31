package routes

import (
	"surgirisk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPatientRoutes(router *gin.Engine, patientController *controllers.PatientController, assessmentController *controllers.AssessmentController) {
	patientRoutes := router.Group("/patients")
	{
		patientRoutes.POST("", patientController.RegisterPatient)
		patientRoutes.GET("", patientController.ListPatients)
		patientRoutes.GET("/:id", patientController.GetPatient)
		patientRoutes.GET("/:id/assessment", assessmentController.GetAssessment)
	}
}
