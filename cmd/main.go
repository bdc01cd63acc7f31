package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"surgirisk/internal/controllers"
	"surgirisk/internal/store"
	"surgirisk/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Surgical Risk Management API
// @version 1.0
// @description Preoperative risk scoring, patient records and dashboard statistics.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// The store lives for the process lifetime; nothing is persisted.
	patientStore := store.NewPatientStore()

	patientController := controllers.NewPatientController(patientStore)
	assessmentController := controllers.NewAssessmentController(patientStore)
	recordsController := controllers.NewRecordsController(patientStore)
	dashboardController := controllers.NewDashboardController(patientStore)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Surgical Risk Management API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"patients": patientStore.Count(),
		})
	})

	routes.RegisterPatientRoutes(router, patientController, assessmentController)
	routes.RegisterRecordsRoutes(router, recordsController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterSwaggerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
