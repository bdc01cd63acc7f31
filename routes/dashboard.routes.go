package routes

import (
	"surgirisk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController) {
	router.GET("/dashboard", dashboardController.GetDashboard)
}
