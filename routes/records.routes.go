package routes

import (
	"surgirisk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecordsRoutes(router *gin.Engine, recordsController *controllers.RecordsController) {
	router.GET("/records", recordsController.GetRecords)
}
