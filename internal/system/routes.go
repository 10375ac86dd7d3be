package system

import (
	"datamodel-api/internal/logs"
	"datamodel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, systemService *SystemService, logService *logs.LogService) {
	systemController := &SystemController{SystemService: systemService, LogService: logService}

	systemGroup := r.Group("/api/systems")
	{
		systemGroup.GET("", systemController.GetAllSystems)
		systemGroup.GET("/:id", systemController.GetSystem)
	}

	writeGroup := r.Group("/api/systems")
	writeGroup.Use(middlewares.AuthMiddleware())
	{
		writeGroup.POST("", systemController.CreateSystem)
		writeGroup.PUT("/:id", systemController.UpdateSystem)
		writeGroup.DELETE("/:id", systemController.DeleteSystem)
	}
}
