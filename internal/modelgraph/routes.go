package modelgraph

import (
	"datamodel-api/internal/logs"
	"datamodel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, modelService *ModelService, logService *logs.LogService) {
	modelController := &ModelController{ModelService: modelService, LogService: logService}

	readGroup := r.Group("/api/model")
	{
		readGroup.GET("/layers", modelController.GetAllLayers)
		readGroup.GET("/layers/:id/objects", modelController.GetObjectsByLayer)
		readGroup.GET("/layers/:id/relationships", modelController.GetRelationshipsByLayer)
		readGroup.GET("/audit", modelController.GetAudit)
	}

	writeGroup := r.Group("/api/model")
	writeGroup.Use(middlewares.AuthMiddleware())
	{
		writeGroup.POST("/layers", modelController.CreateLayer)
		writeGroup.PUT("/layers/:id", modelController.UpdateLayer)
		writeGroup.DELETE("/layers/:id", modelController.DeleteLayer)

		writeGroup.POST("/objects", modelController.CreateObject)
		writeGroup.PUT("/objects/:id", modelController.UpdateObject)
		writeGroup.DELETE("/objects/:id", modelController.DeleteObject)

		writeGroup.POST("/relationships", modelController.CreateRelationship)
		writeGroup.PUT("/relationships/:id", modelController.UpdateRelationship)
		writeGroup.DELETE("/relationships/:id", modelController.DeleteRelationship)
	}
}
