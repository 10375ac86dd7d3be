package export

import (
	"datamodel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, exportService *ExportService) {
	exportController := &ExportController{ExportService: exportService}

	exportGroup := r.Group("/api/export")
	exportGroup.Use(middlewares.AuthMiddleware())
	{
		exportGroup.GET("/model", exportController.DownloadModelWorkbook)
	}
}
