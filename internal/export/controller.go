package export

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *ExportService
}

func (ec *ExportController) DownloadModelWorkbook(c *gin.Context) {
	contentType, filename, data, err := ec.ExportService.BuildModelWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}
