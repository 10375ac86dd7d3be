package system

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"datamodel-api/internal/logs"
	"datamodel-api/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemController struct {
	SystemService SystemServiceAPI
	LogService    *logs.LogService
}

// GET /api/systems?domains=1,2&dataAreas=3
func (sc *SystemController) GetAllSystems(c *gin.Context) {
	domainIDs := util.ParseCommaSeparatedIDs(c.QueryArray("domains"))
	dataAreaIDs := util.ParseCommaSeparatedIDs(c.QueryArray("dataAreas"))

	systems, err := sc.SystemService.ListSystems(domainIDs, dataAreaIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Systems fetched successfully",
		"systems": systems,
	})
}

func (sc *SystemController) GetSystem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fv, err := sc.SystemService.GetSystem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"system": fv})
}

func (sc *SystemController) CreateSystem(c *gin.Context) {
	var fv FormValues
	if err := c.ShouldBindJSON(&fv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fv.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	created, err := sc.SystemService.CreateSystem(fv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := userIDFromContext(c)
	entityID := created.ID
	if err := sc.LogService.Log("INFO", "system", "CREATE_SYSTEM", fmt.Sprintf("System created : %s", created.Name), uid, "system", entityID, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "System created successfully",
		"system":  created,
	})
}

func (sc *SystemController) UpdateSystem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var fv FormValues
	if err := c.ShouldBindJSON(&fv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := sc.SystemService.UpdateSystem(id, fv)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := userIDFromContext(c)
	if err := sc.LogService.Log("INFO", "system", "UPDATE_SYSTEM", fmt.Sprintf("System updated : %s", updated.Name), uid, "system", &id, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "System updated successfully",
		"system":  updated,
	})
}

func (sc *SystemController) DeleteSystem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := sc.SystemService.DeleteSystem(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "system not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := userIDFromContext(c)
	if err := sc.LogService.Log("WARN", "system", "DELETE_SYSTEM", fmt.Sprintf("System deleted : %d", id), uid, "system", &id, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "System deleted successfully",
	})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid system id is required"})
		return 0, false
	}
	return id, true
}

func userIDFromContext(c *gin.Context) *uint {
	v, exists := c.Get("userID")
	if !exists {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	uid := uint(f)
	return &uid
}
