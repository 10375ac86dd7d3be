package domain

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type DomainController struct {
	DomainService *DomainService
}

func (dc *DomainController) GetAllDomains(c *gin.Context) {
	domains, err := dc.DomainService.GetAllDomains()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Domains fetched successfully",
		"domains": domains,
	})
}

func (dc *DomainController) AddDomains(c *gin.Context) {
	var req struct {
		Domains []string `json:"domains" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.DomainService.AddDomains(req.Domains); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Domains added successfully",
	})
}

func (dc *DomainController) GetAllDataAreas(c *gin.Context) {
	areas, err := dc.DomainService.GetAllDataAreas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Data areas fetched successfully",
		"data_areas": areas,
	})
}

func (dc *DomainController) GetDataAreasByDomain(c *gin.Context) {
	domainIDStr := strings.TrimSpace(c.Param("domain"))
	domainID, err := strconv.ParseInt(domainIDStr, 10, 64)
	if err != nil || domainID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid domain id is required"})
		return
	}

	areas, err := dc.DomainService.GetDataAreasByDomain(domainID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Data areas fetched successfully",
		"data_areas": areas,
	})
}

func (dc *DomainController) AddDataAreas(c *gin.Context) {
	var req struct {
		DataAreas []string `json:"data_areas" binding:"required"`
		DomainID  *int64   `json:"domain_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.DomainService.AddDataAreas(req.DataAreas, req.DomainID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Data areas added successfully",
	})
}
