package domain

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, domainService *DomainService) {
	domainController := &DomainController{DomainService: domainService}

	domainGroup := r.Group("/api/domains")
	{
		domainGroup.GET("", domainController.GetAllDomains)
		domainGroup.POST("", domainController.AddDomains)
		domainGroup.GET("/:domain/data-areas", domainController.GetDataAreasByDomain)
	}

	dataAreaGroup := r.Group("/api/data-areas")
	{
		dataAreaGroup.GET("", domainController.GetAllDataAreas)
		dataAreaGroup.POST("", domainController.AddDataAreas)
	}
}
