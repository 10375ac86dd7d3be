package main

import (
	"log"
	"os"

	"datamodel-api/config"
	"datamodel-api/internal/domain"
	"datamodel-api/internal/export"
	"datamodel-api/internal/logs"
	"datamodel-api/internal/modelgraph"
	"datamodel-api/internal/system"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	systemService := &system.SystemService{DB: db}
	system.RegisterRoutes(r, systemService, logService)

	domainService := &domain.DomainService{DB: db}
	domain.RegisterRoutes(r, domainService)

	modelService := &modelgraph.ModelService{DB: db}
	modelgraph.RegisterRoutes(r, modelService, logService)

	exportService := &export.ExportService{DB: db, Models: modelService}
	export.RegisterRoutes(r, exportService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
