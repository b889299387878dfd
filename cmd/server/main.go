package main

import (
	"fmt"
	"log"
	"time"

	"invoicing-backend/internal/config"
	"invoicing-backend/internal/logger"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()

	if err := logger.Setup(logger.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db := config.InitDB(cfg.DatabaseDSN)

	db.AutoMigrate(
		&models.Client{},
		&models.VatRate{},
		&models.PaymentTerms{},
		&models.PenaltyRate{},
		&models.CompanySettings{},
		&models.Invoice{},
		&models.InvoiceLine{},
		&models.StatusAuditLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	r.Run(fmt.Sprintf(":%d", cfg.Port))
}
