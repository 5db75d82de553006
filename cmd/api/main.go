package main

import (
	"log"

	"github.com/fajara33/rd-company/internal/application/service"
	"github.com/fajara33/rd-company/internal/config"
	"github.com/fajara33/rd-company/internal/infrastructure/database"
	"github.com/fajara33/rd-company/internal/infrastructure/repository"
	"github.com/fajara33/rd-company/internal/presentation/http/handler"
	"github.com/fajara33/rd-company/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local store
	db, err := database.NewSQLiteDB(&cfg.Store)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Lazily seed the collections on first use
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Initialize repositories
	stockRepo := repository.NewStockRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Initialize services
	posService := service.NewPOSService(stockRepo, txRepo)
	inventoryService := service.NewInventoryService(stockRepo)
	dashboardService := service.NewDashboardService(txRepo, cfg.Dashboard.RefreshIntervalSeconds)
	attendanceService := service.NewAttendanceService(attendanceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Inventory:   handler.NewInventoryHandler(inventoryService),
		POS:         handler.NewPOSHandler(posService),
		Transaction: handler.NewTransactionHandler(posService),
		Attendance:  handler.NewAttendanceHandler(attendanceService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
