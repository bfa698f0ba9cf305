package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bwi2-seattrack/internal/adapters/http/middleware"
	"bwi2-seattrack/internal/adapters/http/routes"
	"bwi2-seattrack/internal/adapters/persistence/models"
	"bwi2-seattrack/internal/adapters/persistence/repositories"
	"bwi2-seattrack/internal/config"
	"bwi2-seattrack/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "bwi2-seattrack/docs" // Swagger docs
)

// @title SeatTrack API
// @version 1.0
// @description Accommodation request tracking and seat-availability counts by shift code.

// @contact.name Site Operations

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed sample data on a fresh dev database
	if cfg.IsDev() {
		if err := config.NewSeeder(db, cfg.Site).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed sample data: %v", err)
		}
	}

	// Seat-count cache (optional)
	rdb := config.ConnectRedis(cfg)

	// Supporting-document store (optional)
	var attachmentService *services.AttachmentService
	if cfg.ObjectStore.Enabled() {
		attachmentService, err = services.NewAttachmentService(cfg.ObjectStore)
		if err != nil {
			log.Fatalf("❌ Failed to configure object store: %v", err)
		}
	} else {
		log.Println("⚠️ Object store not configured, file attachments disabled")
	}

	// Start cron service for the daily expiry sweep
	accommodationRepo := repositories.NewAccommodationRepository(db)
	occupancyService := services.NewOccupancyService(accommodationRepo, rdb, cfg.Site)
	cronService := services.NewCronService(accommodationRepo, occupancyService, cfg.Cron.ExpirySchedule)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SeatTrack API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, cache and cfg for dependency injection)
	routes.Setup(app, db, rdb, attachmentService, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s, SITE: %s]", cfg.Port, cfg.AppMode, cfg.Site)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
