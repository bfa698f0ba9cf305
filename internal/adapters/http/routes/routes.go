package routes

import (
	"time"

	"bwi2-seattrack/internal/adapters/http/handlers"
	"bwi2-seattrack/internal/adapters/http/middleware"
	"bwi2-seattrack/internal/adapters/persistence/repositories"
	"bwi2-seattrack/internal/config"
	"bwi2-seattrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup configures all routes for the application and wires the dependency
// graph: repository -> services -> handlers. attachmentService may be nil
// when object storage is not configured.
func Setup(app *fiber.App, db *gorm.DB, rdb *redis.Client, attachmentService *services.AttachmentService, cfg *config.Config) {
	// Repository
	accommodationRepo := repositories.NewAccommodationRepository(db)

	// Services
	notifyService := services.NewNotificationService(cfg.Webhook.URL)
	occupancyService := services.NewOccupancyService(accommodationRepo, rdb, cfg.Site)
	accommodationService := services.NewAccommodationService(accommodationRepo, notifyService, occupancyService, cfg.Site)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	accommodationHandler := handlers.NewAccommodationHandler(accommodationService)
	restrictionHandler := handlers.NewRestrictionHandler(accommodationService, attachmentService)
	seatCountHandler := handlers.NewSeatCountHandler(occupancyService)
	webhookHandler := handlers.NewWebhookHandler(accommodationService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Accommodation records
	apiV1.Get("/records", accommodationHandler.List)
	apiV1.Get("/records/:id", middleware.NoCacheHeaders(), accommodationHandler.Get)
	apiV1.Patch("/records/:id", accommodationHandler.Patch)
	apiV1.Delete("/records/:id", accommodationHandler.Delete)

	// Restriction submission (create-or-update + notify)
	apiV1.Post("/restrictions", middleware.SubmissionRateLimiter(), restrictionHandler.Submit)

	// Seat occupancy snapshot
	apiV1.Get("/seatCounts", middleware.CacheControl(30*time.Second), seatCountHandler.Get)

	// Inbound notification-system callback
	apiV1.Post("/webhook", webhookHandler.Receive)
}
