package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"samajam-backend/internal/adapters/http/middleware"
	"samajam-backend/internal/adapters/http/routes"
	"samajam-backend/internal/adapters/persistence/models"
	"samajam-backend/internal/adapters/persistence/repositories"
	"samajam-backend/internal/adapters/storage"
	"samajam-backend/internal/config"
	"samajam-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "samajam-backend/docs" // Swagger docs
)

// @title Samajam Community API
// @version 1.0
// @description Membership directory and content backend for the community association website.

// @BasePath /
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration (refuses to start without admin credentials
	// or database configuration)
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

	// Seed placeholder data in development
	if cfg.AppMode == "dev" {
		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Seeding failed: %v", err)
		}
	}

	// Object storage client
	store, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Failed to create storage client: %v", err)
	}

	// Nightly orphaned-object sweep
	storageService := services.NewStorageService(
		store,
		cfg.Storage.PublicBaseURL,
		cfg.Storage.MemberPhotosBucket,
		cfg.Storage.NewsImagesBucket,
	)
	cleanupService := services.NewCleanupService(
		repositories.NewMemberRepository(db),
		repositories.NewNewsRepository(db),
		storageService,
		cfg.Storage.MemberPhotosBucket,
		cfg.Storage.NewsImagesBucket,
	)
	cleanupService.Start()
	defer cleanupService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Samajam Community API v1.0",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, store and cfg for dependency injection)
	routes.Setup(app, db, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
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
