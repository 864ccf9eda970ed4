package routes

import (
	"time"

	"samajam-backend/internal/adapters/http/handlers"
	"samajam-backend/internal/adapters/http/middleware"
	"samajam-backend/internal/adapters/persistence/repositories"
	"samajam-backend/internal/config"
	"samajam-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, store services.ObjectStore, cfg *config.Config) {
	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	bearerRepo := repositories.NewOfficeBearerRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)

	// Initialize services
	storageService := services.NewStorageService(
		store,
		cfg.Storage.PublicBaseURL,
		cfg.Storage.MemberPhotosBucket,
		cfg.Storage.NewsImagesBucket,
	)
	adminAuthService := services.NewAdminAuthService(cfg.Admin)
	memberAuthService := services.NewMemberAuthService(memberRepo)
	memberService := services.NewMemberService(memberRepo, storageService, cfg.Storage.MemberPhotosBucket)
	newsService := services.NewNewsService(newsRepo, storageService, cfg.Storage.NewsImagesBucket)
	galleryService := services.NewGalleryService(galleryRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(adminAuthService, cfg)
	memberHandler := handlers.NewMemberHandler(memberAuthService, memberService)
	adminUserHandler := handlers.NewAdminUserHandler(memberService)
	newsHandler := handlers.NewNewsHandler(newsService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	bearerHandler := handlers.NewOfficeBearerHandler(bearerRepo)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	requireAdmin := middleware.AuthMiddleware(cfg)
	loginLimiter := middleware.LoginRateLimiter()

	// Admin auth
	admin := app.Group("/api/admin")
	admin.Post("/login", loginLimiter, authHandler.Login)
	admin.Post("/logout", authHandler.Logout)
	admin.Get("/verify", requireAdmin, authHandler.Verify)

	// Admin member management
	adminUsers := admin.Group("/users", requireAdmin)
	adminUsers.Get("/", adminUserHandler.GetAllMembers)
	adminUsers.Get("/:id", adminUserHandler.GetMember)
	adminUsers.Post("/", adminUserHandler.CreateMember)
	adminUsers.Put("/:id", adminUserHandler.UpdateMember)
	adminUsers.Delete("/:id", adminUserHandler.DeleteMember)

	// Member self-service. These routes carry no token gate: the member
	// frontend re-sends the serial number from the login response.
	members := app.Group("/api/members", middleware.NoCacheHeaders())
	members.Post("/login", loginLimiter, memberHandler.Login)
	members.Get("/:sl_no", memberHandler.GetMember)
	members.Put("/:sl_no", memberHandler.UpdateMember)
	members.Post("/:sl_no/photo", memberHandler.UploadPhoto)
	members.Delete("/:sl_no/photo", memberHandler.DeletePhoto)

	// News: public reads, admin writes
	news := app.Group("/api/news")
	news.Get("/", newsHandler.GetAllNews)
	news.Get("/:id", newsHandler.GetNewsByID)
	news.Post("/", requireAdmin, newsHandler.CreateNews)
	news.Put("/:id", requireAdmin, newsHandler.UpdateNews)
	news.Delete("/:id", requireAdmin, newsHandler.DeleteNews)

	// Office bearers (public, changes once a term)
	bearers := app.Group("/api/office-bearers", middleware.CacheControl(time.Hour))
	bearers.Get("/current", bearerHandler.GetCurrent)
	bearers.Get("/term/:termStart/:termEnd", bearerHandler.GetByTerm)
	bearers.Get("/all", bearerHandler.GetAll)

	// Photo galleries (public)
	photos := app.Group("/api/photos", middleware.CacheControl(15*time.Minute))
	photos.Get("/years", galleryHandler.GetAvailableYears)
	photos.Get("/events/:year", galleryHandler.GetEventsByYear)
	photos.Get("/year/:year", galleryHandler.GetPhotosByYear)
	photos.Get("/event/:eventName", galleryHandler.GetPhotosByEvent)
	photos.Get("/random/:year/:limit", galleryHandler.GetRandomPhotos)
	photos.Get("/social-work", galleryHandler.GetSocialWorkPhotos)
}
