package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/handyman-saas/handyman-platform/internal/audit"
	"github.com/handyman-saas/handyman-platform/internal/config"
	"github.com/handyman-saas/handyman-platform/internal/handlers"
	infraRepo "github.com/handyman-saas/handyman-platform/internal/infra/repository"
	"github.com/handyman-saas/handyman-platform/internal/middleware"
	"github.com/handyman-saas/handyman-platform/internal/session"
	"github.com/handyman-saas/handyman-platform/internal/storage"
	ucBooking "github.com/handyman-saas/handyman-platform/internal/usecase/booking"
	ucProfile "github.com/handyman-saas/handyman-platform/internal/usecase/profile"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *slog.Logger,
	sessions session.Store,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	codec := session.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL)

	profileRepo := infraRepo.NewProfileGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	uploader := storage.NewS3(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	getPublicProfileUC := ucProfile.NewGetPublicProfile(profileRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, sessions, codec, auditDispatcher, log, cfg.SessionTTL)
	webHandler := handlers.NewWebHandler()
	dashboardHandler := handlers.NewDashboardHandler(db)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	portfolioHandler := handlers.NewPortfolioHandler(db, auditDispatcher)

	publicHandler := handlers.NewPublicHandler(getPublicProfileUC, log)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, bookingRepo, log)

	uploadHandler := handlers.NewUploadHandler(uploader, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	apiAuth := middleware.AuthMiddleware(sessions, codec)
	webAuth := middleware.WebAuthMiddleware(sessions, codec)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Landing)
	r.GET("/register", webHandler.RegisterPage)
	r.GET("/login", webHandler.LoginPage)
	r.GET("/logout", authHandler.Logout)

	r.GET("/dashboard", webAuth, dashboardHandler.Show)
	r.GET("/portfolio/:username", publicHandler.ShowPortfolioPage)

	// ======================================================
	// AUTH (JSON)
	// ======================================================
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/public/:username", publicHandler.GetPublicProfile)
		api.POST("/bookings", bookingHandler.Create)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(apiAuth)
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/portfolio", portfolioHandler.List)
			secured.POST("/portfolio", portfolioHandler.Create)
			secured.PUT("/portfolio/:id", portfolioHandler.Update)
			secured.DELETE("/portfolio/:id", portfolioHandler.Delete)

			secured.GET("/bookings", bookingHandler.List)

			secured.POST("/uploads", uploadHandler.Create)
		}
	}
}
