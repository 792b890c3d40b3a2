package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/example/alhayat/internal/cache"
	"github.com/example/alhayat/internal/config"
	"github.com/example/alhayat/internal/handlers"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/services"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/views"
)

// NewApp builds the Fiber application with views, middleware and routes.
func NewApp(db *gorm.DB, cfg *config.Config, c *cache.Cache) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Al Hayat Medical",
		Views:        views.New(),
		ErrorHandler: handlers.ErrorHandler,

		ProxyHeader:             cfg.ProxyHeader,
		EnableTrustedProxyCheck: len(cfg.TrustedProxies) > 0,
		TrustedProxies:          cfg.TrustedProxies,
		EnableIPValidation:      cfg.ProxyHeader != "",
	})

	app.Use(recover.New())
	app.Use(logger.FiberLogger())
	app.Use(middleware.Metrics())

	if cfg.EnableMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	Register(app, db, cfg, c)
	return app
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, c *cache.Cache) {
	tables := handlers.NewTables(db, store.WithCache(c, cfg.CacheTTL))
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	publicHandler := handlers.NewPublicHandler(tables, telegramService)
	authHandler := handlers.NewAuthHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(tables)

	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	// Public site
	app.Get("/", publicHandler.Home)
	app.Get("/services", publicHandler.Services)
	app.Get("/doctors", publicHandler.Doctors)
	app.Get("/medicine", publicHandler.Medicine)
	app.Get("/blog", publicHandler.Blog)
	app.Get("/blog/:slug", publicHandler.Post)
	app.Get("/contact", publicHandler.Contact)
	app.Post("/contact", contactLimiter.Handler(), publicHandler.SubmitContact)

	// Admin panel; everything below /admin except the login page needs a session
	app.Use("/admin", middleware.SessionGate(db, cfg))

	app.Get(middleware.LoginPath, authHandler.LoginPage)
	app.Post(middleware.LoginPath, loginLimiter.Handler(), authHandler.Login)
	app.Post("/admin/logout", authHandler.Logout)

	adminHandler.RegisterRoutes(app)
}
