package routes

import (
	"hrms-lite-backend/config"
	"hrms-lite-backend/internal/handler"
	"hrms-lite-backend/internal/middleware"
	"hrms-lite-backend/internal/storage"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// NewRouter builds the fiber app with global middleware and every route
// group wired to db.
func NewRouter(cfg config.Config, db *storage.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "HRMS Lite API",
		// Handlers keep query/body strings after the request returns
		Immutable:             true,
		JSONEncoder:           sonic.ConfigStd.Marshal,
		JSONDecoder:           sonic.ConfigStd.Unmarshal,
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middleware Global
	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.Cors())
	app.Use(middleware.Compress())
	app.Use(middleware.RateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))

	SetupHealthRoutes(app)
	SetupEmployeeRoutes(app, db)
	SetupAttendanceRoutes(app, db)
	SetupDashboardRoutes(app, db)

	return app
}
