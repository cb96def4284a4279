package routes

import (
	"hrms-lite-backend/internal/handler"
	"hrms-lite-backend/internal/repository"
	"hrms-lite-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, db *storage.DB) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	api := app.Group("/api/dashboard")
	api.Get("/stats", hdl.GetStats)
}
