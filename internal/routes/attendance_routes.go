package routes

import (
	"hrms-lite-backend/internal/handler"
	"hrms-lite-backend/internal/repository"
	"hrms-lite-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App, db *storage.DB) {
	repo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(repo)

	api := app.Group("/api/attendance")
	api.Post("/", hdl.Mark)
	api.Get("/", hdl.GetAll)
	api.Get("/:employee_id", hdl.GetHistory)
}
