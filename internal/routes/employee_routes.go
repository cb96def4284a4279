package routes

import (
	"hrms-lite-backend/internal/handler"
	"hrms-lite-backend/internal/repository"
	"hrms-lite-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, db *storage.DB) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(repo)

	api := app.Group("/api/employees")
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Delete("/:id", hdl.Delete)
}
