package handler

import "github.com/gofiber/fiber/v2"

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "HRMS API - go to /api/health"})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "HRMS Lite API is running",
	})
}
