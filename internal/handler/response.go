package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// errorResponse writes the {"detail": ...} body the dashboard front-end reads.
func errorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"detail": message})
}

// ErrorHandler renders errors that escape a handler (unknown routes, panics
// caught by the recover middleware, limiter rejections) in the same shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return errorResponse(c, fe.Code, fe.Message)
	}

	log.Errorf("unhandled error on %s %s: %v", c.Method(), c.OriginalURL(), err)
	return errorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
}
