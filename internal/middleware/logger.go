package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logger writes one line per request, tagged with the request id.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${locals:" + RequestIDKey + "} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
