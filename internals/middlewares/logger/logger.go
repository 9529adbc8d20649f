package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request masuk. Health check di-skip
// supaya log tidak banjir oleh polling monitoring
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[SCHOOLKU] ${time} | ${ip} | ${method} ${path} | ${status} | ${latency}\n",
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	})
}
