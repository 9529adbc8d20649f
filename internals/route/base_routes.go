// internals/route/base_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
)

func BaseRoutes(api fiber.Router, db *gorm.DB) {
	// health yang ikut ping DB (yang di "/health" root hanya cek proses)
	api.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "DB handle tidak tersedia")
		}
		if err := sqlDB.Ping(); err != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "DB tidak merespons")
		}
		return helper.Success(c, "OK", fiber.Map{"db": "up"})
	})
}
