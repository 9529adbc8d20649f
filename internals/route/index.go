// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/middlewares"
	"schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan semua rute aplikasi:
//   - /api     → publik (login, refresh, health)
//   - /api/a   → admin area, wajib JWT valid
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", middlewares.DBMiddleware(db))

	BaseRoutes(api, db)
	details.AuthRoutes(api, db)

	admin := api.Group("/a", auth.AuthMiddleware(db))
	details.AuthProtectedRoutes(admin, db)
	details.UserRoutes(admin, db)
	details.SchoolRoutes(admin, db)
}
