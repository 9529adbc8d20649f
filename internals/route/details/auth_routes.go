// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoute "schoolku_backend/internals/features/users/auth/route"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	AuthRoute.AuthPublicRoutes(api, db)
}

func AuthProtectedRoutes(admin fiber.Router, db *gorm.DB) {
	AuthRoute.AuthProtectedRoutes(admin, db)
}
