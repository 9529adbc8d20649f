// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	UsersRoutes "schoolku_backend/internals/features/users/user/route"
)

func UserRoutes(admin fiber.Router, db *gorm.DB) {
	UsersRoutes.UsersAdminRoutes(admin, db)
}
