package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	uController "schoolku_backend/internals/features/users/user/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func UsersAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userCtrl := uController.NewUserController(db)

	// =========================
	// 👤 USERS (ADMIN AREA)
	// =========================

	users := admin.Group("/users",
		auth.OnlyRolesSlice(
			constants.RoleErrorAdmin("manajemen user"),
			constants.AdminOnly,
		),
	)

	users.Post("/", userCtrl.Create)
	users.Get("/", userCtrl.List)
	users.Patch("/:id", userCtrl.Update)
	users.Delete("/:id", userCtrl.Delete)
}
