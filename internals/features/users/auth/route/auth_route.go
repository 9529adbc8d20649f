package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
)

// Rute publik (tanpa JWT): login & refresh
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/refresh", authCtrl.Refresh)
}

// Rute di belakang AuthMiddleware
func AuthProtectedRoutes(admin fiber.Router, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)

	auth := admin.Group("/auth")
	auth.Post("/logout", authCtrl.Logout)
	auth.Get("/me", authCtrl.Me)
}
