package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	aController "schoolku_backend/internals/features/school/academics/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	gradeCtrl := aController.NewGradeController(db)
	classCtrl := aController.NewClassController(db)

	// =========================
	// 🎓 GRADES & CLASSES (ADMIN AREA)
	// =========================

	staffOnly := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("data akademik"),
		constants.StaffAndAbove,
	)

	grades := admin.Group("/grades", staffOnly)
	grades.Post("/", gradeCtrl.Create)
	grades.Get("/", gradeCtrl.List)
	grades.Get("/:id", gradeCtrl.Detail)
	grades.Patch("/:id", gradeCtrl.Update)
	grades.Delete("/:id", gradeCtrl.Delete)

	classes := admin.Group("/classes", staffOnly)
	classes.Post("/", classCtrl.Create)
	classes.Get("/", classCtrl.List)
	classes.Get("/:id", classCtrl.Detail)
	classes.Patch("/:id", classCtrl.Update)
	classes.Delete("/:id", classCtrl.Delete)
}
