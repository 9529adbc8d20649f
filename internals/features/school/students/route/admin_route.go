package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	sController "schoolku_backend/internals/features/school/students/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func StudentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	studentCtrl := sController.NewStudentController(db)

	// =========================
	// 🧒 STUDENTS (ADMIN AREA)
	// =========================

	students := admin.Group("/students",
		auth.OnlyRolesSlice(
			constants.RoleErrorStaff("data student"),
			constants.StaffAndAbove,
		),
	)

	students.Post("/", studentCtrl.Create)
	students.Get("/", studentCtrl.List)
	students.Get("/:id", studentCtrl.Detail)
	students.Patch("/:id", studentCtrl.Update)
	students.Delete("/:id", studentCtrl.Delete)
	students.Post("/:id/assign-class", studentCtrl.AssignClass)
}
