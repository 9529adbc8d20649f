package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	fController "schoolku_backend/internals/features/school/families/controller"
	"schoolku_backend/internals/middlewares/auth"
)

func FamiliesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	familyCtrl := fController.NewFamilyController(db)
	parentCtrl := fController.NewParentController(db)

	// =========================
	// 👨‍👩‍👧 FAMILIES & PARENTS (ADMIN AREA)
	// =========================

	staffOnly := auth.OnlyRolesSlice(
		constants.RoleErrorStaff("data keluarga"),
		constants.StaffAndAbove,
	)

	families := admin.Group("/families", staffOnly)
	families.Post("/", familyCtrl.Create)
	families.Get("/", familyCtrl.List)
	families.Get("/:id", familyCtrl.Detail)
	families.Patch("/:id", familyCtrl.Update)
	families.Delete("/:id", familyCtrl.Delete)

	parents := admin.Group("/parents", staffOnly)
	parents.Post("/", parentCtrl.Create)
	parents.Get("/:id", parentCtrl.Detail)
	parents.Delete("/:id", parentCtrl.Delete)
	parents.Post("/:id/link-student", parentCtrl.LinkStudent)
}
