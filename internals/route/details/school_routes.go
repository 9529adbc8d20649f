// internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	// ====== School features ======
	AcademicsRoutes "schoolku_backend/internals/features/school/academics/route"
	FamiliesRoutes "schoolku_backend/internals/features/school/families/route"
	ImportsRoutes "schoolku_backend/internals/features/school/imports/route"
	StudentsRoutes "schoolku_backend/internals/features/school/students/route"
)

func SchoolRoutes(admin fiber.Router, db *gorm.DB) {
	AcademicsRoutes.AcademicsAdminRoutes(admin, db)
	FamiliesRoutes.FamiliesAdminRoutes(admin, db)
	StudentsRoutes.StudentsAdminRoutes(admin, db)
	ImportsRoutes.ImportsAdminRoutes(admin, db)
}
