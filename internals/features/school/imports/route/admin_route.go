package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	iController "schoolku_backend/internals/features/school/imports/controller"
	"schoolku_backend/internals/middlewares"
	"schoolku_backend/internals/middlewares/auth"
)

func ImportsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	importCtrl := iController.NewImportController(db)

	// =========================
	// 📥 BULK IMPORT (ADMIN AREA)
	// =========================

	imports := admin.Group("/imports",
		auth.OnlyRolesSlice(
			constants.RoleErrorAdmin("bulk import"),
			constants.AdminAndAbove,
		),
		middlewares.ImportRateLimiter(),
	)

	imports.Post("/validate", importCtrl.ValidateImport) // fase 1: read-only
	imports.Post("/commit", importCtrl.CommitImport)     // fase 2: tulis data
	imports.Post("/upload", importCtrl.UploadXlsx)       // xlsx → rows + validasi
	imports.Get("/history", importCtrl.ListBatches)
}
