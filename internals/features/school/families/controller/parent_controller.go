// file: internals/features/school/families/controller/parent_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	fDTO "schoolku_backend/internals/features/school/families/dto"
	fModel "schoolku_backend/internals/features/school/families/model"
	helper "schoolku_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/parents
func (h *ParentController) Create(c *fiber.Ctx) error {
	var req fDTO.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Family harus ada
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&fModel.FamilyModel{}).
		Where("family_id = ?", req.ParentFamilyID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek family")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Family tidak ditemukan")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat parent")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Parent berhasil dibuat", fDTO.NewParentResponse(m))
}

// DELETE /api/a/parents/:id (soft delete)
func (h *ParentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Delete(&fModel.ParentModel{}, "parent_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus parent")
	}
	return helper.Success(c, "Parent dihapus", fiber.Map{"parent_id": id})
}

// GET /api/a/parents/:id
func (h *ParentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	var m fModel.ParentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil parent")
	}
	return helper.Success(c, "OK", fDTO.NewParentResponse(&m))
}

// POST /api/a/parents/:id/link-student
// Upsert relasi parent ↔ student (pair unik, tidak boleh dobel)
func (h *ParentController) LinkStudent(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req struct {
		StudentID    uuid.UUID `json:"student_id" validate:"required"`
		Relationship string    `json:"relationship" validate:"omitempty,oneof=father mother guardian"`
		IsPrimary    bool      `json:"is_primary"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Relationship == "" {
		req.Relationship = fModel.ParentRelationshipGuardian
	}

	link := fModel.ParentStudentModel{
		ParentStudentParentID:     parentID,
		ParentStudentStudentID:    req.StudentID,
		ParentStudentRelationship: req.Relationship,
		ParentStudentIsPrimary:    req.IsPrimary,
	}
	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "parent_student_parent_id"},
				{Name: "parent_student_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"parent_student_relationship",
				"parent_student_is_primary",
			}),
		}).
		Create(&link).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menautkan parent ke student")
	}

	return helper.Success(c, "Parent tertaut ke student", link)
}
