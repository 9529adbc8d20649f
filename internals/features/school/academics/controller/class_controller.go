// file: internals/features/school/academics/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aDTO "schoolku_backend/internals/features/school/academics/dto"
	aModel "schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Grade harus ada
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&aModel.GradeModel{}).
		Where("grade_id = ?", req.ClassGradeID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek grade")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Grade tidak ditemukan")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat class")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class berhasil dibuat", aDTO.NewClassResponse(m))
}

// PATCH /api/a/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findClassByID(c, id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui class")
	}
	return helper.Success(c, "Class diperbarui", aDTO.NewClassResponse(m))
}

// DELETE /api/a/classes/:id (soft delete)
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Delete(&aModel.ClassModel{}, "class_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus class")
	}
	return helper.Success(c, "Class dihapus", fiber.Map{"class_id": id})
}

// GET /api/a/classes/:id
func (h *ClassController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findClassByID(c, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", aDTO.NewClassResponse(m))
}

// GET /api/a/classes?grade_id=&q=
func (h *ClassController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "class_name", "asc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&aModel.ClassModel{})
	if gid := strings.TrimSpace(c.Query("grade_id")); gid != "" {
		gradeID, err := uuid.Parse(gid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "grade_id tidak valid")
		}
		q = q.Where("class_grade_id = ?", gradeID)
	}
	if name := strings.TrimSpace(c.Query("q")); name != "" {
		q = q.Where("class_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung class")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"class_name": "class_name",
		"created_at": "class_created_at",
	}, "class_name")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var rows []aModel.ClassModel
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil class")
	}

	resp := make([]*aDTO.ClassResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, aDTO.NewClassResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* ===================== INTERNAL ===================== */

func (h *ClassController) findClassByID(c *fiber.Ctx, id uuid.UUID) (*aModel.ClassModel, error) {
	var m aModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil class")
	}
	return &m, nil
}
