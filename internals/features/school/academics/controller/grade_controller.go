// file: internals/features/school/academics/controller/grade_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aDTO "schoolku_backend/internals/features/school/academics/dto"
	aModel "schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/grades
func (h *GradeController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama grade sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat grade")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade berhasil dibuat", aDTO.NewGradeResponse(m))
}

// PATCH /api/a/grades/:id
func (h *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aDTO.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findGradeByID(c, id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui grade")
	}
	return helper.Success(c, "Grade diperbarui", aDTO.NewGradeResponse(m))
}

// DELETE /api/a/grades/:id (soft delete)
func (h *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Delete(&aModel.GradeModel{}, "grade_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus grade")
	}
	return helper.Success(c, "Grade dihapus", fiber.Map{"grade_id": id})
}

// GET /api/a/grades/:id
func (h *GradeController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findGradeByID(c, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", aDTO.NewGradeResponse(m))
}

// GET /api/a/grades
func (h *GradeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "grade_level", "asc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&aModel.GradeModel{})
	if name := strings.TrimSpace(c.Query("q")); name != "" {
		q = q.Where("grade_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung grade")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"grade_level": "grade_level",
		"grade_name":  "grade_name",
		"created_at":  "grade_created_at",
	}, "grade_level")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var rows []aModel.GradeModel
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil grade")
	}

	resp := make([]*aDTO.GradeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, aDTO.NewGradeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* ===================== INTERNAL ===================== */

func (h *GradeController) findGradeByID(c *fiber.Ctx, id uuid.UUID) (*aModel.GradeModel, error) {
	var m aModel.GradeModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grade tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil grade")
	}
	return &m, nil
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}
