// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	sDTO "schoolku_backend/internals/features/school/students/dto"
	sModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student berhasil dibuat", sDTO.NewStudentResponse(m))
}

// PATCH /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findStudentByID(c, id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui student")
	}
	return helper.Success(c, "Student diperbarui", sDTO.NewStudentResponse(m))
}

// DELETE /api/a/students/:id (soft delete)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Delete(&sModel.StudentModel{}, "student_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus student")
	}
	return helper.Success(c, "Student dihapus", fiber.Map{"student_id": id})
}

// GET /api/a/students/:id
func (h *StudentController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findStudentByID(c, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", sDTO.NewStudentResponse(m))
}

// GET /api/a/students?q=&grade_id=&family_id=
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&sModel.StudentModel{})
	if name := strings.TrimSpace(c.Query("q")); name != "" {
		q = q.Where("student_first_name ILIKE ? OR student_last_name ILIKE ?", "%"+name+"%", "%"+name+"%")
	}
	if gid := strings.TrimSpace(c.Query("grade_id")); gid != "" {
		gradeID, err := uuid.Parse(gid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "grade_id tidak valid")
		}
		q = q.Where("student_grade_id = ?", gradeID)
	}
	if fid := strings.TrimSpace(c.Query("family_id")); fid != "" {
		familyID, err := uuid.Parse(fid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "family_id tidak valid")
		}
		q = q.Where("student_family_id = ?", familyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung student")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"last_name":  "student_last_name",
		"first_name": "student_first_name",
		"created_at": "student_created_at",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var rows []sModel.StudentModel
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil student")
	}

	resp := make([]*sDTO.StudentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, sDTO.NewStudentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildMeta(total, p),
	})
}

// POST /api/a/students/:id/assign-class
// Upsert penempatan kelas (pair unik student+class, status di-set active)
func (h *StudentController) AssignClass(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req struct {
		ClassID uuid.UUID `json:"class_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	assignment := sModel.StudentClassModel{
		StudentClassStudentID: studentID,
		StudentClassClassID:   req.ClassID,
		StudentClassStatus:    sModel.StudentClassStatusActive,
	}
	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_class_student_id"},
				{Name: "student_class_class_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"student_class_status": sModel.StudentClassStatusActive,
			}),
		}).
		Create(&assignment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menempatkan student ke class")
	}

	return helper.Success(c, "Student ditempatkan ke class", assignment)
}

/* ===================== INTERNAL ===================== */

func (h *StudentController) findStudentByID(c *fiber.Ctx, id uuid.UUID) (*sModel.StudentModel, error) {
	var m sModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil student")
	}
	return &m, nil
}
