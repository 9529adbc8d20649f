// file: internals/features/school/families/controller/family_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fDTO "schoolku_backend/internals/features/school/families/dto"
	fModel "schoolku_backend/internals/features/school/families/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type FamilyController struct {
	DB *gorm.DB
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/a/families
func (h *FamilyController) Create(c *fiber.Ctx) error {
	var req fDTO.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat family")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Family berhasil dibuat", fDTO.NewFamilyResponse(m))
}

// PATCH /api/a/families/:id
func (h *FamilyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req fDTO.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findFamilyByID(c, id)
	if err != nil {
		return err
	}
	req.ApplyToModel(m)

	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui family")
	}
	return helper.Success(c, "Family diperbarui", fDTO.NewFamilyResponse(m))
}

// DELETE /api/a/families/:id (soft delete)
func (h *FamilyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.DB.WithContext(c.UserContext()).
		Delete(&fModel.FamilyModel{}, "family_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus family")
	}
	return helper.Success(c, "Family dihapus", fiber.Map{"family_id": id})
}

// GET /api/a/families/:id (termasuk daftar parent)
func (h *FamilyController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := h.findFamilyByID(c, id)
	if err != nil {
		return err
	}

	var parents []fModel.ParentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("parent_family_id = ?", id).
		Order("parent_is_primary_contact DESC, parent_created_at ASC").
		Find(&parents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil parent")
	}

	parentResp := make([]*fDTO.ParentResponse, 0, len(parents))
	for i := range parents {
		parentResp = append(parentResp, fDTO.NewParentResponse(&parents[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"family":  fDTO.NewFamilyResponse(m),
		"parents": parentResp,
	})
}

// GET /api/a/families?q=
func (h *FamilyController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&fModel.FamilyModel{})
	if name := strings.TrimSpace(c.Query("q")); name != "" {
		q = q.Where("family_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung family")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"family_name": "family_name",
		"created_at":  "family_created_at",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var rows []fModel.FamilyModel
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil family")
	}

	resp := make([]*fDTO.FamilyResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, fDTO.NewFamilyResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items": resp,
		"meta":  helper.BuildMeta(total, p),
	})
}

/* ===================== INTERNAL ===================== */

func (h *FamilyController) findFamilyByID(c *fiber.Ctx, id uuid.UUID) (*fModel.FamilyModel, error) {
	var m fModel.FamilyModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "family_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Family tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil family")
	}
	return &m, nil
}
