// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authDTO "schoolku_backend/internals/features/users/auth/dto"
	uDTO "schoolku_backend/internals/features/users/user/dto"
	uModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /api/a/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "Username atau email sudah terpakai")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User dibuat", authDTO.NewUserResponse(m))
}

// GET /api/a/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctrl.DB.Model(&uModel.UserModel{})
	if q := c.Query("q"); q != "" {
		tx = tx.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []uModel.UserModel
	if err := tx.Order("user_created_at DESC").
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	out := make([]*authDTO.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, authDTO.NewUserResponse(&users[i]))
	}
	return helper.Success(c, "Daftar user", fiber.Map{
		"data": out,
		"meta": helper.BuildMeta(total, params),
	})
}

// PATCH /api/a/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var req uDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m uModel.UserModel
	if err := ctrl.DB.First(&m, "user_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err := req.ApplyToModel(&m); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}
	return helper.Success(c, "User diperbarui", authDTO.NewUserResponse(&m))
}

// DELETE /api/a/users/:id (soft delete)
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}
	if err := ctrl.DB.Delete(&uModel.UserModel{}, "user_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helper.Success(c, "User dihapus", nil)
}
