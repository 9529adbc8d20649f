// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"golang.org/x/crypto/bcrypt"

	uModel "schoolku_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=user staff teacher admin owner"`
}

func (r CreateUserRequest) ToModel() (*uModel.UserModel, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &uModel.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.Email,
		UserPassword: string(hashed),
		UserRole:     r.Role,
		UserIsActive: true,
	}, nil
}

type UpdateUserRequest struct {
	Role     *string `json:"role" validate:"omitempty,oneof=user staff teacher admin owner"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

func (r UpdateUserRequest) ApplyToModel(m *uModel.UserModel) error {
	if r.Role != nil {
		m.UserRole = *r.Role
	}
	if r.IsActive != nil {
		m.UserIsActive = *r.IsActive
	}
	if r.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*r.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		m.UserPassword = string(hashed)
	}
	return nil
}
