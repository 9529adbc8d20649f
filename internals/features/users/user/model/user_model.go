// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserName  string `json:"user_name" gorm:"column:user_name;size:50;not null;uniqueIndex:uq_users_user_name"`
	UserEmail string `json:"user_email" gorm:"column:user_email;size:255;not null;uniqueIndex:uq_users_user_email"`

	// hash bcrypt, tidak pernah ikut keluar di response
	UserPassword string `json:"-" gorm:"column:user_password;size:100;not null"`

	// enum string: lihat internals/constants/roles.go
	UserRole     string `json:"user_role" gorm:"column:user_role;size:20;not null;default:'user'"`
	UserIsActive bool   `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
