// file: internals/features/school/families/model/family_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyModel struct {
	// PK
	FamilyID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:family_id" json:"family_id"`

	// Identitas
	FamilyName string `gorm:"size:100;not null;column:family_name;index:idx_families_name" json:"family_name"`

	// Kontak & alamat
	FamilyAddress *string `gorm:"size:200;column:family_address" json:"family_address,omitempty"`
	FamilyCity    *string `gorm:"size:100;column:family_city" json:"family_city,omitempty"`
	FamilyState   *string `gorm:"size:50;column:family_state" json:"family_state,omitempty"`
	FamilyZipCode *string `gorm:"size:20;column:family_zip_code" json:"family_zip_code,omitempty"`
	FamilyPhone   *string `gorm:"size:30;column:family_phone" json:"family_phone,omitempty"`
	FamilyEmail   *string `gorm:"size:100;column:family_email" json:"family_email,omitempty"`

	// Timestamps (soft delete)
	FamilyCreatedAt time.Time      `gorm:"column:family_created_at;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt time.Time      `gorm:"column:family_updated_at;autoUpdateTime" json:"family_updated_at"`
	FamilyDeletedAt gorm.DeletedAt `gorm:"column:family_deleted_at;index" json:"family_deleted_at,omitempty"`
}

func (FamilyModel) TableName() string { return "families" }
