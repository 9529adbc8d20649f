// file: internals/features/school/families/model/parent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Relationship label untuk parent (enum string)
const (
	ParentRelationshipFather   = "father"
	ParentRelationshipMother   = "mother"
	ParentRelationshipGuardian = "guardian"
)

type ParentModel struct {
	// PK
	ParentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`

	// Relasi wajib
	ParentFamilyID uuid.UUID `gorm:"type:uuid;not null;column:parent_family_id;index:idx_parents_family" json:"parent_family_id"`

	// Identitas
	ParentFirstName string `gorm:"size:100;not null;column:parent_first_name" json:"parent_first_name"`
	ParentLastName  string `gorm:"size:100;column:parent_last_name" json:"parent_last_name"`

	// enum string: "father" | "mother" | "guardian"
	ParentRelationship string `gorm:"size:20;not null;default:'guardian';column:parent_relationship" json:"parent_relationship"`

	// Kontak
	ParentPhone *string `gorm:"size:30;column:parent_phone" json:"parent_phone,omitempty"`
	ParentEmail *string `gorm:"size:100;column:parent_email" json:"parent_email,omitempty"`

	// Flags
	ParentIsPrimaryContact  bool `gorm:"not null;default:false;column:parent_is_primary_contact" json:"parent_is_primary_contact"`
	ParentCanPickup         bool `gorm:"not null;default:true;column:parent_can_pickup" json:"parent_can_pickup"`
	ParentEmergencyContact  bool `gorm:"not null;default:true;column:parent_emergency_contact" json:"parent_emergency_contact"`

	// Timestamps (soft delete)
	ParentCreatedAt time.Time      `gorm:"column:parent_created_at;autoCreateTime" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"column:parent_updated_at;autoUpdateTime" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"parent_deleted_at,omitempty"`
}

func (ParentModel) TableName() string { return "parents" }
