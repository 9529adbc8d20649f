// file: internals/features/school/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	// Relasi wajib
	ClassGradeID uuid.UUID `gorm:"type:uuid;not null;column:class_grade_id;index:idx_classes_grade" json:"class_grade_id"`

	// Identitas
	ClassName string `gorm:"size:100;not null;column:class_name;index:idx_classes_name" json:"class_name"`

	// Opsional
	ClassRoom            *string `gorm:"size:50;column:class_room" json:"class_room,omitempty"`
	ClassHomeroomTeacher *string `gorm:"size:100;column:class_homeroom_teacher" json:"class_homeroom_teacher,omitempty"`
	ClassCapacity        *int    `gorm:"column:class_capacity" json:"class_capacity,omitempty"`

	// Status
	ClassIsActive bool `gorm:"not null;default:true;column:class_is_active" json:"class_is_active"`

	// Timestamps (soft delete)
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
