// file: internals/features/school/academics/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GradeModel struct {
	// PK
	GradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`

	// Identitas
	GradeName string `gorm:"size:100;not null;uniqueIndex:uq_grades_name;column:grade_name" json:"grade_name"`
	// Nama alternatif untuk lookup import (mis. "1st Grade" ↔ "Grade 1")
	GradeAliases pq.StringArray `gorm:"type:text[];column:grade_aliases" json:"grade_aliases,omitempty"`

	// Urutan jenjang (untuk sort tampilan)
	GradeLevel int `gorm:"not null;default:0;column:grade_level" json:"grade_level"`

	// Status
	GradeIsActive bool `gorm:"not null;default:true;column:grade_is_active" json:"grade_is_active"`

	// Timestamps (soft delete)
	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"column:grade_updated_at;autoUpdateTime" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }
