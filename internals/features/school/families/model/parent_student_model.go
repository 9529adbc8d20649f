// file: internals/features/school/families/model/parent_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Join parent ↔ student. Upsert on (parent_id, student_id):
// re-link tidak boleh bikin baris ganda.
type ParentStudentModel struct {
	// PK
	ParentStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_student_id" json:"parent_student_id"`

	// Pair unik
	ParentStudentParentID  uuid.UUID `gorm:"type:uuid;not null;column:parent_student_parent_id;uniqueIndex:uq_parent_students_pair" json:"parent_student_parent_id"`
	ParentStudentStudentID uuid.UUID `gorm:"type:uuid;not null;column:parent_student_student_id;uniqueIndex:uq_parent_students_pair;index:idx_parent_students_student" json:"parent_student_student_id"`

	// Atribut relasi
	ParentStudentRelationship string `gorm:"size:20;not null;default:'guardian';column:parent_student_relationship" json:"parent_student_relationship"`
	ParentStudentIsPrimary    bool   `gorm:"not null;default:false;column:parent_student_is_primary" json:"parent_student_is_primary"`

	// Timestamps
	ParentStudentCreatedAt time.Time `gorm:"column:parent_student_created_at;autoCreateTime" json:"parent_student_created_at"`
	ParentStudentUpdatedAt time.Time `gorm:"column:parent_student_updated_at;autoUpdateTime" json:"parent_student_updated_at"`
}

func (ParentStudentModel) TableName() string { return "parent_students" }
