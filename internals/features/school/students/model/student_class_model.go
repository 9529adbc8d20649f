// file: internals/features/school/students/model/student_class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status penempatan kelas (enum string)
const (
	StudentClassStatusActive   = "active"
	StudentClassStatusInactive = "inactive"
)

// Join student ↔ class. Upsert on (student_id, class_id):
// import ulang pasangan yang sama tidak boleh bikin baris aktif ganda.
type StudentClassModel struct {
	// PK
	StudentClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_class_id" json:"student_class_id"`

	// Pair unik
	StudentClassStudentID uuid.UUID `gorm:"type:uuid;not null;column:student_class_student_id;uniqueIndex:uq_student_classes_pair" json:"student_class_student_id"`
	StudentClassClassID   uuid.UUID `gorm:"type:uuid;not null;column:student_class_class_id;uniqueIndex:uq_student_classes_pair;index:idx_student_classes_class" json:"student_class_class_id"`

	// enum string: "active" | "inactive"
	StudentClassStatus string `gorm:"size:20;not null;default:'active';column:student_class_status" json:"student_class_status"`

	// Timestamps
	StudentClassCreatedAt time.Time `gorm:"column:student_class_created_at;autoCreateTime" json:"student_class_created_at"`
	StudentClassUpdatedAt time.Time `gorm:"column:student_class_updated_at;autoUpdateTime" json:"student_class_updated_at"`
}

func (StudentClassModel) TableName() string { return "student_classes" }
