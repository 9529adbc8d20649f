// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status enrollment (enum string)
const (
	EnrollmentStatusActive   = "active"
	EnrollmentStatusInactive = "inactive"
	EnrollmentStatusGraduated = "graduated"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Relasi wajib
	StudentFamilyID uuid.UUID `gorm:"type:uuid;not null;column:student_family_id;index:idx_students_family" json:"student_family_id"`

	// Relasi opsional
	StudentGradeID *uuid.UUID `gorm:"type:uuid;column:student_grade_id;index:idx_students_grade" json:"student_grade_id,omitempty"`

	// Identitas
	StudentFirstName string `gorm:"size:100;not null;column:student_first_name;index:idx_students_first_name" json:"student_first_name"`
	StudentLastName  string `gorm:"size:100;not null;column:student_last_name;index:idx_students_last_name" json:"student_last_name"`

	// Nomor induk eksternal (dari spreadsheet / sistem lama)
	StudentCode *string `gorm:"size:50;column:student_code;index:idx_students_code" json:"student_code,omitempty"`

	StudentDateOfBirth *time.Time `gorm:"type:date;column:student_date_of_birth" json:"student_date_of_birth,omitempty"`

	// enum string: "active" | "inactive" | "graduated"
	StudentEnrollmentStatus string `gorm:"size:20;not null;default:'active';column:student_enrollment_status" json:"student_enrollment_status"`

	// Timestamps (soft delete)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime;index:idx_students_created_at,sort:desc" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
