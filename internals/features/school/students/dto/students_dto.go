// file: internals/features/school/students/dto/students_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sModel "schoolku_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentFamilyID    uuid.UUID  `json:"student_family_id" validate:"required"`
	StudentGradeID     *uuid.UUID `json:"student_grade_id" validate:"omitempty"`
	StudentFirstName   string     `json:"student_first_name" validate:"required,min=1,max=100"`
	StudentLastName    string     `json:"student_last_name" validate:"required,min=1,max=100"`
	StudentCode        *string    `json:"student_code" validate:"omitempty,max=50"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth" validate:"omitempty"`
}

func (r *CreateStudentRequest) ToModel() *sModel.StudentModel {
	return &sModel.StudentModel{
		StudentFamilyID:         r.StudentFamilyID,
		StudentGradeID:          r.StudentGradeID,
		StudentFirstName:        r.StudentFirstName,
		StudentLastName:         r.StudentLastName,
		StudentCode:             r.StudentCode,
		StudentDateOfBirth:      r.StudentDateOfBirth,
		StudentEnrollmentStatus: sModel.EnrollmentStatusActive,
	}
}

type UpdateStudentRequest struct {
	StudentFamilyID    *uuid.UUID `json:"student_family_id" validate:"omitempty"`
	StudentGradeID     *uuid.UUID `json:"student_grade_id" validate:"omitempty"`
	StudentFirstName   *string    `json:"student_first_name" validate:"omitempty,min=1,max=100"`
	StudentLastName    *string    `json:"student_last_name" validate:"omitempty,min=1,max=100"`
	StudentCode        *string    `json:"student_code" validate:"omitempty,max=50"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth" validate:"omitempty"`
	StudentEnrollmentStatus *string `json:"student_enrollment_status" validate:"omitempty,oneof=active inactive graduated"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *sModel.StudentModel) {
	if r.StudentFamilyID != nil {
		m.StudentFamilyID = *r.StudentFamilyID
	}
	if r.StudentGradeID != nil {
		m.StudentGradeID = r.StudentGradeID
	}
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentCode != nil {
		m.StudentCode = r.StudentCode
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = r.StudentDateOfBirth
	}
	if r.StudentEnrollmentStatus != nil {
		m.StudentEnrollmentStatus = *r.StudentEnrollmentStatus
	}
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	StudentID          uuid.UUID  `json:"student_id"`
	StudentFamilyID    uuid.UUID  `json:"student_family_id"`
	StudentGradeID     *uuid.UUID `json:"student_grade_id,omitempty"`
	StudentFirstName   string     `json:"student_first_name"`
	StudentLastName    string     `json:"student_last_name"`
	StudentCode        *string    `json:"student_code,omitempty"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth,omitempty"`
	StudentEnrollmentStatus string `json:"student_enrollment_status"`
	StudentCreatedAt   time.Time  `json:"student_created_at"`
}

func NewStudentResponse(m *sModel.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:               m.StudentID,
		StudentFamilyID:         m.StudentFamilyID,
		StudentGradeID:          m.StudentGradeID,
		StudentFirstName:        m.StudentFirstName,
		StudentLastName:         m.StudentLastName,
		StudentCode:             m.StudentCode,
		StudentDateOfBirth:      m.StudentDateOfBirth,
		StudentEnrollmentStatus: m.StudentEnrollmentStatus,
		StudentCreatedAt:        m.StudentCreatedAt,
	}
}
