// file: internals/features/school/academics/dto/academics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	aModel "schoolku_backend/internals/features/school/academics/model"
)

/* ===================== REQUESTS ===================== */

type CreateGradeRequest struct {
	GradeName    string   `json:"grade_name" validate:"required,min=1,max=100"`
	GradeAliases []string `json:"grade_aliases" validate:"omitempty,dive,min=1,max=100"`
	GradeLevel   int      `json:"grade_level" validate:"omitempty,gte=0"`
}

func (r *CreateGradeRequest) ToModel() *aModel.GradeModel {
	return &aModel.GradeModel{
		GradeName:    r.GradeName,
		GradeAliases: pq.StringArray(r.GradeAliases),
		GradeLevel:   r.GradeLevel,
		GradeIsActive: true,
	}
}

type UpdateGradeRequest struct {
	GradeName    *string  `json:"grade_name" validate:"omitempty,min=1,max=100"`
	GradeAliases []string `json:"grade_aliases" validate:"omitempty,dive,min=1,max=100"`
	GradeLevel   *int     `json:"grade_level" validate:"omitempty,gte=0"`
	GradeIsActive *bool   `json:"grade_is_active" validate:"omitempty"`
}

func (r *UpdateGradeRequest) ApplyToModel(m *aModel.GradeModel) {
	if r.GradeName != nil {
		m.GradeName = *r.GradeName
	}
	if r.GradeAliases != nil {
		m.GradeAliases = pq.StringArray(r.GradeAliases)
	}
	if r.GradeLevel != nil {
		m.GradeLevel = *r.GradeLevel
	}
	if r.GradeIsActive != nil {
		m.GradeIsActive = *r.GradeIsActive
	}
}

type CreateClassRequest struct {
	ClassGradeID         uuid.UUID `json:"class_grade_id" validate:"required"`
	ClassName            string    `json:"class_name" validate:"required,min=1,max=100"`
	ClassRoom            *string   `json:"class_room" validate:"omitempty,max=50"`
	ClassHomeroomTeacher *string   `json:"class_homeroom_teacher" validate:"omitempty,max=100"`
	ClassCapacity        *int      `json:"class_capacity" validate:"omitempty,gte=1"`
}

func (r *CreateClassRequest) ToModel() *aModel.ClassModel {
	return &aModel.ClassModel{
		ClassGradeID:         r.ClassGradeID,
		ClassName:            r.ClassName,
		ClassRoom:            r.ClassRoom,
		ClassHomeroomTeacher: r.ClassHomeroomTeacher,
		ClassCapacity:        r.ClassCapacity,
		ClassIsActive:        true,
	}
}

type UpdateClassRequest struct {
	ClassGradeID         *uuid.UUID `json:"class_grade_id" validate:"omitempty"`
	ClassName            *string    `json:"class_name" validate:"omitempty,min=1,max=100"`
	ClassRoom            *string    `json:"class_room" validate:"omitempty,max=50"`
	ClassHomeroomTeacher *string    `json:"class_homeroom_teacher" validate:"omitempty,max=100"`
	ClassCapacity        *int       `json:"class_capacity" validate:"omitempty,gte=1"`
	ClassIsActive        *bool      `json:"class_is_active" validate:"omitempty"`
}

func (r *UpdateClassRequest) ApplyToModel(m *aModel.ClassModel) {
	if r.ClassGradeID != nil {
		m.ClassGradeID = *r.ClassGradeID
	}
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassRoom != nil {
		m.ClassRoom = r.ClassRoom
	}
	if r.ClassHomeroomTeacher != nil {
		m.ClassHomeroomTeacher = r.ClassHomeroomTeacher
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = r.ClassCapacity
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}

/* ===================== RESPONSES ===================== */

type GradeResponse struct {
	GradeID       uuid.UUID `json:"grade_id"`
	GradeName     string    `json:"grade_name"`
	GradeAliases  []string  `json:"grade_aliases,omitempty"`
	GradeLevel    int       `json:"grade_level"`
	GradeIsActive bool      `json:"grade_is_active"`
	GradeCreatedAt time.Time `json:"grade_created_at"`
}

func NewGradeResponse(m *aModel.GradeModel) *GradeResponse {
	return &GradeResponse{
		GradeID:        m.GradeID,
		GradeName:      m.GradeName,
		GradeAliases:   []string(m.GradeAliases),
		GradeLevel:     m.GradeLevel,
		GradeIsActive:  m.GradeIsActive,
		GradeCreatedAt: m.GradeCreatedAt,
	}
}

type ClassResponse struct {
	ClassID              uuid.UUID `json:"class_id"`
	ClassGradeID         uuid.UUID `json:"class_grade_id"`
	ClassName            string    `json:"class_name"`
	ClassRoom            *string   `json:"class_room,omitempty"`
	ClassHomeroomTeacher *string   `json:"class_homeroom_teacher,omitempty"`
	ClassCapacity        *int      `json:"class_capacity,omitempty"`
	ClassIsActive        bool      `json:"class_is_active"`
	ClassCreatedAt       time.Time `json:"class_created_at"`
}

func NewClassResponse(m *aModel.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:              m.ClassID,
		ClassGradeID:         m.ClassGradeID,
		ClassName:            m.ClassName,
		ClassRoom:            m.ClassRoom,
		ClassHomeroomTeacher: m.ClassHomeroomTeacher,
		ClassCapacity:        m.ClassCapacity,
		ClassIsActive:        m.ClassIsActive,
		ClassCreatedAt:       m.ClassCreatedAt,
	}
}
