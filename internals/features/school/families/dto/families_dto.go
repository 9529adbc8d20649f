// file: internals/features/school/families/dto/families_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	fModel "schoolku_backend/internals/features/school/families/model"
)

/* ===================== REQUESTS ===================== */

type CreateFamilyRequest struct {
	FamilyName    string  `json:"family_name" validate:"required,min=1,max=100"`
	FamilyAddress *string `json:"family_address" validate:"omitempty,max=200"`
	FamilyCity    *string `json:"family_city" validate:"omitempty,max=100"`
	FamilyState   *string `json:"family_state" validate:"omitempty,max=50"`
	FamilyZipCode *string `json:"family_zip_code" validate:"omitempty,max=20"`
	FamilyPhone   *string `json:"family_phone" validate:"omitempty,max=30"`
	FamilyEmail   *string `json:"family_email" validate:"omitempty,email,max=100"`
}

func (r *CreateFamilyRequest) ToModel() *fModel.FamilyModel {
	return &fModel.FamilyModel{
		FamilyName:    r.FamilyName,
		FamilyAddress: r.FamilyAddress,
		FamilyCity:    r.FamilyCity,
		FamilyState:   r.FamilyState,
		FamilyZipCode: r.FamilyZipCode,
		FamilyPhone:   r.FamilyPhone,
		FamilyEmail:   r.FamilyEmail,
	}
}

type UpdateFamilyRequest struct {
	FamilyName    *string `json:"family_name" validate:"omitempty,min=1,max=100"`
	FamilyAddress *string `json:"family_address" validate:"omitempty,max=200"`
	FamilyCity    *string `json:"family_city" validate:"omitempty,max=100"`
	FamilyState   *string `json:"family_state" validate:"omitempty,max=50"`
	FamilyZipCode *string `json:"family_zip_code" validate:"omitempty,max=20"`
	FamilyPhone   *string `json:"family_phone" validate:"omitempty,max=30"`
	FamilyEmail   *string `json:"family_email" validate:"omitempty,email,max=100"`
}

func (r *UpdateFamilyRequest) ApplyToModel(m *fModel.FamilyModel) {
	if r.FamilyName != nil {
		m.FamilyName = *r.FamilyName
	}
	if r.FamilyAddress != nil {
		m.FamilyAddress = r.FamilyAddress
	}
	if r.FamilyCity != nil {
		m.FamilyCity = r.FamilyCity
	}
	if r.FamilyState != nil {
		m.FamilyState = r.FamilyState
	}
	if r.FamilyZipCode != nil {
		m.FamilyZipCode = r.FamilyZipCode
	}
	if r.FamilyPhone != nil {
		m.FamilyPhone = r.FamilyPhone
	}
	if r.FamilyEmail != nil {
		m.FamilyEmail = r.FamilyEmail
	}
}

type CreateParentRequest struct {
	ParentFamilyID     uuid.UUID `json:"parent_family_id" validate:"required"`
	ParentFirstName    string    `json:"parent_first_name" validate:"required,min=1,max=100"`
	ParentLastName     string    `json:"parent_last_name" validate:"omitempty,max=100"`
	ParentRelationship string    `json:"parent_relationship" validate:"omitempty,oneof=father mother guardian"`
	ParentPhone        *string   `json:"parent_phone" validate:"omitempty,max=30"`
	ParentEmail        *string   `json:"parent_email" validate:"omitempty,email,max=100"`
	ParentIsPrimaryContact *bool `json:"parent_is_primary_contact" validate:"omitempty"`
}

func (r *CreateParentRequest) ToModel() *fModel.ParentModel {
	m := &fModel.ParentModel{
		ParentFamilyID:  r.ParentFamilyID,
		ParentFirstName: r.ParentFirstName,
		ParentLastName:  r.ParentLastName,
		ParentRelationship: fModel.ParentRelationshipGuardian,
		ParentPhone:     r.ParentPhone,
		ParentEmail:     r.ParentEmail,
		ParentCanPickup: true,
		ParentEmergencyContact: true,
	}
	if r.ParentRelationship != "" {
		m.ParentRelationship = r.ParentRelationship
	}
	if r.ParentIsPrimaryContact != nil {
		m.ParentIsPrimaryContact = *r.ParentIsPrimaryContact
	}
	return m
}

/* ===================== RESPONSES ===================== */

type FamilyResponse struct {
	FamilyID      uuid.UUID `json:"family_id"`
	FamilyName    string    `json:"family_name"`
	FamilyAddress *string   `json:"family_address,omitempty"`
	FamilyCity    *string   `json:"family_city,omitempty"`
	FamilyState   *string   `json:"family_state,omitempty"`
	FamilyZipCode *string   `json:"family_zip_code,omitempty"`
	FamilyPhone   *string   `json:"family_phone,omitempty"`
	FamilyEmail   *string   `json:"family_email,omitempty"`
	FamilyCreatedAt time.Time `json:"family_created_at"`
}

func NewFamilyResponse(m *fModel.FamilyModel) *FamilyResponse {
	return &FamilyResponse{
		FamilyID:        m.FamilyID,
		FamilyName:      m.FamilyName,
		FamilyAddress:   m.FamilyAddress,
		FamilyCity:      m.FamilyCity,
		FamilyState:     m.FamilyState,
		FamilyZipCode:   m.FamilyZipCode,
		FamilyPhone:     m.FamilyPhone,
		FamilyEmail:     m.FamilyEmail,
		FamilyCreatedAt: m.FamilyCreatedAt,
	}
}

type ParentResponse struct {
	ParentID           uuid.UUID `json:"parent_id"`
	ParentFamilyID     uuid.UUID `json:"parent_family_id"`
	ParentFirstName    string    `json:"parent_first_name"`
	ParentLastName     string    `json:"parent_last_name"`
	ParentRelationship string    `json:"parent_relationship"`
	ParentPhone        *string   `json:"parent_phone,omitempty"`
	ParentEmail        *string   `json:"parent_email,omitempty"`
	ParentIsPrimaryContact bool  `json:"parent_is_primary_contact"`
	ParentCanPickup        bool  `json:"parent_can_pickup"`
	ParentEmergencyContact bool  `json:"parent_emergency_contact"`
}

func NewParentResponse(m *fModel.ParentModel) *ParentResponse {
	return &ParentResponse{
		ParentID:           m.ParentID,
		ParentFamilyID:     m.ParentFamilyID,
		ParentFirstName:    m.ParentFirstName,
		ParentLastName:     m.ParentLastName,
		ParentRelationship: m.ParentRelationship,
		ParentPhone:        m.ParentPhone,
		ParentEmail:        m.ParentEmail,
		ParentIsPrimaryContact: m.ParentIsPrimaryContact,
		ParentCanPickup:        m.ParentCanPickup,
		ParentEmergencyContact: m.ParentEmergencyContact,
	}
}
