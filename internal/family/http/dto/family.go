// Package dto provides data transfer objects for family HTTP request and
// response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// CreateFamilyRequest contains the parameters for creating a family.
type CreateFamilyRequest struct {
	Name string `json:"name" binding:"required"`
}

// Validate checks if the create family request is valid.
func (r *CreateFamilyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}

// RenameFamilyRequest contains the parameters for renaming a family.
type RenameFamilyRequest struct {
	Name string `json:"name" binding:"required"`
}

// Validate checks if the rename family request is valid.
func (r *RenameFamilyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}

// FamilyResponse represents a family in API responses.
type FamilyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapFamilyToResponse converts a decrypted family view to an API response.
func MapFamilyToResponse(output *familyDomain.FamilyOutput) FamilyResponse {
	return FamilyResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}
