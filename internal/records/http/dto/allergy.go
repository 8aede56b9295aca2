package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// AllergyRequest contains the parameters for creating or updating an allergy.
type AllergyRequest struct {
	MemberID string  `json:"member_id" binding:"required"`
	Allergen string  `json:"allergen" binding:"required"`
	Reaction *string `json:"reaction"`
	Severity string  `json:"severity" binding:"required"`
}

// Validate checks if the allergy request is valid.
func (r *AllergyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MemberID, validation.Required, validation.Length(36, 36)),
		validation.Field(&r.Allergen,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Reaction, validation.Length(1, 1000)),
		validation.Field(&r.Severity, validation.Required, validation.In(
			recordsDomain.SeverityMild,
			recordsDomain.SeverityModerate,
			recordsDomain.SeveritySevere,
		)),
	)
}

// ToInput converts a validated request into the use case input.
func (r *AllergyRequest) ToInput() (*recordsDomain.AllergyInput, error) {
	memberID, err := uuid.Parse(r.MemberID)
	if err != nil {
		return nil, err
	}
	return &recordsDomain.AllergyInput{
		MemberID: memberID,
		Allergen: r.Allergen,
		Reaction: r.Reaction,
		Severity: r.Severity,
	}, nil
}

// AllergyResponse represents an allergy in API responses.
type AllergyResponse struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	MemberID  string    `json:"member_id"`
	Allergen  string    `json:"allergen"`
	Reaction  *string   `json:"reaction,omitempty"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapAllergyToResponse converts a decrypted allergy view to an API response.
func MapAllergyToResponse(output *recordsDomain.AllergyOutput) AllergyResponse {
	return AllergyResponse{
		ID:        output.ID.String(),
		FamilyID:  output.FamilyID.String(),
		MemberID:  output.MemberID.String(),
		Allergen:  output.Allergen,
		Reaction:  output.Reaction,
		Severity:  output.Severity,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

// ListAllergiesResponse represents a list of allergies in API responses.
type ListAllergiesResponse struct {
	Data []AllergyResponse `json:"data"`
}

// MapAllergiesToListResponse converts decrypted allergy views to a list response.
func MapAllergiesToListResponse(outputs []*recordsDomain.AllergyOutput) ListAllergiesResponse {
	data := make([]AllergyResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapAllergyToResponse(output))
	}
	return ListAllergiesResponse{Data: data}
}
