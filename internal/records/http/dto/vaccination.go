package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// VaccinationRequest contains the parameters for creating or updating a
// vaccination.
type VaccinationRequest struct {
	MemberID string  `json:"member_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Notes    *string `json:"notes"`
	Date     *string `json:"date"`
}

// Validate checks if the vaccination request is valid.
func (r *VaccinationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MemberID, validation.Required, validation.Length(36, 36)),
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Date, validation.Date(dateLayout)),
	)
}

// ToInput converts a validated request into the use case input.
func (r *VaccinationRequest) ToInput() (*recordsDomain.VaccinationInput, error) {
	memberID, err := uuid.Parse(r.MemberID)
	if err != nil {
		return nil, err
	}
	input := &recordsDomain.VaccinationInput{
		MemberID: memberID,
		Name:     r.Name,
		Notes:    r.Notes,
	}
	if r.Date != nil {
		date, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return nil, err
		}
		input.Date = &date
	}
	return input, nil
}

// VaccinationResponse represents a vaccination in API responses.
type VaccinationResponse struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	MemberID  string    `json:"member_id"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes,omitempty"`
	Date      *string   `json:"date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapVaccinationToResponse converts a decrypted vaccination view to an API response.
func MapVaccinationToResponse(output *recordsDomain.VaccinationOutput) VaccinationResponse {
	response := VaccinationResponse{
		ID:        output.ID.String(),
		FamilyID:  output.FamilyID.String(),
		MemberID:  output.MemberID.String(),
		Name:      output.Name,
		Notes:     output.Notes,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
	if output.Date != nil {
		date := output.Date.Format(dateLayout)
		response.Date = &date
	}
	return response
}

// ListVaccinationsResponse represents a list of vaccinations in API responses.
type ListVaccinationsResponse struct {
	Data []VaccinationResponse `json:"data"`
}

// MapVaccinationsToListResponse converts decrypted vaccination views to a list response.
func MapVaccinationsToListResponse(outputs []*recordsDomain.VaccinationOutput) ListVaccinationsResponse {
	data := make([]VaccinationResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapVaccinationToResponse(output))
	}
	return ListVaccinationsResponse{Data: data}
}
