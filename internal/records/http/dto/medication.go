package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// MedicationRequest contains the parameters for creating or updating a
// medication.
type MedicationRequest struct {
	MemberID  string  `json:"member_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// Validate checks if the medication request is valid.
func (r *MedicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MemberID, validation.Required, validation.Length(36, 36)),
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Dosage, validation.Length(1, 100)),
		validation.Field(&r.Frequency, validation.Length(1, 100)),
		validation.Field(&r.StartDate, validation.Date(dateLayout)),
		validation.Field(&r.EndDate, validation.Date(dateLayout)),
	)
}

// ToInput converts a validated request into the use case input.
func (r *MedicationRequest) ToInput() (*recordsDomain.MedicationInput, error) {
	memberID, err := uuid.Parse(r.MemberID)
	if err != nil {
		return nil, err
	}
	input := &recordsDomain.MedicationInput{
		MemberID:  memberID,
		Name:      r.Name,
		Dosage:    r.Dosage,
		Frequency: r.Frequency,
	}
	if r.StartDate != nil {
		start, err := time.Parse(dateLayout, *r.StartDate)
		if err != nil {
			return nil, err
		}
		input.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := time.Parse(dateLayout, *r.EndDate)
		if err != nil {
			return nil, err
		}
		input.EndDate = &end
	}
	return input, nil
}

// MedicationResponse represents a medication in API responses.
type MedicationResponse struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	MemberID  string    `json:"member_id"`
	Name      string    `json:"name"`
	Dosage    *string   `json:"dosage,omitempty"`
	Frequency *string   `json:"frequency,omitempty"`
	StartDate *string   `json:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapMedicationToResponse converts a decrypted medication view to an API response.
func MapMedicationToResponse(output *recordsDomain.MedicationOutput) MedicationResponse {
	response := MedicationResponse{
		ID:        output.ID.String(),
		FamilyID:  output.FamilyID.String(),
		MemberID:  output.MemberID.String(),
		Name:      output.Name,
		Dosage:    output.Dosage,
		Frequency: output.Frequency,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
	if output.StartDate != nil {
		start := output.StartDate.Format(dateLayout)
		response.StartDate = &start
	}
	if output.EndDate != nil {
		end := output.EndDate.Format(dateLayout)
		response.EndDate = &end
	}
	return response
}

// ListMedicationsResponse represents a list of medications in API responses.
type ListMedicationsResponse struct {
	Data []MedicationResponse `json:"data"`
}

// MapMedicationsToListResponse converts decrypted medication views to a list response.
func MapMedicationsToListResponse(outputs []*recordsDomain.MedicationOutput) ListMedicationsResponse {
	data := make([]MedicationResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapMedicationToResponse(output))
	}
	return ListMedicationsResponse{Data: data}
}
