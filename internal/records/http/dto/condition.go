package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// ConditionRequest contains the parameters for creating or updating a
// condition.
type ConditionRequest struct {
	MemberID      string  `json:"member_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Notes         *string `json:"notes"`
	DiagnosedDate *string `json:"diagnosed_date"`
	Status        string  `json:"status" binding:"required"`
}

// Validate checks if the condition request is valid.
func (r *ConditionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MemberID, validation.Required, validation.Length(36, 36)),
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Notes, validation.Length(1, 5000)),
		validation.Field(&r.DiagnosedDate, validation.Date(dateLayout)),
		validation.Field(&r.Status, validation.Required, validation.In(
			recordsDomain.ConditionActive,
			recordsDomain.ConditionResolved,
			recordsDomain.ConditionChronic,
		)),
	)
}

// ToInput converts a validated request into the use case input.
func (r *ConditionRequest) ToInput() (*recordsDomain.ConditionInput, error) {
	memberID, err := uuid.Parse(r.MemberID)
	if err != nil {
		return nil, err
	}
	input := &recordsDomain.ConditionInput{
		MemberID: memberID,
		Name:     r.Name,
		Notes:    r.Notes,
		Status:   r.Status,
	}
	if r.DiagnosedDate != nil {
		diagnosed, err := time.Parse(dateLayout, *r.DiagnosedDate)
		if err != nil {
			return nil, err
		}
		input.DiagnosedDate = &diagnosed
	}
	return input, nil
}

// ConditionResponse represents a condition in API responses.
type ConditionResponse struct {
	ID            string    `json:"id"`
	FamilyID      string    `json:"family_id"`
	MemberID      string    `json:"member_id"`
	Name          string    `json:"name"`
	Notes         *string   `json:"notes,omitempty"`
	DiagnosedDate *string   `json:"diagnosed_date,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MapConditionToResponse converts a decrypted condition view to an API response.
func MapConditionToResponse(output *recordsDomain.ConditionOutput) ConditionResponse {
	response := ConditionResponse{
		ID:        output.ID.String(),
		FamilyID:  output.FamilyID.String(),
		MemberID:  output.MemberID.String(),
		Name:      output.Name,
		Notes:     output.Notes,
		Status:    output.Status,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
	if output.DiagnosedDate != nil {
		diagnosed := output.DiagnosedDate.Format(dateLayout)
		response.DiagnosedDate = &diagnosed
	}
	return response
}

// ListConditionsResponse represents a list of conditions in API responses.
type ListConditionsResponse struct {
	Data []ConditionResponse `json:"data"`
}

// MapConditionsToListResponse converts decrypted condition views to a list response.
func MapConditionsToListResponse(outputs []*recordsDomain.ConditionOutput) ListConditionsResponse {
	data := make([]ConditionResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapConditionToResponse(output))
	}
	return ListConditionsResponse{Data: data}
}
