package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

const birthDateLayout = "2006-01-02"

// MemberRequest contains the parameters for creating or updating a family member.
type MemberRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Relation    *string `json:"relation"`
	BloodType   *string `json:"blood_type"`
	PhoneNumber *string `json:"phone_number"`
	BirthDate   *string `json:"birth_date"`
	Gender      string  `json:"gender"`
}

// Validate checks if the member request is valid.
func (r *MemberRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.LastName,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Relation, validation.Length(1, 255)),
		validation.Field(&r.BloodType, validation.Length(1, 10)),
		validation.Field(&r.PhoneNumber, validation.Length(1, 50)),
		validation.Field(&r.BirthDate, validation.Date(birthDateLayout)),
		validation.Field(&r.Gender, validation.In("", "female", "male", "other")),
	)
}

// ToInput converts a validated request into the use case input.
func (r *MemberRequest) ToInput() (*familyDomain.MemberInput, error) {
	input := &familyDomain.MemberInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Relation:    r.Relation,
		BloodType:   r.BloodType,
		PhoneNumber: r.PhoneNumber,
		Gender:      r.Gender,
	}
	if r.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *r.BirthDate)
		if err != nil {
			return nil, err
		}
		input.BirthDate = &birthDate
	}
	return input, nil
}

// MemberResponse represents a family member in API responses.
type MemberResponse struct {
	ID          string    `json:"id"`
	FamilyID    string    `json:"family_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Relation    *string   `json:"relation,omitempty"`
	BloodType   *string   `json:"blood_type,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	BirthDate   *string   `json:"birth_date,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapMemberToResponse converts a decrypted member view to an API response.
func MapMemberToResponse(output *familyDomain.MemberOutput) MemberResponse {
	response := MemberResponse{
		ID:          output.ID.String(),
		FamilyID:    output.FamilyID.String(),
		FirstName:   output.FirstName,
		LastName:    output.LastName,
		Relation:    output.Relation,
		BloodType:   output.BloodType,
		PhoneNumber: output.PhoneNumber,
		Gender:      output.Gender,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
	if output.BirthDate != nil {
		birthDate := output.BirthDate.Format(birthDateLayout)
		response.BirthDate = &birthDate
	}
	return response
}

// ListMembersResponse represents a list of family members in API responses.
type ListMembersResponse struct {
	Data []MemberResponse `json:"data"`
}

// MapMembersToListResponse converts decrypted member views to a list response.
func MapMembersToListResponse(outputs []*familyDomain.MemberOutput) ListMembersResponse {
	data := make([]MemberResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapMemberToResponse(output))
	}
	return ListMembersResponse{Data: data}
}
