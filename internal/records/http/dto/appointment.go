// Package dto defines the request and response shapes of the health-record
// HTTP API. Requests validate before reaching a use case; responses carry
// only decrypted views.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

const dateLayout = "2006-01-02"

// AppointmentRequest contains the parameters for creating or updating an
// appointment.
type AppointmentRequest struct {
	MemberID string  `json:"member_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Doctor   *string `json:"doctor"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
	Date     string  `json:"date" binding:"required"`
}

// Validate checks if the appointment request is valid.
func (r *AppointmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MemberID, validation.Required, validation.Length(36, 36)),
		validation.Field(&r.Title,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Doctor, validation.Length(1, 255)),
		validation.Field(&r.Location, validation.Length(1, 255)),
		validation.Field(&r.Date, validation.Required, validation.Date(time.RFC3339)),
	)
}

// ToInput converts a validated request into the use case input.
func (r *AppointmentRequest) ToInput() (*recordsDomain.AppointmentInput, error) {
	memberID, err := uuid.Parse(r.MemberID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}
	return &recordsDomain.AppointmentInput{
		MemberID: memberID,
		Title:    r.Title,
		Doctor:   r.Doctor,
		Location: r.Location,
		Notes:    r.Notes,
		Date:     date,
	}, nil
}

// AppointmentResponse represents an appointment in API responses.
type AppointmentResponse struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	MemberID  string    `json:"member_id"`
	Title     string    `json:"title"`
	Doctor    *string   `json:"doctor,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapAppointmentToResponse converts a decrypted appointment view to an API response.
func MapAppointmentToResponse(output *recordsDomain.AppointmentOutput) AppointmentResponse {
	return AppointmentResponse{
		ID:        output.ID.String(),
		FamilyID:  output.FamilyID.String(),
		MemberID:  output.MemberID.String(),
		Title:     output.Title,
		Doctor:    output.Doctor,
		Location:  output.Location,
		Notes:     output.Notes,
		Date:      output.Date,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

// ListAppointmentsResponse represents a list of appointments in API responses.
type ListAppointmentsResponse struct {
	Data []AppointmentResponse `json:"data"`
}

// MapAppointmentsToListResponse converts decrypted appointment views to a list response.
func MapAppointmentsToListResponse(outputs []*recordsDomain.AppointmentOutput) ListAppointmentsResponse {
	data := make([]AppointmentResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapAppointmentToResponse(output))
	}
	return ListAppointmentsResponse{Data: data}
}
