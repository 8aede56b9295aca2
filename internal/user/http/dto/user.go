// Package dto defines response types for the user endpoints.
package dto

import (
	"time"

	"github.com/google/uuid"

	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// UserResponse is the decrypted profile view returned to the client.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	FamilyID    uuid.UUID `json:"family_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	TOTPEnabled bool      `json:"totp_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapUserToResponse converts a user output to its response representation.
func MapUserToResponse(user *userDomain.UserOutput) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FamilyID:    user.FamilyID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		TOTPEnabled: user.TOTPEnabled,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
