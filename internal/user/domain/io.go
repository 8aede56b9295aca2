package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserInput carries the plaintext values for creating a user.
type UserInput struct {
	FamilyID  uuid.UUID
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UserOutput is the decrypted view of a user. It never carries the password
// hash or the TOTP seed.
type UserOutput struct {
	ID          uuid.UUID
	FamilyID    uuid.UUID
	Email       string
	FirstName   string
	LastName    string
	TOTPEnabled bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
