// Package domain defines the user account entity. A user belongs to one
// family and carries the family's encrypted profile fields; the email stays
// plaintext because it is the login key, and the password is stored only as
// an Argon2id hash.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// User is an account holder. First and last name are encrypted under the
// family's key. TOTPSecret, when set, holds the two-factor seed sealed by the
// application secret box rather than the family key, so it stays readable
// during login before any family key is resolved.
type User struct {
	cryptoDomain.KeyAttachment

	ID           uuid.UUID
	FamilyID     uuid.UUID
	Email        string
	PasswordHash string
	FirstName    cryptoDomain.EncryptedString
	LastName     cryptoDomain.EncryptedString
	TOTPSecret   *string
	TOTPEnabled  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerFamilyID returns the family the user belongs to.
func (u *User) OwnerFamilyID() uuid.UUID {
	return u.FamilyID
}

// SensitiveFields maps the user's encrypted columns by name.
func (u *User) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"first_name": &u.FirstName,
		"last_name":  &u.LastName,
	}
}
