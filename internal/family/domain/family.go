// Package domain defines the family aggregate: the household that owns one
// data encryption key and every record kept under it. Sensitive columns hold
// armored ciphertext and are only readable through the field codec after the
// family's key has been attached.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Family is the tenant unit of the system. Its display name is encrypted
// under the family's own key.
type Family struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	Name      cryptoDomain.EncryptedString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerFamilyID returns the family's own ID; a family is keyed by itself.
func (f *Family) OwnerFamilyID() uuid.UUID {
	return f.ID
}

// SensitiveFields maps the family's encrypted columns by name.
func (f *Family) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name": &f.Name,
	}
}

// FamilyMember is a person in the family. Identity and medical base data are
// encrypted; birth date and gender stay plaintext for list filtering.
type FamilyMember struct {
	cryptoDomain.KeyAttachment

	ID          uuid.UUID
	FamilyID    uuid.UUID
	FirstName   cryptoDomain.EncryptedString
	LastName    cryptoDomain.EncryptedString
	Relation    cryptoDomain.EncryptedString
	BloodType   cryptoDomain.EncryptedString
	PhoneNumber cryptoDomain.EncryptedString
	BirthDate   *time.Time
	Gender      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerFamilyID returns the family the member belongs to.
func (m *FamilyMember) OwnerFamilyID() uuid.UUID {
	return m.FamilyID
}

// SensitiveFields maps the member's encrypted columns by name.
func (m *FamilyMember) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"first_name":   &m.FirstName,
		"last_name":    &m.LastName,
		"relation":     &m.Relation,
		"blood_type":   &m.BloodType,
		"phone_number": &m.PhoneNumber,
	}
}
