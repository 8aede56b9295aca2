package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Medication is an ongoing or past prescription for a family member.
type Medication struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Name      cryptoDomain.EncryptedString
	Dosage    cryptoDomain.EncryptedString
	Frequency cryptoDomain.EncryptedString
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerFamilyID returns the family the medication belongs to.
func (m *Medication) OwnerFamilyID() uuid.UUID {
	return m.FamilyID
}

// SensitiveFields maps the medication's encrypted columns by name.
func (m *Medication) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name":      &m.Name,
		"dosage":    &m.Dosage,
		"frequency": &m.Frequency,
	}
}
