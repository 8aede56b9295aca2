package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Condition statuses kept in plaintext for filtering.
const (
	ConditionActive   = "active"
	ConditionResolved = "resolved"
	ConditionChronic  = "chronic"
)

// Condition is a diagnosed medical condition of a family member.
type Condition struct {
	cryptoDomain.KeyAttachment

	ID            uuid.UUID
	FamilyID      uuid.UUID
	MemberID      uuid.UUID
	Name          cryptoDomain.EncryptedString
	Notes         cryptoDomain.EncryptedString
	DiagnosedDate *time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnerFamilyID returns the family the condition belongs to.
func (c *Condition) OwnerFamilyID() uuid.UUID {
	return c.FamilyID
}

// SensitiveFields maps the condition's encrypted columns by name.
func (c *Condition) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name":  &c.Name,
		"notes": &c.Notes,
	}
}
