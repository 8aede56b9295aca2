package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Allergy severity levels kept in plaintext so lists can filter on them.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Allergy records a member's allergy. The allergen and reaction are
// encrypted; severity stays a plain column.
type Allergy struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Allergen  cryptoDomain.EncryptedString
	Reaction  cryptoDomain.EncryptedString
	Severity  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerFamilyID returns the family the allergy belongs to.
func (a *Allergy) OwnerFamilyID() uuid.UUID {
	return a.FamilyID
}

// SensitiveFields maps the allergy's encrypted columns by name.
func (a *Allergy) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"allergen": &a.Allergen,
		"reaction": &a.Reaction,
	}
}
