// Package domain defines the health-record entities kept under a family's
// encryption key: appointments, medications, allergies, conditions, and the
// longer-lived history records. Every entity embeds a key attachment and
// exposes its encrypted columns through a sensitive-field registry; plain
// columns are limited to what list endpoints sort and filter on.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Appointment is a scheduled medical visit for a family member.
// The date stays plaintext for calendar queries; everything identifying
// the visit is encrypted.
type Appointment struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Title     cryptoDomain.EncryptedString
	Doctor    cryptoDomain.EncryptedString
	Location  cryptoDomain.EncryptedString
	Notes     cryptoDomain.EncryptedString
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerFamilyID returns the family the appointment belongs to.
func (a *Appointment) OwnerFamilyID() uuid.UUID {
	return a.FamilyID
}

// SensitiveFields maps the appointment's encrypted columns by name.
func (a *Appointment) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"title":    &a.Title,
		"doctor":   &a.Doctor,
		"location": &a.Location,
		"notes":    &a.Notes,
	}
}
