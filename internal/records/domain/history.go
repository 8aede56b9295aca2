package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Surgery is a past surgical procedure of a family member.
type Surgery struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Name      cryptoDomain.EncryptedString
	Notes     cryptoDomain.EncryptedString
	Date      *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Surgery) OwnerFamilyID() uuid.UUID {
	return s.FamilyID
}

func (s *Surgery) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name":  &s.Name,
		"notes": &s.Notes,
	}
}

// Hospitalization records a hospital stay.
type Hospitalization struct {
	cryptoDomain.KeyAttachment

	ID            uuid.UUID
	FamilyID      uuid.UUID
	MemberID      uuid.UUID
	Reason        cryptoDomain.EncryptedString
	Notes         cryptoDomain.EncryptedString
	AdmissionDate *time.Time
	DischargeDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (h *Hospitalization) OwnerFamilyID() uuid.UUID {
	return h.FamilyID
}

func (h *Hospitalization) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"reason": &h.Reason,
		"notes":  &h.Notes,
	}
}

// FamilyHistoryCondition is a hereditary condition present in a member's
// relatives. The relative label ("mother", "grandfather") stays plaintext.
type FamilyHistoryCondition struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Name      cryptoDomain.EncryptedString
	Notes     cryptoDomain.EncryptedString
	Relative  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *FamilyHistoryCondition) OwnerFamilyID() uuid.UUID {
	return f.FamilyID
}

func (f *FamilyHistoryCondition) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name":  &f.Name,
		"notes": &f.Notes,
	}
}

// Vaccination is an administered vaccine dose.
type Vaccination struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Name      cryptoDomain.EncryptedString
	Notes     cryptoDomain.EncryptedString
	Date      *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v *Vaccination) OwnerFamilyID() uuid.UUID {
	return v.FamilyID
}

func (v *Vaccination) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name":  &v.Name,
		"notes": &v.Notes,
	}
}
