package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// Notification is an in-app reminder for a family, e.g. an upcoming
// appointment. The message may quote record details, so it is encrypted.
type Notification struct {
	cryptoDomain.KeyAttachment

	ID        uuid.UUID
	FamilyID  uuid.UUID
	Message   cryptoDomain.EncryptedString
	IsRead    bool
	CreatedAt time.Time
}

func (n *Notification) OwnerFamilyID() uuid.UUID {
	return n.FamilyID
}

func (n *Notification) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"message": &n.Message,
	}
}
