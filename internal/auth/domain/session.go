// Package domain defines the authentication boundary types. Session issuance
// and storage live outside this service; only verified session data crosses
// into the request context.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the verified identity behind a request: the user it belongs to,
// the family that scopes every data access, and when it stops being valid.
type Session struct {
	Token     string
	UserID    uuid.UUID
	FamilyID  uuid.UUID
	ExpiresAt time.Time
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// TwoFactorSetup is the one-time response to a two-factor enrolment: the
// plaintext seed and its provisioning URI. Neither is ever stored or shown
// again.
type TwoFactorSetup struct {
	Secret       string
	ProvisionURI string
}
