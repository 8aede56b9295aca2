// Package service provides the authentication services: session verification
// against an external store and TOTP code handling.
package service

import (
	"context"
	"time"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
)

// SessionStore verifies opaque session tokens against an external session
// backend. Issuing, refreshing, and revoking sessions happen outside this
// service; implementations only look tokens up.
type SessionStore interface {
	// Get resolves a session token. Returns ErrSessionNotFound for unknown
	// or revoked tokens.
	Get(ctx context.Context, token string) (*authDomain.Session, error)
}

// TOTPService generates and verifies time-based one-time password seeds.
type TOTPService interface {
	// GenerateSecret returns a fresh base32-encoded TOTP seed.
	GenerateSecret() (string, error)

	// Verify checks a submitted code against the seed at the given time,
	// accepting one step of clock skew in either direction.
	Verify(code, secret string, when time.Time) bool

	// ProvisionURI renders the otpauth:// URI an authenticator app enrolls
	// with.
	ProvisionURI(account, issuer, secret string) string
}
