package domain

import (
	"github.com/hearthside/hearth/internal/errors"
)

var (
	// ErrSessionNotFound indicates the session token is unknown or revoked.
	ErrSessionNotFound = errors.Wrap(errors.ErrUnauthorized, "session not found")

	// ErrSessionExpired indicates the session has passed its expiry.
	ErrSessionExpired = errors.Wrap(errors.ErrUnauthorized, "session expired")

	// ErrTwoFactorNotConfigured indicates the user has no stored TOTP seed.
	ErrTwoFactorNotConfigured = errors.Wrap(errors.ErrInvalidInput, "two-factor not configured")

	// ErrTwoFactorAlreadyEnabled indicates enrolment was attempted while
	// two-factor is active; it must be disabled first.
	ErrTwoFactorAlreadyEnabled = errors.Wrap(errors.ErrConflict, "two-factor already enabled")

	// ErrInvalidTwoFactorCode indicates the submitted code did not verify.
	ErrInvalidTwoFactorCode = errors.Wrap(errors.ErrUnauthorized, "invalid two-factor code")
)
