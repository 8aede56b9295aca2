// Package usecase implements the two-factor enrolment and verification flow.
// TOTP seeds are sealed by the application secret box, never the family key,
// so they stay checkable during login before any family key is resolved.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// UserRepository defines the user persistence operations the two-factor flow
// needs.
type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)
	UpdateTwoFactor(ctx context.Context, user *userDomain.User) error
}

// TwoFactorUseCase defines the business logic for TOTP two-factor
// authentication.
type TwoFactorUseCase interface {
	// Setup generates a fresh TOTP seed for the user, stores it sealed, and
	// returns the plaintext seed exactly once. Two-factor stays disabled
	// until the first successful Verify. Fails with
	// ErrTwoFactorAlreadyEnabled while two-factor is active.
	Setup(ctx context.Context, userID uuid.UUID) (*authDomain.TwoFactorSetup, error)

	// Verify checks a submitted code against the user's sealed seed. The
	// first successful verification after Setup enables two-factor. Fails
	// with ErrInvalidTwoFactorCode when the code does not match, or
	// ErrTwoFactorNotConfigured when no seed is stored.
	Verify(ctx context.Context, userID uuid.UUID, code string) error

	// Disable clears the user's seed and turns two-factor off.
	Disable(ctx context.Context, userID uuid.UUID) error
}
