// Package usecase implements user account business logic: registration with
// profile encryption, lookup, and credential verification.
package usecase

import (
	"context"

	"github.com/google/uuid"

	outboxDomain "github.com/hearthside/hearth/internal/outbox/domain"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create stores a new user. Fails with ErrUserAlreadyExists on a
	// duplicate email.
	Create(ctx context.Context, user *userDomain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// GetByEmail retrieves a user by email, the login key.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// UpdateTwoFactor persists the user's two-factor columns.
	UpdateTwoFactor(ctx context.Context, user *userDomain.User) error
}

// OutboxEventRepository defines the outbox operations the user flow needs.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// UserUseCase defines the business logic for user accounts.
type UserUseCase interface {
	// Create registers a user in an existing family. The profile fields are
	// encrypted under the family's key; the password is stored only as a
	// hash. Publishes a user.created outbox event in the same transaction.
	Create(ctx context.Context, input *userDomain.UserInput) (*userDomain.UserOutput, error)

	// Get returns the decrypted view of one user.
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.UserOutput, error)

	// Authenticate verifies an email/password pair and returns the decrypted
	// view on success. Fails with ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*userDomain.UserOutput, error)
}
