// Package service provides user account services. Password hashing is a thin
// adapter over Argon2id via github.com/allisson/go-pwdhash.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/hearthside/hearth/internal/errors"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare performs a constant-time check of a password against its hash.
	Compare(password string, hash string) bool
}

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService with the interactive policy,
// tuned for login-path latency.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}
	return &passwordService{hasher: hasher}, nil
}

func (s *passwordService) Hash(password string) (string, error) {
	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

func (s *passwordService) Compare(password string, hash string) bool {
	ok, err := s.hasher.Verify([]byte(password), hash)
	if err != nil {
		return false
	}
	return ok
}
