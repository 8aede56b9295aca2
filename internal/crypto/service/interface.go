// Package service provides the cryptographic services for the envelope
// encryption engine: AEAD ciphers for field data, the KMS-backed DEK
// wrap/unwrap boundary, the field codec, and the static-key secret box.
package service

import (
	"context"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KMSKeeper is the subset of gocloud.dev/secrets.Keeper the wrap boundary
// uses. *secrets.Keeper satisfies it.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KeyWrapper wraps and unwraps DEKs under the key encryption key held by an
// external key-management service.
//
// Implementations perform no retries: a failure against a security-sensitive
// external service propagates to the caller, which owns backoff policy.
type KeyWrapper interface {
	// Wrap encrypts a plaintext DEK under the KEK, returning a text-safe
	// wrapped form suitable for a TEXT column.
	Wrap(ctx context.Context, key []byte) (string, error)

	// Unwrap recovers the plaintext DEK from its wrapped form. Fails with
	// ErrKeyServiceUnavailable, ErrKekNotFound, or ErrUnwrapFailed.
	Unwrap(ctx context.Context, wrapped string) ([]byte, error)
}

// DekManager manages the lifecycle of per-family data encryption keys.
type DekManager interface {
	// GenerateAndWrap generates a fresh random DEK and wraps it via the key
	// service. Both forms are returned so the caller can persist the wrapped
	// DEK and use the plaintext immediately without a second round-trip.
	GenerateAndWrap(ctx context.Context) (key []byte, wrapped string, err error)

	// Unwrap recovers a plaintext DEK from its persisted wrapped form.
	// One key-service call per invocation; callers own any caching.
	Unwrap(ctx context.Context, wrapped string) ([]byte, error)
}
