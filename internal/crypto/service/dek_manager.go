package service

import (
	"context"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// DekManagerService implements DekManager over an injected KeyWrapper.
//
// DEKs are generated locally with crypto/rand and only ever leave the process
// in wrapped form. The manager holds no cache: each Unwrap is one key-service
// call, and request-scoped caching is owned by the key use case where it can
// be bounded and invalidated explicitly.
type DekManagerService struct {
	wrapper KeyWrapper
}

// NewDekManager creates a DekManagerService using the provided wrapper.
func NewDekManager(wrapper KeyWrapper) *DekManagerService {
	return &DekManagerService{wrapper: wrapper}
}

// GenerateAndWrap generates a fresh 32-byte DEK and wraps it under the KEK.
func (d *DekManagerService) GenerateAndWrap(ctx context.Context) ([]byte, string, error) {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, "", fmt.Errorf("failed to generate DEK: %w", err)
	}

	wrapped, err := d.wrapper.Wrap(ctx, key)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, "", err
	}

	return key, wrapped, nil
}

// Unwrap recovers a plaintext DEK from its persisted wrapped form.
func (d *DekManagerService) Unwrap(ctx context.Context, wrapped string) ([]byte, error) {
	if wrapped == "" {
		return nil, fmt.Errorf("%w: empty wrapped key", cryptoDomain.ErrUnwrapFailed)
	}
	return d.wrapper.Unwrap(ctx, wrapped)
}
