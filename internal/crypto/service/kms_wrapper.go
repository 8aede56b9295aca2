package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/gcerrors"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// KMSKeyWrapper implements KeyWrapper on top of a gocloud.dev secrets keeper.
//
// The keeper is constructed once at process start and injected; this type
// holds no other state and is safe for concurrent use. Wrapped DEKs are
// base64-encoded keeper ciphertext, opaque to everything but the KEK that
// produced them.
type KMSKeyWrapper struct {
	keeper KMSKeeper
}

// NewKMSKeyWrapper creates a key wrapper backed by the given keeper.
func NewKMSKeyWrapper(keeper KMSKeeper) *KMSKeyWrapper {
	return &KMSKeyWrapper{keeper: keeper}
}

// Wrap encrypts a plaintext DEK under the external KEK.
func (w *KMSKeyWrapper) Wrap(ctx context.Context, key []byte) (string, error) {
	if len(key) != cryptoDomain.KeySize {
		return "", cryptoDomain.ErrInvalidKeySize
	}

	ciphertext, err := w.keeper.Encrypt(ctx, key)
	if err != nil {
		return "", wrapKeyServiceError(err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Unwrap recovers the plaintext DEK from its wrapped form.
func (w *KMSKeyWrapper) Unwrap(ctx context.Context, wrapped string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped key is not valid base64", cryptoDomain.ErrUnwrapFailed)
	}

	key, err := w.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, wrapKeyServiceError(err)
	}
	if len(key) != cryptoDomain.KeySize {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf("%w: unwrapped key has wrong size", cryptoDomain.ErrUnwrapFailed)
	}

	return key, nil
}

// wrapKeyServiceError maps gocloud error codes onto the engine's taxonomy.
// Transport and credential failures are transient (the caller may retry the
// whole request); a missing KEK is configuration; everything else means the
// ciphertext does not match the KEK.
func wrapKeyServiceError(err error) error {
	switch gcerrors.Code(err) {
	case gcerrors.NotFound:
		return fmt.Errorf("%w: %v", cryptoDomain.ErrKekNotFound, err)
	case gcerrors.PermissionDenied,
		gcerrors.ResourceExhausted,
		gcerrors.DeadlineExceeded,
		gcerrors.Canceled,
		gcerrors.Internal:
		return fmt.Errorf("%w: %v", cryptoDomain.ErrKeyServiceUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", cryptoDomain.ErrUnwrapFailed, err)
	}
}
