package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets/localsecrets"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

type fakeKeeper struct {
	encryptErr error
	decryptErr error
	plaintext  []byte
}

func (f *fakeKeeper) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	if f.encryptErr != nil {
		return nil, f.encryptErr
	}
	return plaintext, nil
}

func (f *fakeKeeper) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	if f.decryptErr != nil {
		return nil, f.decryptErr
	}
	if f.plaintext != nil {
		return f.plaintext, nil
	}
	return ciphertext, nil
}

func (f *fakeKeeper) Close() error {
	return nil
}

func newLocalWrapper(t *testing.T) *KMSKeyWrapper {
	t.Helper()
	secretKey, err := localsecrets.NewRandomKey()
	require.NoError(t, err)
	keeper := localsecrets.NewKeeper(secretKey)
	t.Cleanup(func() { _ = keeper.Close() })
	return NewKMSKeyWrapper(keeper)
}

func TestKMSKeyWrapper_RoundTrip(t *testing.T) {
	ctx := context.Background()
	wrapper := newLocalWrapper(t)

	key := make([]byte, cryptoDomain.KeySize)
	for i := range key {
		key[i] = byte(i)
	}

	wrapped, err := wrapper.Wrap(ctx, key)
	require.NoError(t, err)
	assert.NotEmpty(t, wrapped)

	// Wrapped form is text-safe and does not contain the key.
	decoded, err := base64.StdEncoding.DecodeString(wrapped)
	require.NoError(t, err)
	assert.NotEqual(t, key, decoded)

	unwrapped, err := wrapper.Unwrap(ctx, wrapped)
	require.NoError(t, err)
	assert.Equal(t, key, unwrapped)
}

func TestKMSKeyWrapper_Wrap(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid key size", func(t *testing.T) {
		wrapper := newLocalWrapper(t)
		_, err := wrapper.Wrap(ctx, make([]byte, 16))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("keeper failure propagates", func(t *testing.T) {
		wrapper := NewKMSKeyWrapper(&fakeKeeper{encryptErr: errors.New("kms down")})
		_, err := wrapper.Wrap(ctx, make([]byte, cryptoDomain.KeySize))
		assert.Error(t, err)
	})
}

func TestKMSKeyWrapper_Unwrap(t *testing.T) {
	ctx := context.Background()

	t.Run("not base64", func(t *testing.T) {
		wrapper := newLocalWrapper(t)
		_, err := wrapper.Unwrap(ctx, "not-base64!!!")
		assert.ErrorIs(t, err, cryptoDomain.ErrUnwrapFailed)
	})

	t.Run("ciphertext from another KEK", func(t *testing.T) {
		key := make([]byte, cryptoDomain.KeySize)
		wrapped, err := newLocalWrapper(t).Wrap(ctx, key)
		require.NoError(t, err)

		_, err = newLocalWrapper(t).Unwrap(ctx, wrapped)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnwrapFailed)
	})

	t.Run("unwrapped key has wrong size", func(t *testing.T) {
		wrapper := NewKMSKeyWrapper(&fakeKeeper{plaintext: make([]byte, 16)})
		wrapped := base64.StdEncoding.EncodeToString([]byte("ciphertext"))

		_, err := wrapper.Unwrap(ctx, wrapped)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnwrapFailed)
	})

	t.Run("keeper failure maps into the error taxonomy", func(t *testing.T) {
		wrapper := NewKMSKeyWrapper(&fakeKeeper{decryptErr: errors.New("bad ciphertext")})
		wrapped := base64.StdEncoding.EncodeToString([]byte("ciphertext"))

		_, err := wrapper.Unwrap(ctx, wrapped)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnwrapFailed)
	})
}
