package domain

import (
	"crypto/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewKeyHandle(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())

	t.Run("valid key", func(t *testing.T) {
		key := newTestKey(t)

		handle, err := NewKeyHandle(familyID, key)
		require.NoError(t, err)
		assert.Equal(t, familyID, handle.FamilyID())
		assert.Equal(t, key, handle.Bytes())
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := NewKeyHandle(familyID, make([]byte, 16))
		assert.ErrorIs(t, err, ErrInvalidKeySize)

		_, err = NewKeyHandle(familyID, nil)
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("nil family id", func(t *testing.T) {
		_, err := NewKeyHandle(uuid.Nil, newTestKey(t))
		assert.ErrorIs(t, err, ErrKeyFamilyMismatch)
	})
}

func TestKeyHandle_Close(t *testing.T) {
	key := newTestKey(t)
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	handle, err := NewKeyHandle(uuid.Must(uuid.NewV7()), key)
	require.NoError(t, err)

	handle.Close()

	// The original slice is zeroed and the handle no longer exposes it.
	assert.Nil(t, handle.Bytes())
	for _, b := range key {
		assert.Equal(t, byte(0), b)
	}
	assert.NotEqual(t, keyCopy, key)
}
