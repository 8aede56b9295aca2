package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

func newSecretBox(t *testing.T) *SecretBox {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	box, err := NewSecretBox(NewAEADManager(), key)
	require.NoError(t, err)
	return box
}

func TestNewSecretBox(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		box := newSecretBox(t)
		assert.NotNil(t, box)
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := NewSecretBox(NewAEADManager(), make([]byte, 16))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestSecretBox_RoundTrip(t *testing.T) {
	box := newSecretBox(t)

	armored, err := box.Encrypt("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.Contains(t, armored, cryptoDomain.ArmorPrefix)
	assert.NotContains(t, armored, "JBSWY3DPEHPK3PXP")

	got, err := box.Decrypt(armored)
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", got)
}

func TestSecretBox_Decrypt(t *testing.T) {
	t.Run("different key fails", func(t *testing.T) {
		armored, err := newSecretBox(t).Encrypt("secret")
		require.NoError(t, err)

		_, err = newSecretBox(t).Decrypt(armored)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("malformed input fails", func(t *testing.T) {
		_, err := newSecretBox(t).Decrypt("garbage")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}
