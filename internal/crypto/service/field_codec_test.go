package service

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

type codecEntity struct {
	cryptoDomain.KeyAttachment
	familyID uuid.UUID
	name     cryptoDomain.EncryptedString
	notes    cryptoDomain.EncryptedString
}

func (e *codecEntity) OwnerFamilyID() uuid.UUID {
	return e.familyID
}

func (e *codecEntity) SensitiveFields() map[string]*cryptoDomain.EncryptedString {
	return map[string]*cryptoDomain.EncryptedString{
		"name":  &e.name,
		"notes": &e.notes,
	}
}

func newAttachedEntity(t *testing.T) (*codecEntity, *cryptoDomain.KeyHandle) {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	familyID := uuid.New()
	handle, err := cryptoDomain.NewKeyHandle(familyID, key)
	require.NoError(t, err)

	entity := &codecEntity{familyID: familyID}
	require.NoError(t, cryptoDomain.Attach(handle, entity))
	return entity, handle
}

func TestNewFieldCodec(t *testing.T) {
	manager := NewAEADManager()

	t.Run("supported algorithms", func(t *testing.T) {
		for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
			codec, err := NewFieldCodec(manager, alg)
			require.NoError(t, err)
			assert.NotNil(t, codec)
		}
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := NewFieldCodec(manager, cryptoDomain.Algorithm("des"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func TestFieldCodec_RoundTrip(t *testing.T) {
	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			codec, err := NewFieldCodec(NewAEADManager(), alg)
			require.NoError(t, err)
			entity, _ := newAttachedEntity(t)

			values := []string{
				"",
				"short",
				"unicode: 日本語 émojis 🧬 ñ",
				strings.Repeat("long plaintext ", 700),
			}
			for _, value := range values {
				v := value
				require.NoError(t, codec.Set(entity, &entity.name, &v))

				stored := entity.name.Ciphertext()
				require.NotNil(t, stored)
				assert.True(t, strings.HasPrefix(*stored, cryptoDomain.ArmorPrefix))
				if value != "" {
					assert.NotContains(t, *stored, value)
				}

				got, err := codec.Get(entity, &entity.name)
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, value, *got)
			}
		})
	}
}

func TestFieldCodec_NilPassthrough(t *testing.T) {
	codec, err := NewFieldCodec(NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)
	entity, _ := newAttachedEntity(t)

	t.Run("set nil stores nil", func(t *testing.T) {
		value := "present"
		require.NoError(t, codec.Set(entity, &entity.name, &value))
		require.NoError(t, codec.Set(entity, &entity.name, nil))
		assert.Nil(t, entity.name.Ciphertext())
	})

	t.Run("get nil returns nil without error", func(t *testing.T) {
		got, err := codec.Get(entity, &entity.notes)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestFieldCodec_KeyNotAttached(t *testing.T) {
	codec, err := NewFieldCodec(NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)

	t.Run("unattached entity", func(t *testing.T) {
		entity := &codecEntity{familyID: uuid.New()}
		value := "secret"

		err := codec.Set(entity, &entity.name, &value)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotAttached)

		_, err = codec.Get(entity, &entity.name)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotAttached)
	})

	t.Run("closed handle", func(t *testing.T) {
		entity, handle := newAttachedEntity(t)
		value := "secret"
		require.NoError(t, codec.Set(entity, &entity.name, &value))

		handle.Close()

		_, err := codec.Get(entity, &entity.name)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotAttached)
	})

	t.Run("every sensitive field fails when unattached", func(t *testing.T) {
		entity := &codecEntity{familyID: uuid.New()}
		for name := range entity.SensitiveFields() {
			_, err := codec.GetField(entity, name)
			assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotAttached, "field %q", name)
		}
	})
}

func TestFieldCodec_DecryptionFailed(t *testing.T) {
	codec, err := NewFieldCodec(NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		entity, _ := newAttachedEntity(t)
		value := "secret"
		require.NoError(t, codec.Set(entity, &entity.name, &value))

		// Same family, different key material.
		wrongKey := make([]byte, cryptoDomain.KeySize)
		_, err := rand.Read(wrongKey)
		require.NoError(t, err)
		wrongHandle, err := cryptoDomain.NewKeyHandle(entity.familyID, wrongKey)
		require.NoError(t, err)
		require.NoError(t, cryptoDomain.Attach(wrongHandle, entity))

		_, err = codec.Get(entity, &entity.name)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("single bit flip", func(t *testing.T) {
		entity, _ := newAttachedEntity(t)
		value := "secret"
		require.NoError(t, codec.Set(entity, &entity.name, &value))

		stored := *entity.name.Ciphertext()
		tampered := []byte(stored)
		tampered[len(tampered)-1] ^= 0x01
		tamperedStr := string(tampered)
		entity.name.SetCiphertext(&tamperedStr)

		_, err := codec.Get(entity, &entity.name)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("malformed stored value", func(t *testing.T) {
		entity, _ := newAttachedEntity(t)
		malformed := "not armored at all"
		entity.name.SetCiphertext(&malformed)

		_, err := codec.Get(entity, &entity.name)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestFieldCodec_AlgorithmTagHonored(t *testing.T) {
	// Values sealed under ChaCha20 stay readable after the configured
	// algorithm changes to AES-GCM.
	entity, _ := newAttachedEntity(t)
	value := "sealed under chacha20"

	chachaCodec, err := NewFieldCodec(NewAEADManager(), cryptoDomain.ChaCha20)
	require.NoError(t, err)
	require.NoError(t, chachaCodec.Set(entity, &entity.name, &value))

	aesCodec, err := NewFieldCodec(NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)
	got, err := aesCodec.Get(entity, &entity.name)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, value, *got)
}

func TestFieldCodec_NamedFieldAccess(t *testing.T) {
	codec, err := NewFieldCodec(NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)
	entity, _ := newAttachedEntity(t)

	t.Run("set and get by name", func(t *testing.T) {
		value := "by name"
		require.NoError(t, codec.SetField(entity, "notes", &value))

		got, err := codec.GetField(entity, "notes")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, value, *got)
	})

	t.Run("unknown field name", func(t *testing.T) {
		value := "nope"
		err := codec.SetField(entity, "ssn", &value)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnknownSensitiveField)

		_, err = codec.GetField(entity, "ssn")
		assert.ErrorIs(t, err, cryptoDomain.ErrUnknownSensitiveField)
	})
}
