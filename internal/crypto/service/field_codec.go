package service

import (
	"fmt"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// FieldCodec converts sensitive entity fields between their plaintext domain
// values and the armored ciphertext stored in TEXT columns.
//
// Every operation requires the owning entity to carry an attached key handle;
// access to an unhydrated entity fails with ErrKeyNotAttached rather than
// returning ciphertext or silently no-oping. Absent optional values pass
// through as nil without touching the cipher.
//
// New ciphertexts are produced with the configured algorithm; decryption
// honors the algorithm tag embedded in each stored value, so changing the
// configured algorithm never orphans existing rows.
type FieldCodec struct {
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewFieldCodec creates a codec that seals new values with the given algorithm.
func NewFieldCodec(aeadManager AEADManager, alg cryptoDomain.Algorithm) (*FieldCodec, error) {
	switch alg {
	case cryptoDomain.AESGCM, cryptoDomain.ChaCha20:
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
	return &FieldCodec{aeadManager: aeadManager, algorithm: alg}, nil
}

// Get decrypts one sensitive field of a hydrated entity.
// Returns nil for an absent optional value.
func (c *FieldCodec) Get(
	entity cryptoDomain.Hydratable,
	field *cryptoDomain.EncryptedString,
) (*string, error) {
	handle, err := attachedKey(entity)
	if err != nil {
		return nil, err
	}

	stored := field.Ciphertext()
	if stored == nil {
		return nil, nil
	}

	alg, nonce, ciphertext, err := cryptoDomain.ParseArmor(*stored)
	if err != nil {
		return nil, err
	}

	aead, err := c.aeadManager.CreateCipher(handle.Bytes(), alg)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed", cryptoDomain.ErrDecryptionFailed)
	}

	value := string(plaintext)
	cryptoDomain.Zero(plaintext)
	return &value, nil
}

// Set encrypts a plaintext value into one sensitive field of a hydrated
// entity. A nil value stores nil without encryption.
func (c *FieldCodec) Set(
	entity cryptoDomain.Hydratable,
	field *cryptoDomain.EncryptedString,
	value *string,
) error {
	handle, err := attachedKey(entity)
	if err != nil {
		return err
	}

	if value == nil {
		field.SetCiphertext(nil)
		return nil
	}

	aead, err := c.aeadManager.CreateCipher(handle.Bytes(), c.algorithm)
	if err != nil {
		return err
	}

	ciphertext, nonce, err := aead.Encrypt([]byte(*value), nil)
	if err != nil {
		return fmt.Errorf("failed to encrypt field: %w", err)
	}

	armored := cryptoDomain.Armor(c.algorithm, nonce, ciphertext)
	field.SetCiphertext(&armored)
	return nil
}

// GetField decrypts a sensitive field addressed by its domain name.
func (c *FieldCodec) GetField(entity cryptoDomain.EncryptedEntity, name string) (*string, error) {
	field, err := lookupField(entity, name)
	if err != nil {
		return nil, err
	}
	return c.Get(entity, field)
}

// SetField encrypts a value into a sensitive field addressed by its domain name.
func (c *FieldCodec) SetField(entity cryptoDomain.EncryptedEntity, name string, value *string) error {
	field, err := lookupField(entity, name)
	if err != nil {
		return err
	}
	return c.Set(entity, field, value)
}

func attachedKey(entity cryptoDomain.Hydratable) (*cryptoDomain.KeyHandle, error) {
	handle := entity.Key()
	if handle == nil || handle.Bytes() == nil {
		return nil, cryptoDomain.ErrKeyNotAttached
	}
	return handle, nil
}

func lookupField(
	entity cryptoDomain.EncryptedEntity,
	name string,
) (*cryptoDomain.EncryptedString, error) {
	field, ok := entity.SensitiveFields()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnknownSensitiveField, name)
	}
	return field, nil
}
