package service

import (
	"fmt"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// SecretBox encrypts application-level secrets under a static key from
// configuration rather than a per-family DEK. It covers values that must be
// readable before any family key is resolved, such as TOTP seeds checked
// during login.
//
// The static key never rotates in place: decrypting a value sealed under a
// previous key fails with ErrDecryptionFailed.
type SecretBox struct {
	aeadManager AEADManager
	key         []byte
}

// NewSecretBox creates a box sealed by the given 32-byte static key.
func NewSecretBox(aeadManager AEADManager, key []byte) (*SecretBox, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	return &SecretBox{aeadManager: aeadManager, key: key}, nil
}

// Encrypt seals a plaintext value into armored form.
func (b *SecretBox) Encrypt(plaintext string) (string, error) {
	aead, err := b.aeadManager.CreateCipher(b.key, cryptoDomain.AESGCM)
	if err != nil {
		return "", err
	}

	ciphertext, nonce, err := aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt secret: %w", err)
	}

	return cryptoDomain.Armor(cryptoDomain.AESGCM, nonce, ciphertext), nil
}

// Decrypt opens an armored value sealed by Encrypt.
func (b *SecretBox) Decrypt(armored string) (string, error) {
	alg, nonce, ciphertext, err := cryptoDomain.ParseArmor(armored)
	if err != nil {
		return "", err
	}

	aead, err := b.aeadManager.CreateCipher(b.key, alg)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", cryptoDomain.ErrDecryptionFailed)
	}

	value := string(plaintext)
	cryptoDomain.Zero(plaintext)
	return value, nil
}
