package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ArmorPrefix marks a value produced by the field encryption layer. Sensitive
// columns are TEXT, so sealed bytes are stored armored:
//
//	enc:v1:<algorithm>:<base64(nonce || ciphertext)>
//
// The algorithm tag makes stored ciphertexts self-describing, so the
// configured field algorithm can change without re-encrypting existing rows.
const ArmorPrefix = "enc:v1:"

// Armor encodes a nonce and sealed ciphertext into the text-safe storage form.
func Armor(alg Algorithm, nonce, ciphertext []byte) string {
	payload := make([]byte, 0, len(nonce)+len(ciphertext))
	payload = append(payload, nonce...)
	payload = append(payload, ciphertext...)
	return ArmorPrefix + string(alg) + ":" + base64.StdEncoding.EncodeToString(payload)
}

// ParseArmor splits an armored value into its algorithm, nonce, and sealed
// ciphertext. Malformed input fails with ErrDecryptionFailed: the value came
// from our own storage, so a bad shape means corruption, not client error.
func ParseArmor(armored string) (Algorithm, []byte, []byte, error) {
	rest, ok := strings.CutPrefix(armored, ArmorPrefix)
	if !ok {
		return "", nil, nil, fmt.Errorf("%w: missing armor prefix", ErrDecryptionFailed)
	}

	algStr, encoded, ok := strings.Cut(rest, ":")
	if !ok {
		return "", nil, nil, fmt.Errorf("%w: missing algorithm tag", ErrDecryptionFailed)
	}

	alg := Algorithm(algStr)
	switch alg {
	case AESGCM, ChaCha20:
	default:
		return "", nil, nil, fmt.Errorf("%w: unknown algorithm %q", ErrDecryptionFailed, algStr)
	}

	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: invalid base64 payload", ErrDecryptionFailed)
	}
	if len(payload) < NonceSize {
		return "", nil, nil, fmt.Errorf("%w: payload shorter than nonce", ErrDecryptionFailed)
	}

	return alg, payload[:NonceSize], payload[NonceSize:], nil
}
