package domain

import (
	"github.com/hearthside/hearth/internal/errors"
)

// Cryptographic operation error definitions.
//
// Errors wrapping a sentinel from internal/errors are mapped to client-facing
// HTTP status codes by the error handling layer. The remaining errors are
// deliberately left unwrapped: they indicate server-side faults (corrupted
// ciphertext, missing key material, programming errors in the hydration
// protocol) and must surface as generic 5xx responses, never as empty data.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not
	// supported. Supported algorithms: AESGCM (AES-256-GCM), ChaCha20
	// (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key is not exactly 32 bytes (256 bits).
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrKeyServiceUnavailable indicates the external key-management service
	// could not be reached or refused the credentials. Transient: the caller
	// may retry the whole request. No retry loop lives inside this package.
	ErrKeyServiceUnavailable = errors.Wrap(errors.ErrUnavailable, "key service unavailable")

	// ErrKekNotFound indicates the named key-encryption key does not exist in
	// the external key service. A configuration issue, fatal to the request;
	// the caller must never fall back to plaintext.
	ErrKekNotFound = errors.New("key encryption key not found")

	// ErrUnwrapFailed indicates a wrapped DEK is malformed or was wrapped
	// under a different or rotated KEK. Fatal to the request.
	ErrUnwrapFailed = errors.New("failed to unwrap data encryption key")

	// ErrDecryptionFailed indicates a field ciphertext failed authentication:
	// wrong key, tampering, or corrupted data. The specific cause is not
	// disclosed. Fatal to the single field or record; never downgraded to an
	// empty value.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrKeyNotAttached indicates a sensitive field was accessed on an entity
	// that has not been hydrated with its family key. This is a server bug in
	// the request's hydration path, not a client error.
	ErrKeyNotAttached = errors.New("encryption key not attached to entity")

	// ErrKeyFamilyMismatch indicates an attempt to attach a key handle to an
	// entity belonging to a different family. Cross-family key attachment is
	// the critical invariant the hydration protocol exists to prevent.
	ErrKeyFamilyMismatch = errors.New("key handle belongs to a different family")

	// ErrMissingKeyRecord indicates a family has no persisted wrapped DEK.
	// Key records are created atomically with the family, so this points at
	// data corruption or a partial provisioning failure.
	ErrMissingKeyRecord = errors.New("family has no encryption key record")

	// ErrUnknownSensitiveField indicates a codec operation named a field that
	// is not in the entity's sensitive-field registry.
	ErrUnknownSensitiveField = errors.New("unknown sensitive field")
)
