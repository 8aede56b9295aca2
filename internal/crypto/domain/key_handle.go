package domain

import (
	"github.com/google/uuid"
)

// KeyHandle is an opaque handle around a family's plaintext DEK, produced by
// resolving (unwrapping) the family's key record for one unit of work.
//
// A handle is scoped to the request that resolved it: concurrent requests for
// the same family each resolve their own handle, and a handle is never shared
// as mutable global state. Call Close when the unit of work finishes to zero
// the key material (best effort; the runtime may have made copies).
//
// The zero value is unusable; construct handles with NewKeyHandle only.
type KeyHandle struct {
	familyID uuid.UUID
	key      []byte
}

// NewKeyHandle wraps a plaintext DEK for the given family. The key must be
// exactly KeySize bytes. The handle takes ownership of the slice; callers
// must not retain or reuse it.
func NewKeyHandle(familyID uuid.UUID, key []byte) (*KeyHandle, error) {
	if familyID == uuid.Nil {
		return nil, ErrKeyFamilyMismatch
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return &KeyHandle{familyID: familyID, key: key}, nil
}

// FamilyID returns the family this handle's key belongs to.
func (h *KeyHandle) FamilyID() uuid.UUID {
	return h.familyID
}

// Bytes exposes the plaintext key material for cipher construction.
// Never persist or log the returned slice.
func (h *KeyHandle) Bytes() []byte {
	return h.key
}

// Close zeroes the key material. The handle is unusable afterwards.
func (h *KeyHandle) Close() {
	Zero(h.key)
	h.key = nil
}
