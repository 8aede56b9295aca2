package domain

import (
	"github.com/google/uuid"
)

// EncryptedString holds the stored ciphertext of one sensitive column.
//
// Entity structs embed one EncryptedString per sensitive field. The plaintext
// is only reachable through the field codec, which requires the owning
// entity's attached key handle, so an unhydrated entity structurally cannot
// leak ciphertext as if it were data.
type EncryptedString struct {
	ciphertext *string
}

// Ciphertext returns the stored armored value, or nil for an absent optional
// field. Intended for repositories writing the column.
func (e *EncryptedString) Ciphertext() *string {
	return e.ciphertext
}

// SetCiphertext installs a stored armored value. Intended for repositories
// scanning the column and for the field codec.
func (e *EncryptedString) SetCiphertext(ciphertext *string) {
	e.ciphertext = ciphertext
}

// KeyAttachment carries the per-instance key association for one entity.
// Embed it in every struct with encrypted fields; the hydration protocol
// fills it once per unit of work via Attach.
//
// The attachment is part of the entity value itself, never class-level or
// global state, so a freshly loaded or constructed entity always starts
// unattached and fails fast on sensitive-field access.
type KeyAttachment struct {
	handle *KeyHandle
}

// AttachKey associates a resolved key handle with this entity instance.
func (a *KeyAttachment) AttachKey(h *KeyHandle) {
	a.handle = h
}

// Key returns the attached handle, or nil if the entity is not hydrated.
func (a *KeyAttachment) Key() *KeyHandle {
	return a.handle
}

// Hydratable is implemented by every entity that participates in the
// hydration protocol.
type Hydratable interface {
	// OwnerFamilyID returns the family the entity belongs to.
	OwnerFamilyID() uuid.UUID
	// AttachKey associates a resolved key handle with the instance.
	AttachKey(h *KeyHandle)
	// Key returns the attached handle, nil when unattached.
	Key() *KeyHandle
}

// EncryptedEntity is a Hydratable exposing its sensitive fields by name,
// which gives the codec (and tests) uniform access to every encrypted column
// of every entity type.
type EncryptedEntity interface {
	Hydratable
	// SensitiveFields maps domain field names to their ciphertext holders.
	// The returned map must reference the entity's own fields, not copies.
	SensitiveFields() map[string]*EncryptedString
}

// Attach associates a resolved key handle with one or more entity instances
// for the current unit of work.
//
// Every entity must belong to the handle's family; a mismatch fails with
// ErrKeyFamilyMismatch before any entity is touched, so a request for family
// A can never read or write family B's fields. Entities obtained by a later
// reload do not carry the association and must be re-attached.
func Attach(h *KeyHandle, entities ...Hydratable) error {
	if h == nil || h.Bytes() == nil {
		return ErrKeyNotAttached
	}
	for _, e := range entities {
		if e.OwnerFamilyID() != h.FamilyID() {
			return ErrKeyFamilyMismatch
		}
	}
	for _, e := range entities {
		e.AttachKey(h)
	}
	return nil
}
