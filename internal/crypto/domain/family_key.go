// Package domain defines the core domain models for the field-level envelope
// encryption engine.
//
// Every family (the tenant boundary) owns exactly one Data Encryption Key.
// The DEK is generated locally, wrapped by a Key Encryption Key held in an
// external key service, and persisted only in its wrapped form. Sensitive
// entity fields are encrypted under the plaintext DEK, which lives in memory
// only for the duration of a request.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// FamilyKey is the persisted encryption key record for one family.
//
// Created exactly once, in the same transaction as the family row, and
// cascade-deleted with it. The wrapped DEK is never updated in place: key
// rotation would require a new record plus re-encryption of every sensitive
// column, which is intentionally not implemented.
type FamilyKey struct {
	// FamilyID identifies the owning family; unique per record.
	FamilyID uuid.UUID
	// WrappedDek is the DEK encrypted under the external KEK, base64 encoded.
	// Opaque to everything except the key service that wrapped it.
	WrappedDek string
	// CreatedAt is the UTC timestamp when the record was provisioned.
	CreatedAt time.Time
}
