// Package usecase orchestrates family key lifecycle: creating and persisting
// wrapped key records, resolving them into request-scoped key handles through
// the external key service, and attaching handles to entities.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// FamilyKeyRepository defines the interface for family key record persistence.
//
// Operations are transaction-aware through context propagation (via
// database.GetTx), so persisting a key record can share a transaction with
// the creation of the family that owns it.
type FamilyKeyRepository interface {
	// Create stores a new family key record. Fails on a duplicate family ID:
	// a family has exactly one key record.
	Create(ctx context.Context, familyKey *cryptoDomain.FamilyKey) error

	// GetByFamilyID retrieves the key record for a family.
	// Returns apperrors.ErrNotFound when the family has no record.
	GetByFamilyID(ctx context.Context, familyID uuid.UUID) (*cryptoDomain.FamilyKey, error)
}

// FamilyKeyUseCase defines the business logic for family key management.
//
// Key record creation is split in two: CreateKeyRecord talks to the external
// key service and must run before any database transaction opens, while
// PersistKeyRecord only writes rows and joins the caller's transaction. This
// keeps slow, fallible key-service calls out of open transactions.
type FamilyKeyUseCase interface {
	// CreateKeyRecord generates a fresh DEK for the family and wraps it via
	// the key service, without persisting anything. The returned handle gives
	// the caller immediate use of the new key (for example to encrypt the
	// family's own fields); the caller must Close it when done.
	CreateKeyRecord(ctx context.Context, familyID uuid.UUID) (*cryptoDomain.FamilyKey, *cryptoDomain.KeyHandle, error)

	// PersistKeyRecord stores a record produced by CreateKeyRecord,
	// participating in any transaction carried by ctx.
	PersistKeyRecord(ctx context.Context, familyKey *cryptoDomain.FamilyKey) error

	// Resolve loads the family's key record, unwraps the DEK through the key
	// service, and returns a request-scoped handle. The caller must Close it.
	// Fails with ErrMissingKeyRecord when the family has no record, or with
	// the unwrap error taxonomy when the key service fails.
	Resolve(ctx context.Context, familyID uuid.UUID) (*cryptoDomain.KeyHandle, error)

	// Attach resolves the family's key and attaches it to the given entities.
	// Every entity must belong to familyID. The caller must Close the
	// returned handle when the unit of work finishes.
	Attach(ctx context.Context, familyID uuid.UUID, entities ...cryptoDomain.Hydratable) (*cryptoDomain.KeyHandle, error)

	// Invalidate drops any cached key material for the family. Call after
	// key-service configuration changes or when evicting a family.
	Invalidate(familyID uuid.UUID)
}
