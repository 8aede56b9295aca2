package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	"github.com/hearthside/hearth/internal/metrics"
)

// familyKeyUseCaseWithMetrics decorates FamilyKeyUseCase with metrics instrumentation.
type familyKeyUseCaseWithMetrics struct {
	next    FamilyKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewFamilyKeyUseCaseWithMetrics wraps a FamilyKeyUseCase with metrics recording.
func NewFamilyKeyUseCaseWithMetrics(useCase FamilyKeyUseCase, m metrics.BusinessMetrics) FamilyKeyUseCase {
	return &familyKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateKeyRecord records metrics for key generation and wrapping.
func (f *familyKeyUseCaseWithMetrics) CreateKeyRecord(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.FamilyKey, *cryptoDomain.KeyHandle, error) {
	start := time.Now()
	familyKey, handle, err := f.next.CreateKeyRecord(ctx, familyID)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "crypto", "family_key_create", status)
	f.metrics.RecordDuration(ctx, "crypto", "family_key_create", time.Since(start), status)

	return familyKey, handle, err
}

// PersistKeyRecord records metrics for key record persistence.
func (f *familyKeyUseCaseWithMetrics) PersistKeyRecord(
	ctx context.Context,
	familyKey *cryptoDomain.FamilyKey,
) error {
	start := time.Now()
	err := f.next.PersistKeyRecord(ctx, familyKey)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "crypto", "family_key_persist", status)
	f.metrics.RecordDuration(ctx, "crypto", "family_key_persist", time.Since(start), status)

	return err
}

// Resolve records metrics for key resolution.
func (f *familyKeyUseCaseWithMetrics) Resolve(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.KeyHandle, error) {
	start := time.Now()
	handle, err := f.next.Resolve(ctx, familyID)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "crypto", "family_key_resolve", status)
	f.metrics.RecordDuration(ctx, "crypto", "family_key_resolve", time.Since(start), status)

	return handle, err
}

// Attach records metrics for key resolution plus hydration.
func (f *familyKeyUseCaseWithMetrics) Attach(
	ctx context.Context,
	familyID uuid.UUID,
	entities ...cryptoDomain.Hydratable,
) (*cryptoDomain.KeyHandle, error) {
	start := time.Now()
	handle, err := f.next.Attach(ctx, familyID, entities...)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "crypto", "family_key_attach", status)
	f.metrics.RecordDuration(ctx, "crypto", "family_key_attach", time.Since(start), status)

	return handle, err
}

// Invalidate passes through to the wrapped use case.
func (f *familyKeyUseCaseWithMetrics) Invalidate(familyID uuid.UUID) {
	f.next.Invalidate(familyID)
}
