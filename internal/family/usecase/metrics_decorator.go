package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
	"github.com/hearthside/hearth/internal/metrics"
)

// familyUseCaseWithMetrics decorates FamilyUseCase with metrics instrumentation.
type familyUseCaseWithMetrics struct {
	next    FamilyUseCase
	metrics metrics.BusinessMetrics
}

// NewFamilyUseCaseWithMetrics wraps a FamilyUseCase with metrics recording.
func NewFamilyUseCaseWithMetrics(useCase FamilyUseCase, m metrics.BusinessMetrics) FamilyUseCase {
	return &familyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (f *familyUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	f.metrics.RecordOperation(ctx, "family", operation, status)
	f.metrics.RecordDuration(ctx, "family", operation, time.Since(start), status)
}

// Create records metrics for family creation.
func (f *familyUseCaseWithMetrics) Create(
	ctx context.Context,
	name string,
) (*familyDomain.FamilyOutput, error) {
	start := time.Now()
	output, err := f.next.Create(ctx, name)
	f.record(ctx, "family_create", start, err)
	return output, err
}

// Get records metrics for family retrieval.
func (f *familyUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID uuid.UUID,
) (*familyDomain.FamilyOutput, error) {
	start := time.Now()
	output, err := f.next.Get(ctx, familyID)
	f.record(ctx, "family_get", start, err)
	return output, err
}

// Rename records metrics for family renaming.
func (f *familyUseCaseWithMetrics) Rename(
	ctx context.Context,
	familyID uuid.UUID,
	name string,
) (*familyDomain.FamilyOutput, error) {
	start := time.Now()
	output, err := f.next.Rename(ctx, familyID, name)
	f.record(ctx, "family_rename", start, err)
	return output, err
}

// memberUseCaseWithMetrics decorates MemberUseCase with metrics instrumentation.
type memberUseCaseWithMetrics struct {
	next    MemberUseCase
	metrics metrics.BusinessMetrics
}

// NewMemberUseCaseWithMetrics wraps a MemberUseCase with metrics recording.
func NewMemberUseCaseWithMetrics(useCase MemberUseCase, m metrics.BusinessMetrics) MemberUseCase {
	return &memberUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (m *memberUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.metrics.RecordOperation(ctx, "family", operation, status)
	m.metrics.RecordDuration(ctx, "family", operation, time.Since(start), status)
}

// Create records metrics for member creation.
func (m *memberUseCaseWithMetrics) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *familyDomain.MemberInput,
) (*familyDomain.MemberOutput, error) {
	start := time.Now()
	output, err := m.next.Create(ctx, familyID, input)
	m.record(ctx, "member_create", start, err)
	return output, err
}

// Get records metrics for member retrieval.
func (m *memberUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) (*familyDomain.MemberOutput, error) {
	start := time.Now()
	output, err := m.next.Get(ctx, familyID, memberID)
	m.record(ctx, "member_get", start, err)
	return output, err
}

// List records metrics for member listing.
func (m *memberUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts familyDomain.ListOptions,
) ([]*familyDomain.MemberOutput, error) {
	start := time.Now()
	outputs, err := m.next.List(ctx, familyID, opts)
	m.record(ctx, "member_list", start, err)
	return outputs, err
}

// Update records metrics for member updates.
func (m *memberUseCaseWithMetrics) Update(
	ctx context.Context,
	familyID, memberID uuid.UUID,
	input *familyDomain.MemberInput,
) (*familyDomain.MemberOutput, error) {
	start := time.Now()
	output, err := m.next.Update(ctx, familyID, memberID, input)
	m.record(ctx, "member_update", start, err)
	return output, err
}

// Delete records metrics for member deletion.
func (m *memberUseCaseWithMetrics) Delete(ctx context.Context, familyID, memberID uuid.UUID) error {
	start := time.Now()
	err := m.next.Delete(ctx, familyID, memberID)
	m.record(ctx, "member_delete", start, err)
	return err
}
