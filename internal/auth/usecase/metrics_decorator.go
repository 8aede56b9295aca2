package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
	"github.com/hearthside/hearth/internal/metrics"
)

// twoFactorUseCaseWithMetrics decorates TwoFactorUseCase with metrics
// instrumentation.
type twoFactorUseCaseWithMetrics struct {
	next    TwoFactorUseCase
	metrics metrics.BusinessMetrics
}

// NewTwoFactorUseCaseWithMetrics wraps a TwoFactorUseCase with metrics
// recording.
func NewTwoFactorUseCaseWithMetrics(useCase TwoFactorUseCase, m metrics.BusinessMetrics) TwoFactorUseCase {
	return &twoFactorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *twoFactorUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	t.metrics.RecordOperation(ctx, "auth", operation, status)
	t.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

func (t *twoFactorUseCaseWithMetrics) Setup(
	ctx context.Context,
	userID uuid.UUID,
) (*authDomain.TwoFactorSetup, error) {
	start := time.Now()
	setup, err := t.next.Setup(ctx, userID)
	t.record(ctx, "twofactor_setup", start, err)
	return setup, err
}

func (t *twoFactorUseCaseWithMetrics) Verify(
	ctx context.Context,
	userID uuid.UUID,
	code string,
) error {
	start := time.Now()
	err := t.next.Verify(ctx, userID, code)
	t.record(ctx, "twofactor_verify", start, err)
	return err
}

func (t *twoFactorUseCaseWithMetrics) Disable(ctx context.Context, userID uuid.UUID) error {
	start := time.Now()
	err := t.next.Disable(ctx, userID)
	t.record(ctx, "twofactor_disable", start, err)
	return err
}
