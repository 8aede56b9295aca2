package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/metrics"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input *userDomain.UserInput,
) (*userDomain.UserOutput, error) {
	start := time.Now()
	output, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return output, err
}

func (u *userUseCaseWithMetrics) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.UserOutput, error) {
	start := time.Now()
	output, err := u.next.Get(ctx, userID)
	u.record(ctx, "user_get", start, err)
	return output, err
}

func (u *userUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	email, password string,
) (*userDomain.UserOutput, error) {
	start := time.Now()
	output, err := u.next.Authenticate(ctx, email, password)
	u.record(ctx, "user_authenticate", start, err)
	return output, err
}
