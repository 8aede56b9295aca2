// Package mocks provides mock implementations of the auth use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
)

// MockTwoFactorUseCase is a mock implementation of usecase.TwoFactorUseCase.
type MockTwoFactorUseCase struct {
	mock.Mock
}

func (m *MockTwoFactorUseCase) Setup(
	ctx context.Context,
	userID uuid.UUID,
) (*authDomain.TwoFactorSetup, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TwoFactorSetup), args.Error(1)
}

func (m *MockTwoFactorUseCase) Verify(
	ctx context.Context,
	userID uuid.UUID,
	code string,
) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}

func (m *MockTwoFactorUseCase) Disable(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
