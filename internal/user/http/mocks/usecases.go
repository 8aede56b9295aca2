// Package mocks provides mock implementations of the user use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// MockUserUseCase is a mock implementation of usecase.UserUseCase.
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Create(
	ctx context.Context,
	input *userDomain.UserInput,
) (*userDomain.UserOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.UserOutput), args.Error(1)
}

func (m *MockUserUseCase) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.UserOutput, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.UserOutput), args.Error(1)
}

func (m *MockUserUseCase) Authenticate(
	ctx context.Context,
	email, password string,
) (*userDomain.UserOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.UserOutput), args.Error(1)
}
