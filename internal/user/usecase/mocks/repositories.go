// Package mocks provides mock implementations of the user repositories.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	outboxDomain "github.com/hearthside/hearth/internal/outbox/domain"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// MockUserRepository is a mock implementation of usecase.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateTwoFactor(
	ctx context.Context,
	user *userDomain.User,
) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockOutboxEventRepository is a mock implementation of
// usecase.OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

func (m *MockOutboxEventRepository) Create(
	ctx context.Context,
	event *outboxDomain.OutboxEvent,
) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
