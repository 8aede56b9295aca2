// Package mocks provides mock implementations of the auth services.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
)

// MockSessionStore is a mock implementation of service.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*authDomain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Session), args.Error(1)
}

// MockTOTPService is a mock implementation of service.TOTPService.
type MockTOTPService struct {
	mock.Mock
}

func (m *MockTOTPService) GenerateSecret() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockTOTPService) Verify(code, secret string, when time.Time) bool {
	args := m.Called(code, secret, when)
	return args.Bool(0)
}

func (m *MockTOTPService) ProvisionURI(account, issuer, secret string) string {
	args := m.Called(account, issuer, secret)
	return args.String(0)
}
