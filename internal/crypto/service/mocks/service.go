// Package mocks provides mock implementations of the crypto service
// interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDekManager is a mock implementation of DekManager for testing.
type MockDekManager struct {
	mock.Mock
}

// GenerateAndWrap mocks the GenerateAndWrap method of DekManager.
// The key is returned as a fresh copy per call, like the real manager,
// so callers zeroing their handle do not corrupt the configured value.
func (m *MockDekManager) GenerateAndWrap(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return copyBytes(args.Get(0).([]byte)), args.String(1), args.Error(2)
}

// Unwrap mocks the Unwrap method of DekManager.
// The key is returned as a fresh copy per call, like the real manager.
func (m *MockDekManager) Unwrap(ctx context.Context, wrapped string) ([]byte, error) {
	args := m.Called(ctx, wrapped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return copyBytes(args.Get(0).([]byte)), args.Error(1)
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// MockKeyWrapper is a mock implementation of KeyWrapper for testing.
type MockKeyWrapper struct {
	mock.Mock
}

// Wrap mocks the Wrap method of KeyWrapper.
func (m *MockKeyWrapper) Wrap(ctx context.Context, key []byte) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// Unwrap mocks the Unwrap method of KeyWrapper.
func (m *MockKeyWrapper) Unwrap(ctx context.Context, wrapped string) ([]byte, error) {
	args := m.Called(ctx, wrapped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return copyBytes(args.Get(0).([]byte)), args.Error(1)
}
