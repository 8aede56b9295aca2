// Package mocks provides mock implementations of the family key interfaces
// for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// MockFamilyKeyRepository is a mock implementation of FamilyKeyRepository for testing.
type MockFamilyKeyRepository struct {
	mock.Mock
}

// Create mocks the Create method of FamilyKeyRepository.
func (m *MockFamilyKeyRepository) Create(ctx context.Context, familyKey *cryptoDomain.FamilyKey) error {
	args := m.Called(ctx, familyKey)
	return args.Error(0)
}

// GetByFamilyID mocks the GetByFamilyID method of FamilyKeyRepository.
func (m *MockFamilyKeyRepository) GetByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.FamilyKey, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.FamilyKey), args.Error(1)
}

// MockFamilyKeyUseCase is a mock implementation of FamilyKeyUseCase for testing.
type MockFamilyKeyUseCase struct {
	mock.Mock
}

// CreateKeyRecord mocks the CreateKeyRecord method of FamilyKeyUseCase.
func (m *MockFamilyKeyUseCase) CreateKeyRecord(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.FamilyKey, *cryptoDomain.KeyHandle, error) {
	args := m.Called(ctx, familyID)
	var familyKey *cryptoDomain.FamilyKey
	if args.Get(0) != nil {
		familyKey = args.Get(0).(*cryptoDomain.FamilyKey)
	}
	var handle *cryptoDomain.KeyHandle
	if args.Get(1) != nil {
		handle = args.Get(1).(*cryptoDomain.KeyHandle)
	}
	return familyKey, handle, args.Error(2)
}

// PersistKeyRecord mocks the PersistKeyRecord method of FamilyKeyUseCase.
func (m *MockFamilyKeyUseCase) PersistKeyRecord(
	ctx context.Context,
	familyKey *cryptoDomain.FamilyKey,
) error {
	args := m.Called(ctx, familyKey)
	return args.Error(0)
}

// Resolve mocks the Resolve method of FamilyKeyUseCase.
func (m *MockFamilyKeyUseCase) Resolve(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.KeyHandle, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.KeyHandle), args.Error(1)
}

// Attach mocks the Attach method of FamilyKeyUseCase.
func (m *MockFamilyKeyUseCase) Attach(
	ctx context.Context,
	familyID uuid.UUID,
	entities ...cryptoDomain.Hydratable,
) (*cryptoDomain.KeyHandle, error) {
	callArgs := make([]any, 0, len(entities)+2)
	callArgs = append(callArgs, ctx, familyID)
	for _, e := range entities {
		callArgs = append(callArgs, e)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.KeyHandle), args.Error(1)
}

// Invalidate mocks the Invalidate method of FamilyKeyUseCase.
func (m *MockFamilyKeyUseCase) Invalidate(familyID uuid.UUID) {
	m.Called(familyID)
}
