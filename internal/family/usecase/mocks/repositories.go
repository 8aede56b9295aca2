// Package mocks provides mock implementations of the family repository
// interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// MockFamilyRepository is a mock implementation of FamilyRepository for testing.
type MockFamilyRepository struct {
	mock.Mock
}

// Create mocks the Create method of FamilyRepository.
func (m *MockFamilyRepository) Create(ctx context.Context, family *familyDomain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

// GetByID mocks the GetByID method of FamilyRepository.
func (m *MockFamilyRepository) GetByID(
	ctx context.Context,
	familyID uuid.UUID,
) (*familyDomain.Family, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.Family), args.Error(1)
}

// Update mocks the Update method of FamilyRepository.
func (m *MockFamilyRepository) Update(ctx context.Context, family *familyDomain.Family) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

// MockMemberRepository is a mock implementation of MemberRepository for testing.
type MockMemberRepository struct {
	mock.Mock
}

// Create mocks the Create method of MemberRepository.
func (m *MockMemberRepository) Create(ctx context.Context, member *familyDomain.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// GetByID mocks the GetByID method of MemberRepository.
func (m *MockMemberRepository) GetByID(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) (*familyDomain.FamilyMember, error) {
	args := m.Called(ctx, familyID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.FamilyMember), args.Error(1)
}

// ListByFamilyID mocks the ListByFamilyID method of MemberRepository.
func (m *MockMemberRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts familyDomain.ListOptions,
) ([]*familyDomain.FamilyMember, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*familyDomain.FamilyMember), args.Error(1)
}

// Update mocks the Update method of MemberRepository.
func (m *MockMemberRepository) Update(ctx context.Context, member *familyDomain.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// Delete mocks the Delete method of MemberRepository.
func (m *MockMemberRepository) Delete(ctx context.Context, familyID, memberID uuid.UUID) error {
	args := m.Called(ctx, familyID, memberID)
	return args.Error(0)
}
