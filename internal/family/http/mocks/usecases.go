// Package mocks provides mock implementations for testing family HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// MockFamilyUseCase is a mock implementation of FamilyUseCase for testing.
type MockFamilyUseCase struct {
	mock.Mock
}

// Create mocks the Create method of FamilyUseCase.
func (m *MockFamilyUseCase) Create(ctx context.Context, name string) (*familyDomain.FamilyOutput, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.FamilyOutput), args.Error(1)
}

// Get mocks the Get method of FamilyUseCase.
func (m *MockFamilyUseCase) Get(ctx context.Context, familyID uuid.UUID) (*familyDomain.FamilyOutput, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.FamilyOutput), args.Error(1)
}

// Rename mocks the Rename method of FamilyUseCase.
func (m *MockFamilyUseCase) Rename(
	ctx context.Context,
	familyID uuid.UUID,
	name string,
) (*familyDomain.FamilyOutput, error) {
	args := m.Called(ctx, familyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.FamilyOutput), args.Error(1)
}

// MockMemberUseCase is a mock implementation of MemberUseCase for testing.
type MockMemberUseCase struct {
	mock.Mock
}

// Create mocks the Create method of MemberUseCase.
func (m *MockMemberUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *familyDomain.MemberInput,
) (*familyDomain.MemberOutput, error) {
	args := m.Called(ctx, familyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.MemberOutput), args.Error(1)
}

// Get mocks the Get method of MemberUseCase.
func (m *MockMemberUseCase) Get(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) (*familyDomain.MemberOutput, error) {
	args := m.Called(ctx, familyID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.MemberOutput), args.Error(1)
}

// List mocks the List method of MemberUseCase.
func (m *MockMemberUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts familyDomain.ListOptions,
) ([]*familyDomain.MemberOutput, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*familyDomain.MemberOutput), args.Error(1)
}

// Update mocks the Update method of MemberUseCase.
func (m *MockMemberUseCase) Update(
	ctx context.Context,
	familyID, memberID uuid.UUID,
	input *familyDomain.MemberInput,
) (*familyDomain.MemberOutput, error) {
	args := m.Called(ctx, familyID, memberID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*familyDomain.MemberOutput), args.Error(1)
}

// Delete mocks the Delete method of MemberUseCase.
func (m *MockMemberUseCase) Delete(ctx context.Context, familyID, memberID uuid.UUID) error {
	args := m.Called(ctx, familyID, memberID)
	return args.Error(0)
}
