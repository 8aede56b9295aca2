// Package usecase implements business logic for families and their members:
// creating a family together with its key record, and reading or writing
// member data through the field codec.
package usecase

import (
	"context"

	"github.com/google/uuid"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// FamilyRepository defines the interface for family persistence.
// Operations are transaction-aware through context propagation.
type FamilyRepository interface {
	// Create stores a new family.
	Create(ctx context.Context, family *familyDomain.Family) error

	// GetByID retrieves a family. Returns ErrFamilyNotFound when absent.
	GetByID(ctx context.Context, familyID uuid.UUID) (*familyDomain.Family, error)

	// Update modifies an existing family.
	Update(ctx context.Context, family *familyDomain.Family) error
}

// MemberRepository defines the interface for family member persistence.
// Every query is scoped by family ID; there is no cross-family lookup.
type MemberRepository interface {
	// Create stores a new family member.
	Create(ctx context.Context, member *familyDomain.FamilyMember) error

	// GetByID retrieves a member within a family.
	// Returns ErrMemberNotFound when absent.
	GetByID(ctx context.Context, familyID, memberID uuid.UUID) (*familyDomain.FamilyMember, error)

	// ListByFamilyID retrieves a page of a family's members.
	ListByFamilyID(ctx context.Context, familyID uuid.UUID, opts familyDomain.ListOptions) ([]*familyDomain.FamilyMember, error)

	// Update modifies an existing member.
	Update(ctx context.Context, member *familyDomain.FamilyMember) error

	// Delete removes a member. Returns ErrMemberNotFound when absent.
	Delete(ctx context.Context, familyID, memberID uuid.UUID) error
}

// FamilyUseCase defines the business logic for family management.
type FamilyUseCase interface {
	// Create provisions a new family: a fresh key record wrapped by the key
	// service plus the family row, persisted atomically. The key service call
	// happens before the transaction opens.
	Create(ctx context.Context, name string) (*familyDomain.FamilyOutput, error)

	// Get returns the decrypted view of a family.
	Get(ctx context.Context, familyID uuid.UUID) (*familyDomain.FamilyOutput, error)

	// Rename changes the family's display name.
	Rename(ctx context.Context, familyID uuid.UUID, name string) (*familyDomain.FamilyOutput, error)
}

// MemberUseCase defines the business logic for family member management.
type MemberUseCase interface {
	// Create adds a member to a family.
	Create(ctx context.Context, familyID uuid.UUID, input *familyDomain.MemberInput) (*familyDomain.MemberOutput, error)

	// Get returns the decrypted view of one member.
	Get(ctx context.Context, familyID, memberID uuid.UUID) (*familyDomain.MemberOutput, error)

	// List returns the decrypted views of a page of a family's members.
	List(ctx context.Context, familyID uuid.UUID, opts familyDomain.ListOptions) ([]*familyDomain.MemberOutput, error)

	// Update replaces a member's data.
	Update(ctx context.Context, familyID, memberID uuid.UUID, input *familyDomain.MemberInput) (*familyDomain.MemberOutput, error)

	// Delete removes a member.
	Delete(ctx context.Context, familyID, memberID uuid.UUID) error
}
