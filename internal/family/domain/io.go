package domain

import (
	"time"

	"github.com/google/uuid"
)

// FamilyOutput is the decrypted view of a family returned by use cases.
type FamilyOutput struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberInput carries the plaintext values for creating or updating a family
// member. Optional fields are nil when absent.
type MemberInput struct {
	FirstName   string
	LastName    string
	Relation    *string
	BloodType   *string
	PhoneNumber *string
	BirthDate   *time.Time
	Gender      string
}

// ListOptions bounds and orders member list queries. SortBy names one of the
// plain sortable columns; when empty, repositories keep their default
// ordering.
type ListOptions struct {
	Limit    int
	Offset   int
	SortBy   string
	SortDesc bool
}

// MemberOutput is the decrypted view of a family member returned by use cases.
type MemberOutput struct {
	ID          uuid.UUID
	FamilyID    uuid.UUID
	FirstName   string
	LastName    string
	Relation    *string
	BloodType   *string
	PhoneNumber *string
	BirthDate   *time.Time
	Gender      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
