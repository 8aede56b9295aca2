package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentInput carries the plaintext values for creating or updating an
// appointment. Optional fields are nil when absent.
type AppointmentInput struct {
	MemberID uuid.UUID
	Title    string
	Doctor   *string
	Location *string
	Notes    *string
	Date     time.Time
}

// AppointmentOutput is the decrypted view of an appointment returned by use cases.
type AppointmentOutput struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Title     string
	Doctor    *string
	Location  *string
	Notes     *string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MedicationInput carries the plaintext values for creating or updating a
// medication.
type MedicationInput struct {
	MemberID  uuid.UUID
	Name      string
	Dosage    *string
	Frequency *string
	StartDate *time.Time
	EndDate   *time.Time
}

// MedicationOutput is the decrypted view of a medication returned by use cases.
type MedicationOutput struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Name      string
	Dosage    *string
	Frequency *string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllergyInput carries the plaintext values for creating or updating an
// allergy.
type AllergyInput struct {
	MemberID uuid.UUID
	Allergen string
	Reaction *string
	Severity string
}

// AllergyOutput is the decrypted view of an allergy returned by use cases.
type AllergyOutput struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Allergen  string
	Reaction  *string
	Severity  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConditionInput carries the plaintext values for creating or updating a
// condition.
type ConditionInput struct {
	MemberID      uuid.UUID
	Name          string
	Notes         *string
	DiagnosedDate *time.Time
	Status        string
}

// ConditionOutput is the decrypted view of a condition returned by use cases.
type ConditionOutput struct {
	ID            uuid.UUID
	FamilyID      uuid.UUID
	MemberID      uuid.UUID
	Name          string
	Notes         *string
	DiagnosedDate *time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VaccinationInput carries the plaintext values for creating or updating a
// vaccination.
type VaccinationInput struct {
	MemberID uuid.UUID
	Name     string
	Notes    *string
	Date     *time.Time
}

// VaccinationOutput is the decrypted view of a vaccination returned by use cases.
type VaccinationOutput struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	MemberID  uuid.UUID
	Name      string
	Notes     *string
	Date      *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListOptions bounds and orders list queries. SortBy names one of the
// entity's plain sortable columns; when empty, repositories keep their
// default ordering.
type ListOptions struct {
	Limit    int
	Offset   int
	SortBy   string
	SortDesc bool
}

// NotificationOutput is the decrypted view of a notification returned by use
// cases.
type NotificationOutput struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
