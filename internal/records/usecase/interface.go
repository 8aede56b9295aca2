// Package usecase implements business logic for health records: reading and
// writing appointments, medications, allergies, conditions, vaccinations and
// notifications through the field codec under the owning family's key.
package usecase

import (
	"context"

	"github.com/google/uuid"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// AppointmentRepository defines the interface for appointment persistence.
// Every query is scoped by family ID; there is no cross-family lookup.
type AppointmentRepository interface {
	// Create stores a new appointment.
	Create(ctx context.Context, appointment *recordsDomain.Appointment) error

	// GetByID retrieves an appointment within a family.
	// Returns ErrAppointmentNotFound when absent.
	GetByID(ctx context.Context, familyID, appointmentID uuid.UUID) (*recordsDomain.Appointment, error)

	// ListByFamilyID retrieves a page of a family's appointments.
	ListByFamilyID(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.Appointment, error)

	// Update modifies an existing appointment.
	Update(ctx context.Context, appointment *recordsDomain.Appointment) error

	// Delete removes an appointment. Returns ErrAppointmentNotFound when absent.
	Delete(ctx context.Context, familyID, appointmentID uuid.UUID) error
}

// MedicationRepository defines the interface for medication persistence.
type MedicationRepository interface {
	Create(ctx context.Context, medication *recordsDomain.Medication) error
	GetByID(ctx context.Context, familyID, medicationID uuid.UUID) (*recordsDomain.Medication, error)
	ListByFamilyID(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.Medication, error)
	Update(ctx context.Context, medication *recordsDomain.Medication) error
	Delete(ctx context.Context, familyID, medicationID uuid.UUID) error
}

// AllergyRepository defines the interface for allergy persistence.
type AllergyRepository interface {
	Create(ctx context.Context, allergy *recordsDomain.Allergy) error
	GetByID(ctx context.Context, familyID, allergyID uuid.UUID) (*recordsDomain.Allergy, error)
	ListByFamilyID(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.Allergy, error)
	Update(ctx context.Context, allergy *recordsDomain.Allergy) error
	Delete(ctx context.Context, familyID, allergyID uuid.UUID) error
}

// ConditionRepository defines the interface for condition persistence.
type ConditionRepository interface {
	Create(ctx context.Context, condition *recordsDomain.Condition) error
	GetByID(ctx context.Context, familyID, conditionID uuid.UUID) (*recordsDomain.Condition, error)
	ListByFamilyID(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.Condition, error)
	Update(ctx context.Context, condition *recordsDomain.Condition) error
	Delete(ctx context.Context, familyID, conditionID uuid.UUID) error
}

// AppointmentUseCase defines the business logic for appointment management.
type AppointmentUseCase interface {
	// Create adds an appointment for a family member.
	Create(ctx context.Context, familyID uuid.UUID, input *recordsDomain.AppointmentInput) (*recordsDomain.AppointmentOutput, error)

	// Get returns the decrypted view of one appointment.
	Get(ctx context.Context, familyID, appointmentID uuid.UUID) (*recordsDomain.AppointmentOutput, error)

	// List returns the decrypted views of a page of a family's appointments.
	List(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.AppointmentOutput, error)

	// Update replaces an appointment's data.
	Update(ctx context.Context, familyID, appointmentID uuid.UUID, input *recordsDomain.AppointmentInput) (*recordsDomain.AppointmentOutput, error)

	// Delete removes an appointment.
	Delete(ctx context.Context, familyID, appointmentID uuid.UUID) error
}

// MedicationUseCase defines the business logic for medication management.
type MedicationUseCase interface {
	Create(ctx context.Context, familyID uuid.UUID, input *recordsDomain.MedicationInput) (*recordsDomain.MedicationOutput, error)
	Get(ctx context.Context, familyID, medicationID uuid.UUID) (*recordsDomain.MedicationOutput, error)
	List(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.MedicationOutput, error)
	Update(ctx context.Context, familyID, medicationID uuid.UUID, input *recordsDomain.MedicationInput) (*recordsDomain.MedicationOutput, error)
	Delete(ctx context.Context, familyID, medicationID uuid.UUID) error
}

// AllergyUseCase defines the business logic for allergy management.
type AllergyUseCase interface {
	Create(ctx context.Context, familyID uuid.UUID, input *recordsDomain.AllergyInput) (*recordsDomain.AllergyOutput, error)
	Get(ctx context.Context, familyID, allergyID uuid.UUID) (*recordsDomain.AllergyOutput, error)
	List(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.AllergyOutput, error)
	Update(ctx context.Context, familyID, allergyID uuid.UUID, input *recordsDomain.AllergyInput) (*recordsDomain.AllergyOutput, error)
	Delete(ctx context.Context, familyID, allergyID uuid.UUID) error
}

// ConditionUseCase defines the business logic for condition management.
type ConditionUseCase interface {
	Create(ctx context.Context, familyID uuid.UUID, input *recordsDomain.ConditionInput) (*recordsDomain.ConditionOutput, error)
	Get(ctx context.Context, familyID, conditionID uuid.UUID) (*recordsDomain.ConditionOutput, error)
	List(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.ConditionOutput, error)
	Update(ctx context.Context, familyID, conditionID uuid.UUID, input *recordsDomain.ConditionInput) (*recordsDomain.ConditionOutput, error)
	Delete(ctx context.Context, familyID, conditionID uuid.UUID) error
}

// VaccinationRepository defines the interface for vaccination persistence.
type VaccinationRepository interface {
	Create(ctx context.Context, vaccination *recordsDomain.Vaccination) error
	GetByID(ctx context.Context, familyID, vaccinationID uuid.UUID) (*recordsDomain.Vaccination, error)
	ListByFamilyID(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.Vaccination, error)
	Update(ctx context.Context, vaccination *recordsDomain.Vaccination) error
	Delete(ctx context.Context, familyID, vaccinationID uuid.UUID) error
}

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, notification *recordsDomain.Notification) error

	// ListByFamilyID retrieves all notifications of a family, newest first.
	ListByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*recordsDomain.Notification, error)

	// MarkRead flags a notification as read. Returns ErrNotificationNotFound
	// when absent.
	MarkRead(ctx context.Context, familyID, notificationID uuid.UUID) error
}

// VaccinationUseCase defines the business logic for vaccination management.
type VaccinationUseCase interface {
	Create(ctx context.Context, familyID uuid.UUID, input *recordsDomain.VaccinationInput) (*recordsDomain.VaccinationOutput, error)
	Get(ctx context.Context, familyID, vaccinationID uuid.UUID) (*recordsDomain.VaccinationOutput, error)
	List(ctx context.Context, familyID uuid.UUID, opts recordsDomain.ListOptions) ([]*recordsDomain.VaccinationOutput, error)
	Update(ctx context.Context, familyID, vaccinationID uuid.UUID, input *recordsDomain.VaccinationInput) (*recordsDomain.VaccinationOutput, error)
	Delete(ctx context.Context, familyID, vaccinationID uuid.UUID) error
}

// NotificationUseCase defines the business logic for family notifications.
type NotificationUseCase interface {
	// Notify stores an encrypted notification for the family.
	Notify(ctx context.Context, familyID uuid.UUID, message string) (*recordsDomain.NotificationOutput, error)

	// List returns the decrypted views of a family's notifications, newest
	// first.
	List(ctx context.Context, familyID uuid.UUID) ([]*recordsDomain.NotificationOutput, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, familyID, notificationID uuid.UUID) error
}
