// Package mocks provides mock implementations of the records repository and
// use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository for testing.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *recordsDomain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) (*recordsDomain.Appointment, error) {
	args := m.Called(ctx, familyID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Appointment, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *recordsDomain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, familyID, appointmentID uuid.UUID) error {
	args := m.Called(ctx, familyID, appointmentID)
	return args.Error(0)
}

// MockMedicationRepository is a mock implementation of MedicationRepository for testing.
type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) Create(ctx context.Context, medication *recordsDomain.Medication) error {
	args := m.Called(ctx, medication)
	return args.Error(0)
}

func (m *MockMedicationRepository) GetByID(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) (*recordsDomain.Medication, error) {
	args := m.Called(ctx, familyID, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Medication), args.Error(1)
}

func (m *MockMedicationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Medication, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Medication), args.Error(1)
}

func (m *MockMedicationRepository) Update(ctx context.Context, medication *recordsDomain.Medication) error {
	args := m.Called(ctx, medication)
	return args.Error(0)
}

func (m *MockMedicationRepository) Delete(ctx context.Context, familyID, medicationID uuid.UUID) error {
	args := m.Called(ctx, familyID, medicationID)
	return args.Error(0)
}

// MockAllergyRepository is a mock implementation of AllergyRepository for testing.
type MockAllergyRepository struct {
	mock.Mock
}

func (m *MockAllergyRepository) Create(ctx context.Context, allergy *recordsDomain.Allergy) error {
	args := m.Called(ctx, allergy)
	return args.Error(0)
}

func (m *MockAllergyRepository) GetByID(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) (*recordsDomain.Allergy, error) {
	args := m.Called(ctx, familyID, allergyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Allergy), args.Error(1)
}

func (m *MockAllergyRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Allergy, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Allergy), args.Error(1)
}

func (m *MockAllergyRepository) Update(ctx context.Context, allergy *recordsDomain.Allergy) error {
	args := m.Called(ctx, allergy)
	return args.Error(0)
}

func (m *MockAllergyRepository) Delete(ctx context.Context, familyID, allergyID uuid.UUID) error {
	args := m.Called(ctx, familyID, allergyID)
	return args.Error(0)
}

// MockConditionRepository is a mock implementation of ConditionRepository for testing.
type MockConditionRepository struct {
	mock.Mock
}

func (m *MockConditionRepository) Create(ctx context.Context, condition *recordsDomain.Condition) error {
	args := m.Called(ctx, condition)
	return args.Error(0)
}

func (m *MockConditionRepository) GetByID(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) (*recordsDomain.Condition, error) {
	args := m.Called(ctx, familyID, conditionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Condition), args.Error(1)
}

func (m *MockConditionRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Condition, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Condition), args.Error(1)
}

func (m *MockConditionRepository) Update(ctx context.Context, condition *recordsDomain.Condition) error {
	args := m.Called(ctx, condition)
	return args.Error(0)
}

func (m *MockConditionRepository) Delete(ctx context.Context, familyID, conditionID uuid.UUID) error {
	args := m.Called(ctx, familyID, conditionID)
	return args.Error(0)
}

// MockVaccinationRepository is a mock implementation of VaccinationRepository for testing.
type MockVaccinationRepository struct {
	mock.Mock
}

func (m *MockVaccinationRepository) Create(ctx context.Context, vaccination *recordsDomain.Vaccination) error {
	args := m.Called(ctx, vaccination)
	return args.Error(0)
}

func (m *MockVaccinationRepository) GetByID(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) (*recordsDomain.Vaccination, error) {
	args := m.Called(ctx, familyID, vaccinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Vaccination, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) Update(ctx context.Context, vaccination *recordsDomain.Vaccination) error {
	args := m.Called(ctx, vaccination)
	return args.Error(0)
}

func (m *MockVaccinationRepository) Delete(ctx context.Context, familyID, vaccinationID uuid.UUID) error {
	args := m.Called(ctx, familyID, vaccinationID)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository for testing.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *recordsDomain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*recordsDomain.Notification, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, familyID, notificationID uuid.UUID) error {
	args := m.Called(ctx, familyID, notificationID)
	return args.Error(0)
}
