// Package mocks provides mock implementations of the records use case
// interfaces for handler testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// MockAppointmentUseCase is a mock implementation of AppointmentUseCase for testing.
type MockAppointmentUseCase struct {
	mock.Mock
}

func (m *MockAppointmentUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.AppointmentInput,
) (*recordsDomain.AppointmentOutput, error) {
	args := m.Called(ctx, familyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.AppointmentOutput), args.Error(1)
}

func (m *MockAppointmentUseCase) Get(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) (*recordsDomain.AppointmentOutput, error) {
	args := m.Called(ctx, familyID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.AppointmentOutput), args.Error(1)
}

func (m *MockAppointmentUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.AppointmentOutput, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.AppointmentOutput), args.Error(1)
}

func (m *MockAppointmentUseCase) Update(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
	input *recordsDomain.AppointmentInput,
) (*recordsDomain.AppointmentOutput, error) {
	args := m.Called(ctx, familyID, appointmentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.AppointmentOutput), args.Error(1)
}

func (m *MockAppointmentUseCase) Delete(ctx context.Context, familyID, appointmentID uuid.UUID) error {
	args := m.Called(ctx, familyID, appointmentID)
	return args.Error(0)
}

// MockMedicationUseCase is a mock implementation of MedicationUseCase for testing.
type MockMedicationUseCase struct {
	mock.Mock
}

func (m *MockMedicationUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.MedicationInput,
) (*recordsDomain.MedicationOutput, error) {
	args := m.Called(ctx, familyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.MedicationOutput), args.Error(1)
}

func (m *MockMedicationUseCase) Get(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) (*recordsDomain.MedicationOutput, error) {
	args := m.Called(ctx, familyID, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.MedicationOutput), args.Error(1)
}

func (m *MockMedicationUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.MedicationOutput, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.MedicationOutput), args.Error(1)
}

func (m *MockMedicationUseCase) Update(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
	input *recordsDomain.MedicationInput,
) (*recordsDomain.MedicationOutput, error) {
	args := m.Called(ctx, familyID, medicationID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.MedicationOutput), args.Error(1)
}

func (m *MockMedicationUseCase) Delete(ctx context.Context, familyID, medicationID uuid.UUID) error {
	args := m.Called(ctx, familyID, medicationID)
	return args.Error(0)
}

// MockAllergyUseCase is a mock implementation of AllergyUseCase for testing.
type MockAllergyUseCase struct {
	mock.Mock
}

func (m *MockAllergyUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.AllergyInput,
) (*recordsDomain.AllergyOutput, error) {
	args := m.Called(ctx, familyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.AllergyOutput), args.Error(1)
}

func (m *MockAllergyUseCase) Get(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) (*recordsDomain.AllergyOutput, error) {
	args := m.Called(ctx, familyID, allergyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.AllergyOutput), args.Error(1)
}

func (m *MockAllergyUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.AllergyOutput, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.AllergyOutput), args.Error(1)
}

func (m *MockAllergyUseCase) Update(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
	input *recordsDomain.AllergyInput,
) (*recordsDomain.AllergyOutput, error) {
	args := m.Called(ctx, familyID, allergyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.AllergyOutput), args.Error(1)
}

func (m *MockAllergyUseCase) Delete(ctx context.Context, familyID, allergyID uuid.UUID) error {
	args := m.Called(ctx, familyID, allergyID)
	return args.Error(0)
}

// MockConditionUseCase is a mock implementation of ConditionUseCase for testing.
type MockConditionUseCase struct {
	mock.Mock
}

func (m *MockConditionUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.ConditionInput,
) (*recordsDomain.ConditionOutput, error) {
	args := m.Called(ctx, familyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.ConditionOutput), args.Error(1)
}

func (m *MockConditionUseCase) Get(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) (*recordsDomain.ConditionOutput, error) {
	args := m.Called(ctx, familyID, conditionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.ConditionOutput), args.Error(1)
}

func (m *MockConditionUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.ConditionOutput, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.ConditionOutput), args.Error(1)
}

func (m *MockConditionUseCase) Update(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
	input *recordsDomain.ConditionInput,
) (*recordsDomain.ConditionOutput, error) {
	args := m.Called(ctx, familyID, conditionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.ConditionOutput), args.Error(1)
}

func (m *MockConditionUseCase) Delete(ctx context.Context, familyID, conditionID uuid.UUID) error {
	args := m.Called(ctx, familyID, conditionID)
	return args.Error(0)
}

// MockVaccinationUseCase is a mock implementation of VaccinationUseCase for testing.
type MockVaccinationUseCase struct {
	mock.Mock
}

func (m *MockVaccinationUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.VaccinationInput,
) (*recordsDomain.VaccinationOutput, error) {
	args := m.Called(ctx, familyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.VaccinationOutput), args.Error(1)
}

func (m *MockVaccinationUseCase) Get(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) (*recordsDomain.VaccinationOutput, error) {
	args := m.Called(ctx, familyID, vaccinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.VaccinationOutput), args.Error(1)
}

func (m *MockVaccinationUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.VaccinationOutput, error) {
	args := m.Called(ctx, familyID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.VaccinationOutput), args.Error(1)
}

func (m *MockVaccinationUseCase) Update(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
	input *recordsDomain.VaccinationInput,
) (*recordsDomain.VaccinationOutput, error) {
	args := m.Called(ctx, familyID, vaccinationID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.VaccinationOutput), args.Error(1)
}

func (m *MockVaccinationUseCase) Delete(ctx context.Context, familyID, vaccinationID uuid.UUID) error {
	args := m.Called(ctx, familyID, vaccinationID)
	return args.Error(0)
}

// MockNotificationUseCase is a mock implementation of NotificationUseCase for testing.
type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) Notify(
	ctx context.Context,
	familyID uuid.UUID,
	message string,
) (*recordsDomain.NotificationOutput, error) {
	args := m.Called(ctx, familyID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsDomain.NotificationOutput), args.Error(1)
}

func (m *MockNotificationUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*recordsDomain.NotificationOutput, error) {
	args := m.Called(ctx, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordsDomain.NotificationOutput), args.Error(1)
}

func (m *MockNotificationUseCase) MarkRead(ctx context.Context, familyID, notificationID uuid.UUID) error {
	args := m.Called(ctx, familyID, notificationID)
	return args.Error(0)
}
