package usecase_test

import (
	"context"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	serviceMocks "github.com/hearthside/hearth/internal/crypto/service/mocks"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	cryptoUsecaseMocks "github.com/hearthside/hearth/internal/crypto/usecase/mocks"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
	"github.com/hearthside/hearth/internal/records/usecase"
	recordsMocks "github.com/hearthside/hearth/internal/records/usecase/mocks"
)

// testStack wires a real field codec and family key use case over mocked
// persistence and key service, so tests exercise real encryption end to end.
type testStack struct {
	appointmentRepo  *recordsMocks.MockAppointmentRepository
	medicationRepo   *recordsMocks.MockMedicationRepository
	allergyRepo      *recordsMocks.MockAllergyRepository
	conditionRepo    *recordsMocks.MockConditionRepository
	vaccinationRepo  *recordsMocks.MockVaccinationRepository
	notificationRepo *recordsMocks.MockNotificationRepository
	familyKeyRepo    *cryptoUsecaseMocks.MockFamilyKeyRepository
	dekManager       *serviceMocks.MockDekManager
	fieldCodec       *cryptoService.FieldCodec
	keyUseCase       cryptoUsecase.FamilyKeyUseCase
	dek              []byte
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	dek := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(dek)
	require.NoError(t, err)

	fieldCodec, err := cryptoService.NewFieldCodec(cryptoService.NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)

	stack := &testStack{
		appointmentRepo:  &recordsMocks.MockAppointmentRepository{},
		medicationRepo:   &recordsMocks.MockMedicationRepository{},
		allergyRepo:      &recordsMocks.MockAllergyRepository{},
		conditionRepo:    &recordsMocks.MockConditionRepository{},
		vaccinationRepo:  &recordsMocks.MockVaccinationRepository{},
		notificationRepo: &recordsMocks.MockNotificationRepository{},
		familyKeyRepo:    &cryptoUsecaseMocks.MockFamilyKeyRepository{},
		dekManager:       &serviceMocks.MockDekManager{},
		fieldCodec:       fieldCodec,
		dek:              dek,
	}
	stack.keyUseCase = cryptoUsecase.NewFamilyKeyUseCase(stack.familyKeyRepo, stack.dekManager, 0)
	return stack
}

// expectResolve configures the key record lookup and unwrap for a family.
func (s *testStack) expectResolve(familyID uuid.UUID) {
	s.familyKeyRepo.On("GetByFamilyID", mock.Anything, familyID).Return(&cryptoDomain.FamilyKey{
		FamilyID:   familyID,
		WrappedDek: "wrapped-dek",
		CreatedAt:  time.Now().UTC(),
	}, nil)
	s.dekManager.On("Unwrap", mock.Anything, "wrapped-dek").Return(s.dek, nil)
}

// seal encrypts an entity's sensitive fields as a stored row would carry them,
// then detaches the key so tests observe hydration from scratch.
func (s *testStack) seal(t *testing.T, entity cryptoDomain.EncryptedEntity, values map[string]string) {
	t.Helper()
	key := make([]byte, len(s.dek))
	copy(key, s.dek)
	handle, err := cryptoDomain.NewKeyHandle(entity.OwnerFamilyID(), key)
	require.NoError(t, err)
	defer handle.Close()

	require.NoError(t, cryptoDomain.Attach(handle, entity))
	for field, value := range values {
		plaintext := value
		require.NoError(t, s.fieldCodec.SetField(entity, field, &plaintext))
	}
	entity.AttachKey(nil)
}

func appointmentInput(memberID uuid.UUID) *recordsDomain.AppointmentInput {
	doctor := "Dr. Moreira"
	location := "Clinica Central, room 204"
	return &recordsDomain.AppointmentInput{
		MemberID: memberID,
		Title:    "Cardiology follow-up",
		Doctor:   &doctor,
		Location: &location,
		Date:     time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC),
	}
}

func TestAppointmentUseCase_Create(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())
	memberID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		stack := newTestStack(t)
		stack.expectResolve(familyID)

		var stored *recordsDomain.Appointment
		stack.appointmentRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*recordsDomain.Appointment)
			}).
			Return(nil)

		useCase := usecase.NewAppointmentUseCase(stack.appointmentRepo, stack.keyUseCase, stack.fieldCodec)
		output, err := useCase.Create(ctx, familyID, appointmentInput(memberID))
		require.NoError(t, err)

		assert.Equal(t, "Cardiology follow-up", output.Title)
		require.NotNil(t, output.Doctor)
		assert.Equal(t, "Dr. Moreira", *output.Doctor)
		assert.Nil(t, output.Notes)
		assert.Equal(t, memberID, output.MemberID)

		// The stored row carries armored ciphertext, never the plaintext.
		require.NotNil(t, stored)
		title := stored.Title.Ciphertext()
		require.NotNil(t, title)
		assert.True(t, strings.HasPrefix(*title, cryptoDomain.ArmorPrefix))
		assert.NotContains(t, *title, "Cardiology follow-up")
		assert.Nil(t, stored.Notes.Ciphertext())
	})

	t.Run("MissingKeyRecordSkipsPersistence", func(t *testing.T) {
		stack := newTestStack(t)
		stack.familyKeyRepo.On("GetByFamilyID", mock.Anything, familyID).
			Return(nil, recordsDomain.ErrAppointmentNotFound)

		useCase := usecase.NewAppointmentUseCase(stack.appointmentRepo, stack.keyUseCase, stack.fieldCodec)
		_, err := useCase.Create(ctx, familyID, appointmentInput(memberID))
		assert.ErrorIs(t, err, cryptoDomain.ErrMissingKeyRecord)
		stack.appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUseCase_List(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())

	stack := newTestStack(t)
	first := &recordsDomain.Appointment{
		ID:       uuid.Must(uuid.NewV7()),
		FamilyID: familyID,
		MemberID: uuid.Must(uuid.NewV7()),
		Date:     time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC),
	}
	stack.seal(t, first, map[string]string{"title": "Dentist cleaning"})

	second := &recordsDomain.Appointment{
		ID:       uuid.Must(uuid.NewV7()),
		FamilyID: familyID,
		MemberID: uuid.Must(uuid.NewV7()),
		Date:     time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC),
	}
	stack.seal(t, second, map[string]string{"title": "Cardiology follow-up", "notes": "bring previous ECG"})

	opts := recordsDomain.ListOptions{SortBy: "date"}
	stack.appointmentRepo.On("ListByFamilyID", mock.Anything, familyID, opts).
		Return([]*recordsDomain.Appointment{first, second}, nil)
	stack.expectResolve(familyID)

	useCase := usecase.NewAppointmentUseCase(stack.appointmentRepo, stack.keyUseCase, stack.fieldCodec)
	outputs, err := useCase.List(ctx, familyID, opts)
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	assert.Equal(t, "Dentist cleaning", outputs[0].Title)
	assert.Nil(t, outputs[0].Notes)
	assert.Equal(t, "Cardiology follow-up", outputs[1].Title)
	require.NotNil(t, outputs[1].Notes)
	assert.Equal(t, "bring previous ECG", *outputs[1].Notes)

	// One key resolution covers the whole batch.
	stack.familyKeyRepo.AssertNumberOfCalls(t, "GetByFamilyID", 1)
}

func TestAppointmentUseCase_Update(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())
	memberID := uuid.Must(uuid.NewV7())

	stack := newTestStack(t)
	appointment := &recordsDomain.Appointment{
		ID:       uuid.Must(uuid.NewV7()),
		FamilyID: familyID,
		MemberID: memberID,
		Date:     time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC),
	}
	stack.seal(t, appointment, map[string]string{"title": "Cardiology follow-up"})

	stack.appointmentRepo.On("GetByID", mock.Anything, familyID, appointment.ID).
		Return(appointment, nil)
	stack.appointmentRepo.On("Update", mock.Anything, appointment).Return(nil)
	stack.expectResolve(familyID)

	input := appointmentInput(memberID)
	input.Title = "Cardiology follow-up (rescheduled)"
	input.Date = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	useCase := usecase.NewAppointmentUseCase(stack.appointmentRepo, stack.keyUseCase, stack.fieldCodec)
	output, err := useCase.Update(ctx, familyID, appointment.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Cardiology follow-up (rescheduled)", output.Title)
	assert.Equal(t, input.Date, output.Date)

	stored := appointment.Title.Ciphertext()
	require.NotNil(t, stored)
	assert.NotContains(t, *stored, "rescheduled")
}

func TestMedicationUseCase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())
	memberID := uuid.Must(uuid.NewV7())

	stack := newTestStack(t)
	stack.expectResolve(familyID)

	var stored *recordsDomain.Medication
	stack.medicationRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*recordsDomain.Medication)
		}).
		Return(nil)

	dosage := "10mg"
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	input := &recordsDomain.MedicationInput{
		MemberID:  memberID,
		Name:      "Lisinopril",
		Dosage:    &dosage,
		StartDate: &start,
	}

	useCase := usecase.NewMedicationUseCase(stack.medicationRepo, stack.keyUseCase, stack.fieldCodec)
	output, err := useCase.Create(ctx, familyID, input)
	require.NoError(t, err)
	assert.Equal(t, "Lisinopril", output.Name)
	require.NotNil(t, output.Dosage)
	assert.Equal(t, "10mg", *output.Dosage)
	assert.Nil(t, output.Frequency)
	assert.Equal(t, &start, output.StartDate)

	require.NotNil(t, stored)
	stack.medicationRepo.On("GetByID", mock.Anything, familyID, stored.ID).Return(stored, nil)

	fetched, err := useCase.Get(ctx, familyID, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisinopril", fetched.Name)
}

func TestAllergyUseCase_Create(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())
	memberID := uuid.Must(uuid.NewV7())

	stack := newTestStack(t)
	stack.expectResolve(familyID)

	var stored *recordsDomain.Allergy
	stack.allergyRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*recordsDomain.Allergy)
		}).
		Return(nil)

	reaction := "hives and swelling"
	input := &recordsDomain.AllergyInput{
		MemberID: memberID,
		Allergen: "peanuts",
		Reaction: &reaction,
		Severity: recordsDomain.SeveritySevere,
	}

	useCase := usecase.NewAllergyUseCase(stack.allergyRepo, stack.keyUseCase, stack.fieldCodec)
	output, err := useCase.Create(ctx, familyID, input)
	require.NoError(t, err)
	assert.Equal(t, "peanuts", output.Allergen)
	assert.Equal(t, recordsDomain.SeveritySevere, output.Severity)

	// Severity stays plaintext for filtering, the allergen never does.
	require.NotNil(t, stored)
	assert.Equal(t, recordsDomain.SeveritySevere, stored.Severity)
	ct := stored.Allergen.Ciphertext()
	require.NotNil(t, ct)
	assert.NotContains(t, *ct, "peanuts")
}

func TestConditionUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())
	conditionID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		stack := newTestStack(t)
		stack.conditionRepo.On("Delete", mock.Anything, familyID, conditionID).Return(nil)

		useCase := usecase.NewConditionUseCase(stack.conditionRepo, stack.keyUseCase, stack.fieldCodec)
		require.NoError(t, useCase.Delete(ctx, familyID, conditionID))
	})

	t.Run("NotFound", func(t *testing.T) {
		stack := newTestStack(t)
		stack.conditionRepo.On("Delete", mock.Anything, familyID, conditionID).
			Return(recordsDomain.ErrConditionNotFound)

		useCase := usecase.NewConditionUseCase(stack.conditionRepo, stack.keyUseCase, stack.fieldCodec)
		err := useCase.Delete(ctx, familyID, conditionID)
		assert.ErrorIs(t, err, recordsDomain.ErrConditionNotFound)
	})
}
