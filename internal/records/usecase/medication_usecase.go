package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// medicationUseCase implements the MedicationUseCase interface.
type medicationUseCase struct {
	medicationRepo   MedicationRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewMedicationUseCase creates a new MedicationUseCase instance.
func NewMedicationUseCase(
	medicationRepo MedicationRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) MedicationUseCase {
	return &medicationUseCase{
		medicationRepo:   medicationRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create adds a medication for a family member.
func (m *medicationUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.MedicationInput,
) (*recordsDomain.MedicationOutput, error) {
	now := time.Now().UTC()
	medication := &recordsDomain.Medication{
		ID:        uuid.Must(uuid.NewV7()),
		FamilyID:  familyID,
		MemberID:  input.MemberID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, medication)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := m.encryptInput(medication, input); err != nil {
		return nil, err
	}

	if err := m.medicationRepo.Create(ctx, medication); err != nil {
		return nil, err
	}

	return m.toOutput(medication)
}

// Get returns the decrypted view of one medication.
func (m *medicationUseCase) Get(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) (*recordsDomain.MedicationOutput, error) {
	medication, err := m.medicationRepo.GetByID(ctx, familyID, medicationID)
	if err != nil {
		return nil, err
	}

	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, medication)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return m.toOutput(medication)
}

// List returns the decrypted views of a page of a family's medications.
func (m *medicationUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.MedicationOutput, error) {
	medications, err := m.medicationRepo.ListByFamilyID(ctx, familyID, opts)
	if err != nil {
		return nil, err
	}

	// One key resolution covers the whole batch.
	hydratables := make([]cryptoDomain.Hydratable, len(medications))
	for i, medication := range medications {
		hydratables[i] = medication
	}
	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*recordsDomain.MedicationOutput, 0, len(medications))
	for _, medication := range medications {
		output, err := m.toOutput(medication)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Update replaces a medication's data.
func (m *medicationUseCase) Update(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
	input *recordsDomain.MedicationInput,
) (*recordsDomain.MedicationOutput, error) {
	medication, err := m.medicationRepo.GetByID(ctx, familyID, medicationID)
	if err != nil {
		return nil, err
	}

	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, medication)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := m.encryptInput(medication, input); err != nil {
		return nil, err
	}
	medication.MemberID = input.MemberID
	medication.StartDate = input.StartDate
	medication.EndDate = input.EndDate
	medication.UpdatedAt = time.Now().UTC()

	if err := m.medicationRepo.Update(ctx, medication); err != nil {
		return nil, err
	}

	return m.toOutput(medication)
}

// Delete removes a medication.
func (m *medicationUseCase) Delete(ctx context.Context, familyID, medicationID uuid.UUID) error {
	return m.medicationRepo.Delete(ctx, familyID, medicationID)
}

func (m *medicationUseCase) encryptInput(
	medication *recordsDomain.Medication,
	input *recordsDomain.MedicationInput,
) error {
	if err := m.fieldCodec.Set(medication, &medication.Name, &input.Name); err != nil {
		return err
	}
	if err := m.fieldCodec.Set(medication, &medication.Dosage, input.Dosage); err != nil {
		return err
	}
	return m.fieldCodec.Set(medication, &medication.Frequency, input.Frequency)
}

func (m *medicationUseCase) toOutput(
	medication *recordsDomain.Medication,
) (*recordsDomain.MedicationOutput, error) {
	name, err := m.fieldCodec.Get(medication, &medication.Name)
	if err != nil {
		return nil, err
	}
	dosage, err := m.fieldCodec.Get(medication, &medication.Dosage)
	if err != nil {
		return nil, err
	}
	frequency, err := m.fieldCodec.Get(medication, &medication.Frequency)
	if err != nil {
		return nil, err
	}

	output := &recordsDomain.MedicationOutput{
		ID:        medication.ID,
		FamilyID:  medication.FamilyID,
		MemberID:  medication.MemberID,
		Dosage:    dosage,
		Frequency: frequency,
		StartDate: medication.StartDate,
		EndDate:   medication.EndDate,
		CreatedAt: medication.CreatedAt,
		UpdatedAt: medication.UpdatedAt,
	}
	if name != nil {
		output.Name = *name
	}
	return output, nil
}
