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

// vaccinationUseCase implements the VaccinationUseCase interface.
type vaccinationUseCase struct {
	vaccinationRepo  VaccinationRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewVaccinationUseCase creates a new VaccinationUseCase instance.
func NewVaccinationUseCase(
	vaccinationRepo VaccinationRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) VaccinationUseCase {
	return &vaccinationUseCase{
		vaccinationRepo:  vaccinationRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create adds a vaccination for a family member.
func (v *vaccinationUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.VaccinationInput,
) (*recordsDomain.VaccinationOutput, error) {
	now := time.Now().UTC()
	vaccination := &recordsDomain.Vaccination{
		ID:        uuid.Must(uuid.NewV7()),
		FamilyID:  familyID,
		MemberID:  input.MemberID,
		Date:      input.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	handle, err := v.familyKeyUseCase.Attach(ctx, familyID, vaccination)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := v.encryptInput(vaccination, input); err != nil {
		return nil, err
	}

	if err := v.vaccinationRepo.Create(ctx, vaccination); err != nil {
		return nil, err
	}

	return v.toOutput(vaccination)
}

// Get returns the decrypted view of one vaccination.
func (v *vaccinationUseCase) Get(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) (*recordsDomain.VaccinationOutput, error) {
	vaccination, err := v.vaccinationRepo.GetByID(ctx, familyID, vaccinationID)
	if err != nil {
		return nil, err
	}

	handle, err := v.familyKeyUseCase.Attach(ctx, familyID, vaccination)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return v.toOutput(vaccination)
}

// List returns the decrypted views of a page of a family's vaccinations.
func (v *vaccinationUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.VaccinationOutput, error) {
	vaccinations, err := v.vaccinationRepo.ListByFamilyID(ctx, familyID, opts)
	if err != nil {
		return nil, err
	}

	// One key resolution covers the whole batch.
	hydratables := make([]cryptoDomain.Hydratable, len(vaccinations))
	for i, vaccination := range vaccinations {
		hydratables[i] = vaccination
	}
	handle, err := v.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*recordsDomain.VaccinationOutput, 0, len(vaccinations))
	for _, vaccination := range vaccinations {
		output, err := v.toOutput(vaccination)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Update replaces a vaccination's data.
func (v *vaccinationUseCase) Update(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
	input *recordsDomain.VaccinationInput,
) (*recordsDomain.VaccinationOutput, error) {
	vaccination, err := v.vaccinationRepo.GetByID(ctx, familyID, vaccinationID)
	if err != nil {
		return nil, err
	}

	handle, err := v.familyKeyUseCase.Attach(ctx, familyID, vaccination)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := v.encryptInput(vaccination, input); err != nil {
		return nil, err
	}
	vaccination.MemberID = input.MemberID
	vaccination.Date = input.Date
	vaccination.UpdatedAt = time.Now().UTC()

	if err := v.vaccinationRepo.Update(ctx, vaccination); err != nil {
		return nil, err
	}

	return v.toOutput(vaccination)
}

// Delete removes a vaccination.
func (v *vaccinationUseCase) Delete(ctx context.Context, familyID, vaccinationID uuid.UUID) error {
	return v.vaccinationRepo.Delete(ctx, familyID, vaccinationID)
}

func (v *vaccinationUseCase) encryptInput(
	vaccination *recordsDomain.Vaccination,
	input *recordsDomain.VaccinationInput,
) error {
	if err := v.fieldCodec.Set(vaccination, &vaccination.Name, &input.Name); err != nil {
		return err
	}
	return v.fieldCodec.Set(vaccination, &vaccination.Notes, input.Notes)
}

func (v *vaccinationUseCase) toOutput(
	vaccination *recordsDomain.Vaccination,
) (*recordsDomain.VaccinationOutput, error) {
	name, err := v.fieldCodec.Get(vaccination, &vaccination.Name)
	if err != nil {
		return nil, err
	}
	notes, err := v.fieldCodec.Get(vaccination, &vaccination.Notes)
	if err != nil {
		return nil, err
	}

	output := &recordsDomain.VaccinationOutput{
		ID:        vaccination.ID,
		FamilyID:  vaccination.FamilyID,
		MemberID:  vaccination.MemberID,
		Notes:     notes,
		Date:      vaccination.Date,
		CreatedAt: vaccination.CreatedAt,
		UpdatedAt: vaccination.UpdatedAt,
	}
	if name != nil {
		output.Name = *name
	}
	return output, nil
}
