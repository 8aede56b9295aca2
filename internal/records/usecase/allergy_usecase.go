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

// allergyUseCase implements the AllergyUseCase interface.
type allergyUseCase struct {
	allergyRepo      AllergyRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewAllergyUseCase creates a new AllergyUseCase instance.
func NewAllergyUseCase(
	allergyRepo AllergyRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) AllergyUseCase {
	return &allergyUseCase{
		allergyRepo:      allergyRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create adds an allergy for a family member.
func (a *allergyUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.AllergyInput,
) (*recordsDomain.AllergyOutput, error) {
	now := time.Now().UTC()
	allergy := &recordsDomain.Allergy{
		ID:        uuid.Must(uuid.NewV7()),
		FamilyID:  familyID,
		MemberID:  input.MemberID,
		Severity:  input.Severity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, allergy)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := a.encryptInput(allergy, input); err != nil {
		return nil, err
	}

	if err := a.allergyRepo.Create(ctx, allergy); err != nil {
		return nil, err
	}

	return a.toOutput(allergy)
}

// Get returns the decrypted view of one allergy.
func (a *allergyUseCase) Get(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) (*recordsDomain.AllergyOutput, error) {
	allergy, err := a.allergyRepo.GetByID(ctx, familyID, allergyID)
	if err != nil {
		return nil, err
	}

	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, allergy)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return a.toOutput(allergy)
}

// List returns the decrypted views of a page of a family's allergies.
func (a *allergyUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.AllergyOutput, error) {
	allergies, err := a.allergyRepo.ListByFamilyID(ctx, familyID, opts)
	if err != nil {
		return nil, err
	}

	// One key resolution covers the whole batch.
	hydratables := make([]cryptoDomain.Hydratable, len(allergies))
	for i, allergy := range allergies {
		hydratables[i] = allergy
	}
	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*recordsDomain.AllergyOutput, 0, len(allergies))
	for _, allergy := range allergies {
		output, err := a.toOutput(allergy)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Update replaces an allergy's data.
func (a *allergyUseCase) Update(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
	input *recordsDomain.AllergyInput,
) (*recordsDomain.AllergyOutput, error) {
	allergy, err := a.allergyRepo.GetByID(ctx, familyID, allergyID)
	if err != nil {
		return nil, err
	}

	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, allergy)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := a.encryptInput(allergy, input); err != nil {
		return nil, err
	}
	allergy.MemberID = input.MemberID
	allergy.Severity = input.Severity
	allergy.UpdatedAt = time.Now().UTC()

	if err := a.allergyRepo.Update(ctx, allergy); err != nil {
		return nil, err
	}

	return a.toOutput(allergy)
}

// Delete removes an allergy.
func (a *allergyUseCase) Delete(ctx context.Context, familyID, allergyID uuid.UUID) error {
	return a.allergyRepo.Delete(ctx, familyID, allergyID)
}

func (a *allergyUseCase) encryptInput(
	allergy *recordsDomain.Allergy,
	input *recordsDomain.AllergyInput,
) error {
	if err := a.fieldCodec.Set(allergy, &allergy.Allergen, &input.Allergen); err != nil {
		return err
	}
	return a.fieldCodec.Set(allergy, &allergy.Reaction, input.Reaction)
}

func (a *allergyUseCase) toOutput(
	allergy *recordsDomain.Allergy,
) (*recordsDomain.AllergyOutput, error) {
	allergen, err := a.fieldCodec.Get(allergy, &allergy.Allergen)
	if err != nil {
		return nil, err
	}
	reaction, err := a.fieldCodec.Get(allergy, &allergy.Reaction)
	if err != nil {
		return nil, err
	}

	output := &recordsDomain.AllergyOutput{
		ID:        allergy.ID,
		FamilyID:  allergy.FamilyID,
		MemberID:  allergy.MemberID,
		Reaction:  reaction,
		Severity:  allergy.Severity,
		CreatedAt: allergy.CreatedAt,
		UpdatedAt: allergy.UpdatedAt,
	}
	if allergen != nil {
		output.Allergen = *allergen
	}
	return output, nil
}
