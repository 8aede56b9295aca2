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

// conditionUseCase implements the ConditionUseCase interface.
type conditionUseCase struct {
	conditionRepo    ConditionRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewConditionUseCase creates a new ConditionUseCase instance.
func NewConditionUseCase(
	conditionRepo ConditionRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) ConditionUseCase {
	return &conditionUseCase{
		conditionRepo:    conditionRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create adds a condition for a family member.
func (c *conditionUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.ConditionInput,
) (*recordsDomain.ConditionOutput, error) {
	now := time.Now().UTC()
	condition := &recordsDomain.Condition{
		ID:            uuid.Must(uuid.NewV7()),
		FamilyID:      familyID,
		MemberID:      input.MemberID,
		DiagnosedDate: input.DiagnosedDate,
		Status:        input.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	handle, err := c.familyKeyUseCase.Attach(ctx, familyID, condition)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := c.encryptInput(condition, input); err != nil {
		return nil, err
	}

	if err := c.conditionRepo.Create(ctx, condition); err != nil {
		return nil, err
	}

	return c.toOutput(condition)
}

// Get returns the decrypted view of one condition.
func (c *conditionUseCase) Get(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) (*recordsDomain.ConditionOutput, error) {
	condition, err := c.conditionRepo.GetByID(ctx, familyID, conditionID)
	if err != nil {
		return nil, err
	}

	handle, err := c.familyKeyUseCase.Attach(ctx, familyID, condition)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return c.toOutput(condition)
}

// List returns the decrypted views of a page of a family's conditions.
func (c *conditionUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.ConditionOutput, error) {
	conditions, err := c.conditionRepo.ListByFamilyID(ctx, familyID, opts)
	if err != nil {
		return nil, err
	}

	// One key resolution covers the whole batch.
	hydratables := make([]cryptoDomain.Hydratable, len(conditions))
	for i, condition := range conditions {
		hydratables[i] = condition
	}
	handle, err := c.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*recordsDomain.ConditionOutput, 0, len(conditions))
	for _, condition := range conditions {
		output, err := c.toOutput(condition)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Update replaces a condition's data.
func (c *conditionUseCase) Update(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
	input *recordsDomain.ConditionInput,
) (*recordsDomain.ConditionOutput, error) {
	condition, err := c.conditionRepo.GetByID(ctx, familyID, conditionID)
	if err != nil {
		return nil, err
	}

	handle, err := c.familyKeyUseCase.Attach(ctx, familyID, condition)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := c.encryptInput(condition, input); err != nil {
		return nil, err
	}
	condition.MemberID = input.MemberID
	condition.DiagnosedDate = input.DiagnosedDate
	condition.Status = input.Status
	condition.UpdatedAt = time.Now().UTC()

	if err := c.conditionRepo.Update(ctx, condition); err != nil {
		return nil, err
	}

	return c.toOutput(condition)
}

// Delete removes a condition.
func (c *conditionUseCase) Delete(ctx context.Context, familyID, conditionID uuid.UUID) error {
	return c.conditionRepo.Delete(ctx, familyID, conditionID)
}

func (c *conditionUseCase) encryptInput(
	condition *recordsDomain.Condition,
	input *recordsDomain.ConditionInput,
) error {
	if err := c.fieldCodec.Set(condition, &condition.Name, &input.Name); err != nil {
		return err
	}
	return c.fieldCodec.Set(condition, &condition.Notes, input.Notes)
}

func (c *conditionUseCase) toOutput(
	condition *recordsDomain.Condition,
) (*recordsDomain.ConditionOutput, error) {
	name, err := c.fieldCodec.Get(condition, &condition.Name)
	if err != nil {
		return nil, err
	}
	notes, err := c.fieldCodec.Get(condition, &condition.Notes)
	if err != nil {
		return nil, err
	}

	output := &recordsDomain.ConditionOutput{
		ID:            condition.ID,
		FamilyID:      condition.FamilyID,
		MemberID:      condition.MemberID,
		Notes:         notes,
		DiagnosedDate: condition.DiagnosedDate,
		Status:        condition.Status,
		CreatedAt:     condition.CreatedAt,
		UpdatedAt:     condition.UpdatedAt,
	}
	if name != nil {
		output.Name = *name
	}
	return output, nil
}
