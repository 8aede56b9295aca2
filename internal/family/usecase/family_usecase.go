package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	"github.com/hearthside/hearth/internal/database"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// familyUseCase implements the FamilyUseCase interface.
type familyUseCase struct {
	txManager        database.TxManager
	familyRepo       FamilyRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewFamilyUseCase creates a new FamilyUseCase instance.
func NewFamilyUseCase(
	txManager database.TxManager,
	familyRepo FamilyRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) FamilyUseCase {
	return &familyUseCase{
		txManager:        txManager,
		familyRepo:       familyRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create provisions a new family and its key record atomically.
func (f *familyUseCase) Create(
	ctx context.Context,
	name string,
) (*familyDomain.FamilyOutput, error) {
	familyID := uuid.Must(uuid.NewV7())

	// Generate and wrap the family's DEK before opening the transaction;
	// the key service is slow and fallible and must not hold row locks.
	familyKey, handle, err := f.familyKeyUseCase.CreateKeyRecord(ctx, familyID)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	now := time.Now().UTC()
	family := &familyDomain.Family{
		ID:        familyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	family.AttachKey(handle)
	if err := f.fieldCodec.Set(family, &family.Name, &name); err != nil {
		return nil, err
	}

	err = f.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := f.familyRepo.Create(txCtx, family); err != nil {
			return err
		}
		return f.familyKeyUseCase.PersistKeyRecord(txCtx, familyKey)
	})
	if err != nil {
		return nil, err
	}

	return &familyDomain.FamilyOutput{
		ID:        family.ID,
		Name:      name,
		CreatedAt: family.CreatedAt,
		UpdatedAt: family.UpdatedAt,
	}, nil
}

// Get returns the decrypted view of a family.
func (f *familyUseCase) Get(
	ctx context.Context,
	familyID uuid.UUID,
) (*familyDomain.FamilyOutput, error) {
	family, err := f.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	handle, err := f.familyKeyUseCase.Attach(ctx, familyID, family)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return f.toOutput(family)
}

// Rename changes the family's display name.
func (f *familyUseCase) Rename(
	ctx context.Context,
	familyID uuid.UUID,
	name string,
) (*familyDomain.FamilyOutput, error) {
	family, err := f.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	handle, err := f.familyKeyUseCase.Attach(ctx, familyID, family)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := f.fieldCodec.Set(family, &family.Name, &name); err != nil {
		return nil, err
	}
	family.UpdatedAt = time.Now().UTC()

	if err := f.familyRepo.Update(ctx, family); err != nil {
		return nil, err
	}

	return f.toOutput(family)
}

func (f *familyUseCase) toOutput(family *familyDomain.Family) (*familyDomain.FamilyOutput, error) {
	name, err := f.fieldCodec.Get(family, &family.Name)
	if err != nil {
		return nil, err
	}

	output := &familyDomain.FamilyOutput{
		ID:        family.ID,
		CreatedAt: family.CreatedAt,
		UpdatedAt: family.UpdatedAt,
	}
	if name != nil {
		output.Name = *name
	}
	return output, nil
}
