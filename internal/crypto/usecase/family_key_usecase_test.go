package usecase_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	serviceMocks "github.com/hearthside/hearth/internal/crypto/service/mocks"
	"github.com/hearthside/hearth/internal/crypto/usecase"
	usecaseMocks "github.com/hearthside/hearth/internal/crypto/usecase/mocks"
	apperrors "github.com/hearthside/hearth/internal/errors"
)

type hydratableStub struct {
	cryptoDomain.KeyAttachment
	familyID uuid.UUID
}

func (s *hydratableStub) OwnerFamilyID() uuid.UUID {
	return s.familyID
}

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestFamilyKeyUseCase_CreateKeyRecord(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		key := randomKey(t)
		dekManager.On("GenerateAndWrap", ctx).Return(key, "wrapped-dek", nil)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)
		familyKey, handle, err := useCase.CreateKeyRecord(ctx, familyID)
		require.NoError(t, err)
		defer handle.Close()

		assert.Equal(t, familyID, familyKey.FamilyID)
		assert.Equal(t, "wrapped-dek", familyKey.WrappedDek)
		assert.WithinDuration(t, time.Now().UTC(), familyKey.CreatedAt, time.Minute)
		assert.Equal(t, familyID, handle.FamilyID())
		assert.Equal(t, key, handle.Bytes())
		dekManager.AssertExpectations(t)
	})

	t.Run("KeyServiceFailure", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		dekManager.On("GenerateAndWrap", ctx).
			Return(nil, "", cryptoDomain.ErrKeyServiceUnavailable)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)
		_, _, err := useCase.CreateKeyRecord(ctx, familyID)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyServiceUnavailable)
	})
}

func TestFamilyKeyUseCase_PersistKeyRecord(t *testing.T) {
	ctx := context.Background()
	familyKey := &cryptoDomain.FamilyKey{
		FamilyID:   uuid.New(),
		WrappedDek: "wrapped-dek",
		CreatedAt:  time.Now().UTC(),
	}

	familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
	familyKeyRepo.On("Create", ctx, familyKey).Return(nil)

	useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, &serviceMocks.MockDekManager{}, 0)
	require.NoError(t, useCase.PersistKeyRecord(ctx, familyKey))
	familyKeyRepo.AssertExpectations(t)
}

func TestFamilyKeyUseCase_Resolve(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.New()
	familyKey := &cryptoDomain.FamilyKey{
		FamilyID:   familyID,
		WrappedDek: "wrapped-dek",
		CreatedAt:  time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		key := randomKey(t)
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil)
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(key, nil)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)
		handle, err := useCase.Resolve(ctx, familyID)
		require.NoError(t, err)
		defer handle.Close()

		assert.Equal(t, familyID, handle.FamilyID())
		assert.Equal(t, key, handle.Bytes())
	})

	t.Run("MissingKeyRecord", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(nil, apperrors.ErrNotFound)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, &serviceMocks.MockDekManager{}, 0)
		_, err := useCase.Resolve(ctx, familyID)
		assert.ErrorIs(t, err, cryptoDomain.ErrMissingKeyRecord)
	})

	t.Run("UnwrapFailure", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil)
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(nil, cryptoDomain.ErrUnwrapFailed)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)
		_, err := useCase.Resolve(ctx, familyID)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnwrapFailed)
	})

	t.Run("CachedResolveSkipsKeyService", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		key := randomKey(t)
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil).Once()
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(key, nil).Once()

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, time.Minute)

		first, err := useCase.Resolve(ctx, familyID)
		require.NoError(t, err)
		expected := make([]byte, len(first.Bytes()))
		copy(expected, first.Bytes())
		first.Close()

		// Closing one request's handle must not clear another's key.
		second, err := useCase.Resolve(ctx, familyID)
		require.NoError(t, err)
		defer second.Close()
		assert.Equal(t, expected, second.Bytes())

		familyKeyRepo.AssertExpectations(t)
		dekManager.AssertExpectations(t)
	})

	t.Run("InvalidateForcesKeyServiceCall", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		key := randomKey(t)
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil).Twice()
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(key, nil).Twice()

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, time.Minute)

		handle, err := useCase.Resolve(ctx, familyID)
		require.NoError(t, err)
		handle.Close()

		useCase.Invalidate(familyID)

		handle, err = useCase.Resolve(ctx, familyID)
		require.NoError(t, err)
		handle.Close()

		familyKeyRepo.AssertExpectations(t)
		dekManager.AssertExpectations(t)
	})

	t.Run("ConcurrentResolve", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		key := randomKey(t)
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil)
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(key, nil)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)

		var g errgroup.Group
		for i := 0; i < 20; i++ {
			g.Go(func() error {
				handle, err := useCase.Resolve(ctx, familyID)
				if err != nil {
					return err
				}
				defer handle.Close()
				if handle.FamilyID() != familyID {
					return cryptoDomain.ErrKeyFamilyMismatch
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
	})

	t.Run("ConcurrentInvalidateKeepsResolvedKeysIntact", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		key := randomKey(t)
		expected := make([]byte, len(key))
		copy(expected, key)
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil)
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(key, nil)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, time.Minute)

		var g errgroup.Group
		for i := 0; i < 10; i++ {
			g.Go(func() error {
				for j := 0; j < 50; j++ {
					handle, err := useCase.Resolve(ctx, familyID)
					if err != nil {
						return err
					}
					if !bytes.Equal(handle.Bytes(), expected) {
						return fmt.Errorf("resolved key was mutated by a concurrent invalidation")
					}
				}
				return nil
			})
		}
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				useCase.Invalidate(familyID)
			}
			return nil
		})
		require.NoError(t, g.Wait())
	})
}

func TestFamilyKeyUseCase_Attach(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.New()
	familyKey := &cryptoDomain.FamilyKey{
		FamilyID:   familyID,
		WrappedDek: "wrapped-dek",
		CreatedAt:  time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil)
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(randomKey(t), nil)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)

		first := &hydratableStub{familyID: familyID}
		second := &hydratableStub{familyID: familyID}
		handle, err := useCase.Attach(ctx, familyID, first, second)
		require.NoError(t, err)
		defer handle.Close()

		assert.Same(t, handle, first.Key())
		assert.Same(t, handle, second.Key())
	})

	t.Run("FamilyMismatch", func(t *testing.T) {
		familyKeyRepo := &usecaseMocks.MockFamilyKeyRepository{}
		dekManager := &serviceMocks.MockDekManager{}
		familyKeyRepo.On("GetByFamilyID", ctx, familyID).Return(familyKey, nil)
		dekManager.On("Unwrap", ctx, "wrapped-dek").Return(randomKey(t), nil)

		useCase := usecase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, 0)

		ours := &hydratableStub{familyID: familyID}
		theirs := &hydratableStub{familyID: uuid.New()}
		_, err := useCase.Attach(ctx, familyID, ours, theirs)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyFamilyMismatch)
		assert.Nil(t, ours.Key())
		assert.Nil(t, theirs.Key())
	})
}
