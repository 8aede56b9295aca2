package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoMocks "github.com/hearthside/hearth/internal/crypto/usecase/mocks"
)

func TestRunCreateFamilyKey(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	familyID := uuid.Must(uuid.NewV7())

	newHandle := func(t *testing.T) *cryptoDomain.KeyHandle {
		t.Helper()
		handle, err := cryptoDomain.NewKeyHandle(familyID, make([]byte, cryptoDomain.KeySize))
		require.NoError(t, err)
		return handle
	}

	t.Run("creates and persists a key record", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockFamilyKeyUseCase{}
		familyKey := &cryptoDomain.FamilyKey{FamilyID: familyID, WrappedDek: "d3JhcHBlZA=="}

		mockUseCase.On("Resolve", ctx, familyID).Return(nil, cryptoDomain.ErrMissingKeyRecord)
		mockUseCase.On("CreateKeyRecord", ctx, familyID).Return(familyKey, newHandle(t), nil)
		mockUseCase.On("PersistKeyRecord", ctx, familyKey).Return(nil)

		var out bytes.Buffer
		err := RunCreateFamilyKey(ctx, mockUseCase, logger, familyID.String(), IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), familyID.String())
		require.NotContains(t, out.String(), familyKey.WrappedDek)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("refuses when a key record exists", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockFamilyKeyUseCase{}
		mockUseCase.On("Resolve", ctx, familyID).Return(newHandle(t), nil)

		var out bytes.Buffer
		err := RunCreateFamilyKey(ctx, mockUseCase, logger, familyID.String(), IOTuple{Writer: &out})

		require.Error(t, err)
		require.Contains(t, err.Error(), "already has a key record")
		mockUseCase.AssertNotCalled(t, "CreateKeyRecord", ctx, familyID)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("propagates resolve failures", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockFamilyKeyUseCase{}
		mockUseCase.On("Resolve", ctx, familyID).Return(nil, errors.New("database down"))

		var out bytes.Buffer
		err := RunCreateFamilyKey(ctx, mockUseCase, logger, familyID.String(), IOTuple{Writer: &out})

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to check existing key record")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid family id", func(t *testing.T) {
		mockUseCase := &cryptoMocks.MockFamilyKeyUseCase{}

		var out bytes.Buffer
		err := RunCreateFamilyKey(ctx, mockUseCase, logger, "not-a-uuid", IOTuple{Writer: &out})

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid family id")
		mockUseCase.AssertExpectations(t)
	})
}
