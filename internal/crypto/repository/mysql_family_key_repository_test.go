package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	apperrors "github.com/hearthside/hearth/internal/errors"
)

func TestMySQLFamilyKeyRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLFamilyKeyRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	familyKey := &cryptoDomain.FamilyKey{
		FamilyID:   familyID,
		WrappedDek: "wrapped-dek",
		CreatedAt:  time.Now().UTC(),
	}

	idBytes, err := familyID.MarshalBinary()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO family_keys")).
		WithArgs(idBytes, familyKey.WrappedDek, familyKey.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), familyKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLFamilyKeyRepository_GetByFamilyID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLFamilyKeyRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	createdAt := time.Now().UTC()

	idBytes, err := familyID.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"family_id", "wrapped_dek", "created_at"}).
			AddRow(idBytes, "wrapped-dek", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT family_id, wrapped_dek, created_at")).
			WithArgs(idBytes).
			WillReturnRows(rows)

		familyKey, err := repo.GetByFamilyID(context.Background(), familyID)
		require.NoError(t, err)
		assert.Equal(t, familyID, familyKey.FamilyID)
		assert.Equal(t, "wrapped-dek", familyKey.WrappedDek)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT family_id, wrapped_dek, created_at")).
			WithArgs(idBytes).
			WillReturnRows(sqlmock.NewRows([]string{"family_id", "wrapped_dek", "created_at"}))

		_, err := repo.GetByFamilyID(context.Background(), familyID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
