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

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

func TestPostgreSQLVaccinationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLVaccinationRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	vaccinationID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	columns := []string{
		"id", "family_id", "member_id", "name", "notes",
		"date", "created_at", "updated_at",
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(vaccinationID.String(), familyID.String(), uuid.Must(uuid.NewV7()).String(),
				"enc:v1:aes-gcm:YQ==", nil, nil, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, family_id, member_id, name, notes")).
			WithArgs(familyID, vaccinationID).
			WillReturnRows(rows)

		vaccination, err := repo.GetByID(context.Background(), familyID, vaccinationID)
		require.NoError(t, err)
		assert.NotNil(t, vaccination.Name.Ciphertext())
		assert.Nil(t, vaccination.Notes.Ciphertext())
		assert.Nil(t, vaccination.Date)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, family_id, member_id, name, notes")).
			WithArgs(familyID, vaccinationID).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(context.Background(), familyID, vaccinationID)
		assert.ErrorIs(t, err, recordsDomain.ErrVaccinationNotFound)
	})
}

func TestPostgreSQLVaccinationRepository_ListByFamilyID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLVaccinationRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	columns := []string{
		"id", "family_id", "member_id", "name", "notes",
		"date", "created_at", "updated_at",
	}
	rows := sqlmock.NewRows(columns).
		AddRow(uuid.Must(uuid.NewV7()).String(), familyID.String(), uuid.Must(uuid.NewV7()).String(),
			"enc:v1:aes-gcm:YQ==", "enc:v1:aes-gcm:Yg==", now, now, now).
		AddRow(uuid.Must(uuid.NewV7()).String(), familyID.String(), uuid.Must(uuid.NewV7()).String(),
			"enc:v1:aes-gcm:Yw==", nil, nil, now, now)

	// Newest administration first when no sort is selected.
	mock.ExpectQuery("ORDER BY date DESC").
		WithArgs(familyID, 50, 0).
		WillReturnRows(rows)

	vaccinations, err := repo.ListByFamilyID(context.Background(), familyID, recordsDomain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, vaccinations, 2)

	assert.NotNil(t, vaccinations[0].Notes.Ciphertext())
	assert.NotNil(t, vaccinations[0].Date)
	assert.Nil(t, vaccinations[1].Notes.Ciphertext())
	assert.Nil(t, vaccinations[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLVaccinationRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLVaccinationRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	vaccinationID := uuid.Must(uuid.NewV7())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vaccinations")).
		WithArgs(familyID, vaccinationID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), familyID, vaccinationID)
	assert.ErrorIs(t, err, recordsDomain.ErrVaccinationNotFound)
}

func TestPostgreSQLNotificationRepository_ListByFamilyID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLNotificationRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	columns := []string{"id", "family_id", "message", "is_read", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(uuid.Must(uuid.NewV7()).String(), familyID.String(), "enc:v1:aes-gcm:YQ==", false, now).
		AddRow(uuid.Must(uuid.NewV7()).String(), familyID.String(), "enc:v1:aes-gcm:Yg==", true, now)

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(familyID).
		WillReturnRows(rows)

	notifications, err := repo.ListByFamilyID(context.Background(), familyID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	assert.False(t, notifications[0].IsRead)
	assert.True(t, notifications[1].IsRead)
	assert.NotNil(t, notifications[0].Message.Ciphertext())
}

func TestPostgreSQLNotificationRepository_MarkRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLNotificationRepository(db)
	familyID := uuid.Must(uuid.NewV7())
	notificationID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = true")).
			WithArgs(familyID, notificationID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkRead(context.Background(), familyID, notificationID))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = true")).
			WithArgs(familyID, notificationID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkRead(context.Background(), familyID, notificationID)
		assert.ErrorIs(t, err, recordsDomain.ErrNotificationNotFound)
	})
}
