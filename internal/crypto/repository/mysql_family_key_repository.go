package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
)

// MySQLFamilyKeyRepository implements family key persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLFamilyKeyRepository struct {
	db *sql.DB
}

// NewMySQLFamilyKeyRepository creates a new MySQL family key repository.
func NewMySQLFamilyKeyRepository(db *sql.DB) *MySQLFamilyKeyRepository {
	return &MySQLFamilyKeyRepository{db: db}
}

// Create inserts a new family key record into the MySQL database.
func (m *MySQLFamilyKeyRepository) Create(
	ctx context.Context,
	familyKey *cryptoDomain.FamilyKey,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO family_keys (family_id, wrapped_dek, created_at)
			  VALUES (?, ?, ?)`

	familyID, err := familyKey.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		familyID,
		familyKey.WrappedDek,
		familyKey.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create family key")
	}
	return nil
}

// GetByFamilyID retrieves the key record for a family from the MySQL database.
func (m *MySQLFamilyKeyRepository) GetByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.FamilyKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT family_id, wrapped_dek, created_at
			  FROM family_keys
			  WHERE family_id = ?`

	id, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	var familyKey cryptoDomain.FamilyKey
	var familyIDBytes []byte

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&familyIDBytes,
		&familyKey.WrappedDek,
		&familyKey.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get family key")
	}

	if err := familyKey.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal family id")
	}

	return &familyKey, nil
}
