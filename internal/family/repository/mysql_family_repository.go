package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// MySQLFamilyRepository implements family persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLFamilyRepository struct {
	db *sql.DB
}

// NewMySQLFamilyRepository creates a new MySQL family repository.
func NewMySQLFamilyRepository(db *sql.DB) *MySQLFamilyRepository {
	return &MySQLFamilyRepository{db: db}
}

// Create inserts a new family into the MySQL database.
func (m *MySQLFamilyRepository) Create(ctx context.Context, family *familyDomain.Family) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO families (id, name, created_at, updated_at)
			  VALUES (?, ?, ?, ?)`

	id, err := family.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		encryptedArg(&family.Name),
		family.CreatedAt,
		family.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create family")
	}
	return nil
}

// GetByID retrieves a family by its ID from the MySQL database.
func (m *MySQLFamilyRepository) GetByID(
	ctx context.Context,
	familyID uuid.UUID,
) (*familyDomain.Family, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, created_at, updated_at
			  FROM families
			  WHERE id = ?`

	id, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	var family familyDomain.Family
	var idBytes []byte
	var name sql.NullString

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&name,
		&family.CreatedAt,
		&family.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, familyDomain.ErrFamilyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get family")
	}

	if err := family.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal family id")
	}
	scanEncrypted(&family.Name, name)

	return &family, nil
}

// Update modifies an existing family in the MySQL database.
func (m *MySQLFamilyRepository) Update(ctx context.Context, family *familyDomain.Family) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE families
			  SET name = ?,
				  updated_at = ?
			  WHERE id = ?`

	id, err := family.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		encryptedArg(&family.Name),
		family.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update family")
	}
	return nil
}
