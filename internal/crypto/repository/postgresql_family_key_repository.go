// Package repository provides family key record persistence for PostgreSQL
// and MySQL. Only wrapped key material ever touches these repositories.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
)

// PostgreSQLFamilyKeyRepository implements family key persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLFamilyKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLFamilyKeyRepository creates a new PostgreSQL family key repository.
func NewPostgreSQLFamilyKeyRepository(db *sql.DB) *PostgreSQLFamilyKeyRepository {
	return &PostgreSQLFamilyKeyRepository{db: db}
}

// Create inserts a new family key record into the PostgreSQL database.
func (p *PostgreSQLFamilyKeyRepository) Create(
	ctx context.Context,
	familyKey *cryptoDomain.FamilyKey,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO family_keys (family_id, wrapped_dek, created_at)
			  VALUES ($1, $2, $3)`

	_, err := querier.ExecContext(
		ctx,
		query,
		familyKey.FamilyID,
		familyKey.WrappedDek,
		familyKey.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create family key")
	}
	return nil
}

// GetByFamilyID retrieves the key record for a family from the PostgreSQL database.
func (p *PostgreSQLFamilyKeyRepository) GetByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
) (*cryptoDomain.FamilyKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT family_id, wrapped_dek, created_at
			  FROM family_keys
			  WHERE family_id = $1`

	var familyKey cryptoDomain.FamilyKey
	err := querier.QueryRowContext(ctx, query, familyID).Scan(
		&familyKey.FamilyID,
		&familyKey.WrappedDek,
		&familyKey.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get family key")
	}

	return &familyKey, nil
}
