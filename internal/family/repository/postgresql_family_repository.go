// Package repository provides family and member persistence for PostgreSQL
// and MySQL. Sensitive columns are read and written as armored ciphertext;
// nothing in this package touches plaintext or key material.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// scanEncrypted converts a nullable text column into the field's stored form.
func scanEncrypted(field *cryptoDomain.EncryptedString, column sql.NullString) {
	if column.Valid {
		value := column.String
		field.SetCiphertext(&value)
	} else {
		field.SetCiphertext(nil)
	}
}

// encryptedArg converts a field's stored form into a nullable query argument.
func encryptedArg(field *cryptoDomain.EncryptedString) any {
	if ciphertext := field.Ciphertext(); ciphertext != nil {
		return *ciphertext
	}
	return nil
}

// PostgreSQLFamilyRepository implements family persistence for PostgreSQL.
type PostgreSQLFamilyRepository struct {
	db *sql.DB
}

// NewPostgreSQLFamilyRepository creates a new PostgreSQL family repository.
func NewPostgreSQLFamilyRepository(db *sql.DB) *PostgreSQLFamilyRepository {
	return &PostgreSQLFamilyRepository{db: db}
}

// Create inserts a new family into the PostgreSQL database.
func (p *PostgreSQLFamilyRepository) Create(
	ctx context.Context,
	family *familyDomain.Family,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO families (id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		family.ID,
		encryptedArg(&family.Name),
		family.CreatedAt,
		family.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create family")
	}
	return nil
}

// GetByID retrieves a family by its ID from the PostgreSQL database.
func (p *PostgreSQLFamilyRepository) GetByID(
	ctx context.Context,
	familyID uuid.UUID,
) (*familyDomain.Family, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at, updated_at
			  FROM families
			  WHERE id = $1`

	var family familyDomain.Family
	var name sql.NullString
	err := querier.QueryRowContext(ctx, query, familyID).Scan(
		&family.ID,
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
	scanEncrypted(&family.Name, name)

	return &family, nil
}

// Update modifies an existing family in the PostgreSQL database.
func (p *PostgreSQLFamilyRepository) Update(
	ctx context.Context,
	family *familyDomain.Family,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE families
			  SET name = $1,
				  updated_at = $2
			  WHERE id = $3`

	_, err := querier.ExecContext(
		ctx,
		query,
		encryptedArg(&family.Name),
		family.UpdatedAt,
		family.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update family")
	}
	return nil
}
