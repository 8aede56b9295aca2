package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// PostgreSQLAllergyRepository implements allergy persistence for PostgreSQL.
type PostgreSQLAllergyRepository struct {
	db *sql.DB
}

// NewPostgreSQLAllergyRepository creates a new PostgreSQL allergy repository.
func NewPostgreSQLAllergyRepository(db *sql.DB) *PostgreSQLAllergyRepository {
	return &PostgreSQLAllergyRepository{db: db}
}

// Create inserts a new allergy into the PostgreSQL database.
func (p *PostgreSQLAllergyRepository) Create(
	ctx context.Context,
	allergy *recordsDomain.Allergy,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO allergies
			  (id, family_id, member_id, allergen, reaction, severity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		allergy.ID,
		allergy.FamilyID,
		allergy.MemberID,
		encryptedArg(&allergy.Allergen),
		encryptedArg(&allergy.Reaction),
		allergy.Severity,
		allergy.CreatedAt,
		allergy.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create allergy")
	}
	return nil
}

// GetByID retrieves an allergy within a family from the PostgreSQL database.
func (p *PostgreSQLAllergyRepository) GetByID(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) (*recordsDomain.Allergy, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, member_id, allergen, reaction, severity, created_at, updated_at
			  FROM allergies
			  WHERE family_id = $1 AND id = $2`

	allergy, err := scanPostgreSQLAllergy(querier.QueryRowContext(ctx, query, familyID, allergyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrAllergyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get allergy")
	}
	return allergy, nil
}

// ListByFamilyID retrieves a page of a family's allergies, ordered by
// severity unless the options select another plain column.
func (p *PostgreSQLAllergyRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Allergy, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, allergen, reaction, severity, created_at, updated_at
			  FROM allergies
			  WHERE family_id = $1
			  ORDER BY %s
			  LIMIT $2 OFFSET $3`, orderBy(opts, allergySortColumns, "severity, created_at"))

	rows, err := querier.QueryContext(ctx, query, familyID, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list allergies")
	}
	defer rows.Close()

	var allergies []*recordsDomain.Allergy
	for rows.Next() {
		allergy, err := scanPostgreSQLAllergy(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan allergy")
		}
		allergies = append(allergies, allergy)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list allergies")
	}
	return allergies, nil
}

// Update modifies an existing allergy in the PostgreSQL database.
func (p *PostgreSQLAllergyRepository) Update(
	ctx context.Context,
	allergy *recordsDomain.Allergy,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE allergies
			  SET member_id = $1,
				  allergen = $2,
				  reaction = $3,
				  severity = $4,
				  updated_at = $5
			  WHERE family_id = $6 AND id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		allergy.MemberID,
		encryptedArg(&allergy.Allergen),
		encryptedArg(&allergy.Reaction),
		allergy.Severity,
		allergy.UpdatedAt,
		allergy.FamilyID,
		allergy.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update allergy")
	}
	return nil
}

// Delete removes an allergy from the PostgreSQL database.
func (p *PostgreSQLAllergyRepository) Delete(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM allergies WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, allergyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete allergy")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete allergy")
	}
	if affected == 0 {
		return recordsDomain.ErrAllergyNotFound
	}
	return nil
}

func scanPostgreSQLAllergy(row rowScanner) (*recordsDomain.Allergy, error) {
	var allergy recordsDomain.Allergy
	var allergen, reaction sql.NullString

	err := row.Scan(
		&allergy.ID,
		&allergy.FamilyID,
		&allergy.MemberID,
		&allergen,
		&reaction,
		&allergy.Severity,
		&allergy.CreatedAt,
		&allergy.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scanEncrypted(&allergy.Allergen, allergen)
	scanEncrypted(&allergy.Reaction, reaction)
	return &allergy, nil
}
