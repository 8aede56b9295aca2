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

// MySQLAllergyRepository implements allergy persistence for MySQL.
type MySQLAllergyRepository struct {
	db *sql.DB
}

// NewMySQLAllergyRepository creates a new MySQL allergy repository.
func NewMySQLAllergyRepository(db *sql.DB) *MySQLAllergyRepository {
	return &MySQLAllergyRepository{db: db}
}

// Create inserts a new allergy into the MySQL database.
func (m *MySQLAllergyRepository) Create(
	ctx context.Context,
	allergy *recordsDomain.Allergy,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO allergies
			  (id, family_id, member_id, allergen, reaction, severity, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := allergy.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal allergy id")
	}
	familyID, err := allergy.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberID, err := allergy.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
		memberID,
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

// GetByID retrieves an allergy within a family from the MySQL database.
func (m *MySQLAllergyRepository) GetByID(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) (*recordsDomain.Allergy, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, member_id, allergen, reaction, severity, created_at, updated_at
			  FROM allergies
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}
	allergyIDBytes, err := allergyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal allergy id")
	}

	allergy, err := scanMySQLAllergy(querier.QueryRowContext(ctx, query, familyIDBytes, allergyIDBytes))
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
func (m *MySQLAllergyRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Allergy, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, allergen, reaction, severity, created_at, updated_at
			  FROM allergies
			  WHERE family_id = ?
			  ORDER BY %s
			  LIMIT ? OFFSET ?`, orderBy(opts, allergySortColumns, "severity, created_at"))

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list allergies")
	}
	defer rows.Close()

	var allergies []*recordsDomain.Allergy
	for rows.Next() {
		allergy, err := scanMySQLAllergy(rows)
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

// Update modifies an existing allergy in the MySQL database.
func (m *MySQLAllergyRepository) Update(
	ctx context.Context,
	allergy *recordsDomain.Allergy,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE allergies
			  SET member_id = ?,
				  allergen = ?,
				  reaction = ?,
				  severity = ?,
				  updated_at = ?
			  WHERE family_id = ? AND id = ?`

	memberIDBytes, err := allergy.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}
	familyIDBytes, err := allergy.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	allergyIDBytes, err := allergy.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal allergy id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		memberIDBytes,
		encryptedArg(&allergy.Allergen),
		encryptedArg(&allergy.Reaction),
		allergy.Severity,
		allergy.UpdatedAt,
		familyIDBytes,
		allergyIDBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update allergy")
	}
	return nil
}

// Delete removes an allergy from the MySQL database.
func (m *MySQLAllergyRepository) Delete(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM allergies WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	allergyIDBytes, err := allergyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal allergy id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, allergyIDBytes)
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

func scanMySQLAllergy(row rowScanner) (*recordsDomain.Allergy, error) {
	var allergy recordsDomain.Allergy
	var idBytes, familyIDBytes, memberIDBytes []byte
	var allergen, reaction sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&memberIDBytes,
		&allergen,
		&reaction,
		&allergy.Severity,
		&allergy.CreatedAt,
		&allergy.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := allergy.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := allergy.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}
	if err := allergy.MemberID.UnmarshalBinary(memberIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&allergy.Allergen, allergen)
	scanEncrypted(&allergy.Reaction, reaction)
	return &allergy, nil
}
