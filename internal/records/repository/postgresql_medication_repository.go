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

// PostgreSQLMedicationRepository implements medication persistence for PostgreSQL.
type PostgreSQLMedicationRepository struct {
	db *sql.DB
}

// NewPostgreSQLMedicationRepository creates a new PostgreSQL medication repository.
func NewPostgreSQLMedicationRepository(db *sql.DB) *PostgreSQLMedicationRepository {
	return &PostgreSQLMedicationRepository{db: db}
}

// Create inserts a new medication into the PostgreSQL database.
func (p *PostgreSQLMedicationRepository) Create(
	ctx context.Context,
	medication *recordsDomain.Medication,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO medications
			  (id, family_id, member_id, name, dosage, frequency, start_date, end_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		medication.ID,
		medication.FamilyID,
		medication.MemberID,
		encryptedArg(&medication.Name),
		encryptedArg(&medication.Dosage),
		encryptedArg(&medication.Frequency),
		medication.StartDate,
		medication.EndDate,
		medication.CreatedAt,
		medication.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create medication")
	}
	return nil
}

// GetByID retrieves a medication within a family from the PostgreSQL database.
func (p *PostgreSQLMedicationRepository) GetByID(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) (*recordsDomain.Medication, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, member_id, name, dosage, frequency, start_date, end_date, created_at, updated_at
			  FROM medications
			  WHERE family_id = $1 AND id = $2`

	medication, err := scanPostgreSQLMedication(querier.QueryRowContext(ctx, query, familyID, medicationID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrMedicationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get medication")
	}
	return medication, nil
}

// ListByFamilyID retrieves a page of a family's medications, ordered by
// creation time unless the options select another plain column.
func (p *PostgreSQLMedicationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Medication, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, name, dosage, frequency, start_date, end_date, created_at, updated_at
			  FROM medications
			  WHERE family_id = $1
			  ORDER BY %s
			  LIMIT $2 OFFSET $3`, orderBy(opts, medicationSortColumns, "created_at"))

	rows, err := querier.QueryContext(ctx, query, familyID, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list medications")
	}
	defer rows.Close()

	var medications []*recordsDomain.Medication
	for rows.Next() {
		medication, err := scanPostgreSQLMedication(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan medication")
		}
		medications = append(medications, medication)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list medications")
	}
	return medications, nil
}

// Update modifies an existing medication in the PostgreSQL database.
func (p *PostgreSQLMedicationRepository) Update(
	ctx context.Context,
	medication *recordsDomain.Medication,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE medications
			  SET member_id = $1,
				  name = $2,
				  dosage = $3,
				  frequency = $4,
				  start_date = $5,
				  end_date = $6,
				  updated_at = $7
			  WHERE family_id = $8 AND id = $9`

	_, err := querier.ExecContext(
		ctx,
		query,
		medication.MemberID,
		encryptedArg(&medication.Name),
		encryptedArg(&medication.Dosage),
		encryptedArg(&medication.Frequency),
		medication.StartDate,
		medication.EndDate,
		medication.UpdatedAt,
		medication.FamilyID,
		medication.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update medication")
	}
	return nil
}

// Delete removes a medication from the PostgreSQL database.
func (p *PostgreSQLMedicationRepository) Delete(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM medications WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, medicationID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete medication")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete medication")
	}
	if affected == 0 {
		return recordsDomain.ErrMedicationNotFound
	}
	return nil
}

func scanPostgreSQLMedication(row rowScanner) (*recordsDomain.Medication, error) {
	var medication recordsDomain.Medication
	var name, dosage, frequency sql.NullString

	err := row.Scan(
		&medication.ID,
		&medication.FamilyID,
		&medication.MemberID,
		&name,
		&dosage,
		&frequency,
		&medication.StartDate,
		&medication.EndDate,
		&medication.CreatedAt,
		&medication.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scanEncrypted(&medication.Name, name)
	scanEncrypted(&medication.Dosage, dosage)
	scanEncrypted(&medication.Frequency, frequency)
	return &medication, nil
}
