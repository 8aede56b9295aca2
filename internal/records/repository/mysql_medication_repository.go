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

// MySQLMedicationRepository implements medication persistence for MySQL.
type MySQLMedicationRepository struct {
	db *sql.DB
}

// NewMySQLMedicationRepository creates a new MySQL medication repository.
func NewMySQLMedicationRepository(db *sql.DB) *MySQLMedicationRepository {
	return &MySQLMedicationRepository{db: db}
}

// Create inserts a new medication into the MySQL database.
func (m *MySQLMedicationRepository) Create(
	ctx context.Context,
	medication *recordsDomain.Medication,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO medications
			  (id, family_id, member_id, name, dosage, frequency, start_date, end_date, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := medication.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal medication id")
	}
	familyID, err := medication.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberID, err := medication.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
		memberID,
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

// GetByID retrieves a medication within a family from the MySQL database.
func (m *MySQLMedicationRepository) GetByID(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) (*recordsDomain.Medication, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, member_id, name, dosage, frequency, start_date, end_date, created_at, updated_at
			  FROM medications
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}
	medicationIDBytes, err := medicationID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal medication id")
	}

	medication, err := scanMySQLMedication(querier.QueryRowContext(ctx, query, familyIDBytes, medicationIDBytes))
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
func (m *MySQLMedicationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Medication, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, name, dosage, frequency, start_date, end_date, created_at, updated_at
			  FROM medications
			  WHERE family_id = ?
			  ORDER BY %s
			  LIMIT ? OFFSET ?`, orderBy(opts, medicationSortColumns, "created_at"))

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list medications")
	}
	defer rows.Close()

	var medications []*recordsDomain.Medication
	for rows.Next() {
		medication, err := scanMySQLMedication(rows)
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

// Update modifies an existing medication in the MySQL database.
func (m *MySQLMedicationRepository) Update(
	ctx context.Context,
	medication *recordsDomain.Medication,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE medications
			  SET member_id = ?,
				  name = ?,
				  dosage = ?,
				  frequency = ?,
				  start_date = ?,
				  end_date = ?,
				  updated_at = ?
			  WHERE family_id = ? AND id = ?`

	memberIDBytes, err := medication.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}
	familyIDBytes, err := medication.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	medicationIDBytes, err := medication.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal medication id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		memberIDBytes,
		encryptedArg(&medication.Name),
		encryptedArg(&medication.Dosage),
		encryptedArg(&medication.Frequency),
		medication.StartDate,
		medication.EndDate,
		medication.UpdatedAt,
		familyIDBytes,
		medicationIDBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update medication")
	}
	return nil
}

// Delete removes a medication from the MySQL database.
func (m *MySQLMedicationRepository) Delete(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM medications WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	medicationIDBytes, err := medicationID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal medication id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, medicationIDBytes)
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

func scanMySQLMedication(row rowScanner) (*recordsDomain.Medication, error) {
	var medication recordsDomain.Medication
	var idBytes, familyIDBytes, memberIDBytes []byte
	var name, dosage, frequency sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&memberIDBytes,
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

	if err := medication.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := medication.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}
	if err := medication.MemberID.UnmarshalBinary(memberIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&medication.Name, name)
	scanEncrypted(&medication.Dosage, dosage)
	scanEncrypted(&medication.Frequency, frequency)
	return &medication, nil
}
