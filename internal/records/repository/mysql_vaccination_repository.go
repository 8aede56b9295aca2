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

// MySQLVaccinationRepository implements vaccination persistence for MySQL.
type MySQLVaccinationRepository struct {
	db *sql.DB
}

// NewMySQLVaccinationRepository creates a new MySQL vaccination repository.
func NewMySQLVaccinationRepository(db *sql.DB) *MySQLVaccinationRepository {
	return &MySQLVaccinationRepository{db: db}
}

// Create inserts a new vaccination into the MySQL database.
func (m *MySQLVaccinationRepository) Create(
	ctx context.Context,
	vaccination *recordsDomain.Vaccination,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO vaccinations
			  (id, family_id, member_id, name, notes, date, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := vaccination.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal vaccination id")
	}
	familyID, err := vaccination.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberID, err := vaccination.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
		memberID,
		encryptedArg(&vaccination.Name),
		encryptedArg(&vaccination.Notes),
		vaccination.Date,
		vaccination.CreatedAt,
		vaccination.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create vaccination")
	}
	return nil
}

// GetByID retrieves a vaccination within a family from the MySQL database.
func (m *MySQLVaccinationRepository) GetByID(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) (*recordsDomain.Vaccination, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, member_id, name, notes, date, created_at, updated_at
			  FROM vaccinations
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}
	vaccinationIDBytes, err := vaccinationID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal vaccination id")
	}

	vaccination, err := scanMySQLVaccination(querier.QueryRowContext(ctx, query, familyIDBytes, vaccinationIDBytes))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrVaccinationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get vaccination")
	}
	return vaccination, nil
}

// ListByFamilyID retrieves a page of a family's vaccinations, ordered by
// administration date unless the options select another plain column.
func (m *MySQLVaccinationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Vaccination, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, name, notes, date, created_at, updated_at
			  FROM vaccinations
			  WHERE family_id = ?
			  ORDER BY %s
			  LIMIT ? OFFSET ?`, orderBy(opts, vaccinationSortColumns, "date DESC"))

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list vaccinations")
	}
	defer rows.Close()

	var vaccinations []*recordsDomain.Vaccination
	for rows.Next() {
		vaccination, err := scanMySQLVaccination(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan vaccination")
		}
		vaccinations = append(vaccinations, vaccination)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list vaccinations")
	}
	return vaccinations, nil
}

// Update modifies an existing vaccination in the MySQL database.
func (m *MySQLVaccinationRepository) Update(
	ctx context.Context,
	vaccination *recordsDomain.Vaccination,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE vaccinations
			  SET member_id = ?,
				  name = ?,
				  notes = ?,
				  date = ?,
				  updated_at = ?
			  WHERE family_id = ? AND id = ?`

	memberID, err := vaccination.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}
	familyID, err := vaccination.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	id, err := vaccination.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal vaccination id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		memberID,
		encryptedArg(&vaccination.Name),
		encryptedArg(&vaccination.Notes),
		vaccination.Date,
		vaccination.UpdatedAt,
		familyID,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update vaccination")
	}
	return nil
}

// Delete removes a vaccination from the MySQL database.
func (m *MySQLVaccinationRepository) Delete(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM vaccinations WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	vaccinationIDBytes, err := vaccinationID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal vaccination id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, vaccinationIDBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete vaccination")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete vaccination")
	}
	if affected == 0 {
		return recordsDomain.ErrVaccinationNotFound
	}
	return nil
}

func scanMySQLVaccination(row rowScanner) (*recordsDomain.Vaccination, error) {
	var vaccination recordsDomain.Vaccination
	var idBytes, familyIDBytes, memberIDBytes []byte
	var name, notes sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&memberIDBytes,
		&name,
		&notes,
		&vaccination.Date,
		&vaccination.CreatedAt,
		&vaccination.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := vaccination.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := vaccination.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}
	if err := vaccination.MemberID.UnmarshalBinary(memberIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&vaccination.Name, name)
	scanEncrypted(&vaccination.Notes, notes)
	return &vaccination, nil
}
