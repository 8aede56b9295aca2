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

// PostgreSQLVaccinationRepository implements vaccination persistence for PostgreSQL.
type PostgreSQLVaccinationRepository struct {
	db *sql.DB
}

// NewPostgreSQLVaccinationRepository creates a new PostgreSQL vaccination repository.
func NewPostgreSQLVaccinationRepository(db *sql.DB) *PostgreSQLVaccinationRepository {
	return &PostgreSQLVaccinationRepository{db: db}
}

// Create inserts a new vaccination into the PostgreSQL database.
func (p *PostgreSQLVaccinationRepository) Create(
	ctx context.Context,
	vaccination *recordsDomain.Vaccination,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO vaccinations
			  (id, family_id, member_id, name, notes, date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		vaccination.ID,
		vaccination.FamilyID,
		vaccination.MemberID,
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

// GetByID retrieves a vaccination within a family from the PostgreSQL database.
func (p *PostgreSQLVaccinationRepository) GetByID(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) (*recordsDomain.Vaccination, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, member_id, name, notes, date, created_at, updated_at
			  FROM vaccinations
			  WHERE family_id = $1 AND id = $2`

	vaccination, err := scanPostgreSQLVaccination(querier.QueryRowContext(ctx, query, familyID, vaccinationID))
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
func (p *PostgreSQLVaccinationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Vaccination, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, name, notes, date, created_at, updated_at
			  FROM vaccinations
			  WHERE family_id = $1
			  ORDER BY %s
			  LIMIT $2 OFFSET $3`, orderBy(opts, vaccinationSortColumns, "date DESC"))

	rows, err := querier.QueryContext(ctx, query, familyID, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list vaccinations")
	}
	defer rows.Close()

	var vaccinations []*recordsDomain.Vaccination
	for rows.Next() {
		vaccination, err := scanPostgreSQLVaccination(rows)
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

// Update modifies an existing vaccination in the PostgreSQL database.
func (p *PostgreSQLVaccinationRepository) Update(
	ctx context.Context,
	vaccination *recordsDomain.Vaccination,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE vaccinations
			  SET member_id = $1,
				  name = $2,
				  notes = $3,
				  date = $4,
				  updated_at = $5
			  WHERE family_id = $6 AND id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		vaccination.MemberID,
		encryptedArg(&vaccination.Name),
		encryptedArg(&vaccination.Notes),
		vaccination.Date,
		vaccination.UpdatedAt,
		vaccination.FamilyID,
		vaccination.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update vaccination")
	}
	return nil
}

// Delete removes a vaccination from the PostgreSQL database.
func (p *PostgreSQLVaccinationRepository) Delete(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM vaccinations WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, vaccinationID)
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

func scanPostgreSQLVaccination(row rowScanner) (*recordsDomain.Vaccination, error) {
	var vaccination recordsDomain.Vaccination
	var name, notes sql.NullString

	err := row.Scan(
		&vaccination.ID,
		&vaccination.FamilyID,
		&vaccination.MemberID,
		&name,
		&notes,
		&vaccination.Date,
		&vaccination.CreatedAt,
		&vaccination.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scanEncrypted(&vaccination.Name, name)
	scanEncrypted(&vaccination.Notes, notes)
	return &vaccination, nil
}
