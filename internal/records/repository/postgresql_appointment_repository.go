// Package repository provides health-record persistence for PostgreSQL and
// MySQL. Sensitive columns are read and written as armored ciphertext; plain
// columns (dates, enums) stay queryable for sorting and filtering.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
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

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgreSQLAppointmentRepository implements appointment persistence for PostgreSQL.
type PostgreSQLAppointmentRepository struct {
	db *sql.DB
}

// NewPostgreSQLAppointmentRepository creates a new PostgreSQL appointment repository.
func NewPostgreSQLAppointmentRepository(db *sql.DB) *PostgreSQLAppointmentRepository {
	return &PostgreSQLAppointmentRepository{db: db}
}

// Create inserts a new appointment into the PostgreSQL database.
func (p *PostgreSQLAppointmentRepository) Create(
	ctx context.Context,
	appointment *recordsDomain.Appointment,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO appointments
			  (id, family_id, member_id, title, doctor, location, notes, date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		appointment.ID,
		appointment.FamilyID,
		appointment.MemberID,
		encryptedArg(&appointment.Title),
		encryptedArg(&appointment.Doctor),
		encryptedArg(&appointment.Location),
		encryptedArg(&appointment.Notes),
		appointment.Date,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create appointment")
	}
	return nil
}

// GetByID retrieves an appointment within a family from the PostgreSQL database.
func (p *PostgreSQLAppointmentRepository) GetByID(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) (*recordsDomain.Appointment, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, member_id, title, doctor, location, notes, date, created_at, updated_at
			  FROM appointments
			  WHERE family_id = $1 AND id = $2`

	appointment, err := scanPostgreSQLAppointment(querier.QueryRowContext(ctx, query, familyID, appointmentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrAppointmentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get appointment")
	}
	return appointment, nil
}

// ListByFamilyID retrieves a page of a family's appointments, ordered by
// date unless the options select another plain column.
func (p *PostgreSQLAppointmentRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Appointment, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, title, doctor, location, notes, date, created_at, updated_at
			  FROM appointments
			  WHERE family_id = $1
			  ORDER BY %s
			  LIMIT $2 OFFSET $3`, orderBy(opts, appointmentSortColumns, "date"))

	rows, err := querier.QueryContext(ctx, query, familyID, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list appointments")
	}
	defer rows.Close()

	var appointments []*recordsDomain.Appointment
	for rows.Next() {
		appointment, err := scanPostgreSQLAppointment(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan appointment")
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list appointments")
	}
	return appointments, nil
}

// Update modifies an existing appointment in the PostgreSQL database.
func (p *PostgreSQLAppointmentRepository) Update(
	ctx context.Context,
	appointment *recordsDomain.Appointment,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE appointments
			  SET member_id = $1,
				  title = $2,
				  doctor = $3,
				  location = $4,
				  notes = $5,
				  date = $6,
				  updated_at = $7
			  WHERE family_id = $8 AND id = $9`

	_, err := querier.ExecContext(
		ctx,
		query,
		appointment.MemberID,
		encryptedArg(&appointment.Title),
		encryptedArg(&appointment.Doctor),
		encryptedArg(&appointment.Location),
		encryptedArg(&appointment.Notes),
		appointment.Date,
		appointment.UpdatedAt,
		appointment.FamilyID,
		appointment.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update appointment")
	}
	return nil
}

// Delete removes an appointment from the PostgreSQL database.
func (p *PostgreSQLAppointmentRepository) Delete(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM appointments WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, appointmentID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete appointment")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete appointment")
	}
	if affected == 0 {
		return recordsDomain.ErrAppointmentNotFound
	}
	return nil
}

func scanPostgreSQLAppointment(row rowScanner) (*recordsDomain.Appointment, error) {
	var appointment recordsDomain.Appointment
	var title, doctor, location, notes sql.NullString

	err := row.Scan(
		&appointment.ID,
		&appointment.FamilyID,
		&appointment.MemberID,
		&title,
		&doctor,
		&location,
		&notes,
		&appointment.Date,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scanEncrypted(&appointment.Title, title)
	scanEncrypted(&appointment.Doctor, doctor)
	scanEncrypted(&appointment.Location, location)
	scanEncrypted(&appointment.Notes, notes)
	return &appointment, nil
}
