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

// MySQLAppointmentRepository implements appointment persistence for MySQL.
type MySQLAppointmentRepository struct {
	db *sql.DB
}

// NewMySQLAppointmentRepository creates a new MySQL appointment repository.
func NewMySQLAppointmentRepository(db *sql.DB) *MySQLAppointmentRepository {
	return &MySQLAppointmentRepository{db: db}
}

// Create inserts a new appointment into the MySQL database.
func (m *MySQLAppointmentRepository) Create(
	ctx context.Context,
	appointment *recordsDomain.Appointment,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO appointments
			  (id, family_id, member_id, title, doctor, location, notes, date, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := appointment.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal appointment id")
	}
	familyID, err := appointment.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberID, err := appointment.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
		memberID,
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

// GetByID retrieves an appointment within a family from the MySQL database.
func (m *MySQLAppointmentRepository) GetByID(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) (*recordsDomain.Appointment, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, member_id, title, doctor, location, notes, date, created_at, updated_at
			  FROM appointments
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}
	appointmentIDBytes, err := appointmentID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal appointment id")
	}

	appointment, err := scanMySQLAppointment(querier.QueryRowContext(ctx, query, familyIDBytes, appointmentIDBytes))
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
func (m *MySQLAppointmentRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Appointment, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, title, doctor, location, notes, date, created_at, updated_at
			  FROM appointments
			  WHERE family_id = ?
			  ORDER BY %s
			  LIMIT ? OFFSET ?`, orderBy(opts, appointmentSortColumns, "date"))

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list appointments")
	}
	defer rows.Close()

	var appointments []*recordsDomain.Appointment
	for rows.Next() {
		appointment, err := scanMySQLAppointment(rows)
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

// Update modifies an existing appointment in the MySQL database.
func (m *MySQLAppointmentRepository) Update(
	ctx context.Context,
	appointment *recordsDomain.Appointment,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE appointments
			  SET member_id = ?,
				  title = ?,
				  doctor = ?,
				  location = ?,
				  notes = ?,
				  date = ?,
				  updated_at = ?
			  WHERE family_id = ? AND id = ?`

	memberIDBytes, err := appointment.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}
	familyIDBytes, err := appointment.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	appointmentIDBytes, err := appointment.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal appointment id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		memberIDBytes,
		encryptedArg(&appointment.Title),
		encryptedArg(&appointment.Doctor),
		encryptedArg(&appointment.Location),
		encryptedArg(&appointment.Notes),
		appointment.Date,
		appointment.UpdatedAt,
		familyIDBytes,
		appointmentIDBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update appointment")
	}
	return nil
}

// Delete removes an appointment from the MySQL database.
func (m *MySQLAppointmentRepository) Delete(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM appointments WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	appointmentIDBytes, err := appointmentID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal appointment id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, appointmentIDBytes)
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

func scanMySQLAppointment(row rowScanner) (*recordsDomain.Appointment, error) {
	var appointment recordsDomain.Appointment
	var idBytes, familyIDBytes, memberIDBytes []byte
	var title, doctor, location, notes sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&memberIDBytes,
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

	if err := appointment.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := appointment.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}
	if err := appointment.MemberID.UnmarshalBinary(memberIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&appointment.Title, title)
	scanEncrypted(&appointment.Doctor, doctor)
	scanEncrypted(&appointment.Location, location)
	scanEncrypted(&appointment.Notes, notes)
	return &appointment, nil
}
