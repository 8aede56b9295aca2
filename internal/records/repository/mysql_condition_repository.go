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

// MySQLConditionRepository implements condition persistence for MySQL.
type MySQLConditionRepository struct {
	db *sql.DB
}

// NewMySQLConditionRepository creates a new MySQL condition repository.
func NewMySQLConditionRepository(db *sql.DB) *MySQLConditionRepository {
	return &MySQLConditionRepository{db: db}
}

// Create inserts a new condition into the MySQL database.
func (m *MySQLConditionRepository) Create(
	ctx context.Context,
	condition *recordsDomain.Condition,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO conditions
			  (id, family_id, member_id, name, notes, diagnosed_date, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := condition.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal condition id")
	}
	familyID, err := condition.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberID, err := condition.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
		memberID,
		encryptedArg(&condition.Name),
		encryptedArg(&condition.Notes),
		condition.DiagnosedDate,
		condition.Status,
		condition.CreatedAt,
		condition.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create condition")
	}
	return nil
}

// GetByID retrieves a condition within a family from the MySQL database.
func (m *MySQLConditionRepository) GetByID(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) (*recordsDomain.Condition, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, member_id, name, notes, diagnosed_date, status, created_at, updated_at
			  FROM conditions
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}
	conditionIDBytes, err := conditionID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal condition id")
	}

	condition, err := scanMySQLCondition(querier.QueryRowContext(ctx, query, familyIDBytes, conditionIDBytes))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrConditionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get condition")
	}
	return condition, nil
}

// ListByFamilyID retrieves a page of a family's conditions, ordered by
// status unless the options select another plain column.
func (m *MySQLConditionRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Condition, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, name, notes, diagnosed_date, status, created_at, updated_at
			  FROM conditions
			  WHERE family_id = ?
			  ORDER BY %s
			  LIMIT ? OFFSET ?`, orderBy(opts, conditionSortColumns, "status, created_at"))

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list conditions")
	}
	defer rows.Close()

	var conditions []*recordsDomain.Condition
	for rows.Next() {
		condition, err := scanMySQLCondition(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan condition")
		}
		conditions = append(conditions, condition)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list conditions")
	}
	return conditions, nil
}

// Update modifies an existing condition in the MySQL database.
func (m *MySQLConditionRepository) Update(
	ctx context.Context,
	condition *recordsDomain.Condition,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE conditions
			  SET member_id = ?,
				  name = ?,
				  notes = ?,
				  diagnosed_date = ?,
				  status = ?,
				  updated_at = ?
			  WHERE family_id = ? AND id = ?`

	memberIDBytes, err := condition.MemberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}
	familyIDBytes, err := condition.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	conditionIDBytes, err := condition.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal condition id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		memberIDBytes,
		encryptedArg(&condition.Name),
		encryptedArg(&condition.Notes),
		condition.DiagnosedDate,
		condition.Status,
		condition.UpdatedAt,
		familyIDBytes,
		conditionIDBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update condition")
	}
	return nil
}

// Delete removes a condition from the MySQL database.
func (m *MySQLConditionRepository) Delete(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM conditions WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	conditionIDBytes, err := conditionID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal condition id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, conditionIDBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete condition")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete condition")
	}
	if affected == 0 {
		return recordsDomain.ErrConditionNotFound
	}
	return nil
}

func scanMySQLCondition(row rowScanner) (*recordsDomain.Condition, error) {
	var condition recordsDomain.Condition
	var idBytes, familyIDBytes, memberIDBytes []byte
	var name, notes sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&memberIDBytes,
		&name,
		&notes,
		&condition.DiagnosedDate,
		&condition.Status,
		&condition.CreatedAt,
		&condition.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := condition.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := condition.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}
	if err := condition.MemberID.UnmarshalBinary(memberIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&condition.Name, name)
	scanEncrypted(&condition.Notes, notes)
	return &condition, nil
}
