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

// PostgreSQLConditionRepository implements condition persistence for PostgreSQL.
type PostgreSQLConditionRepository struct {
	db *sql.DB
}

// NewPostgreSQLConditionRepository creates a new PostgreSQL condition repository.
func NewPostgreSQLConditionRepository(db *sql.DB) *PostgreSQLConditionRepository {
	return &PostgreSQLConditionRepository{db: db}
}

// Create inserts a new condition into the PostgreSQL database.
func (p *PostgreSQLConditionRepository) Create(
	ctx context.Context,
	condition *recordsDomain.Condition,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO conditions
			  (id, family_id, member_id, name, notes, diagnosed_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		condition.ID,
		condition.FamilyID,
		condition.MemberID,
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

// GetByID retrieves a condition within a family from the PostgreSQL database.
func (p *PostgreSQLConditionRepository) GetByID(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) (*recordsDomain.Condition, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, member_id, name, notes, diagnosed_date, status, created_at, updated_at
			  FROM conditions
			  WHERE family_id = $1 AND id = $2`

	condition, err := scanPostgreSQLCondition(querier.QueryRowContext(ctx, query, familyID, conditionID))
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
func (p *PostgreSQLConditionRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.Condition, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, family_id, member_id, name, notes, diagnosed_date, status, created_at, updated_at
			  FROM conditions
			  WHERE family_id = $1
			  ORDER BY %s
			  LIMIT $2 OFFSET $3`, orderBy(opts, conditionSortColumns, "status, created_at"))

	rows, err := querier.QueryContext(ctx, query, familyID, limitOrDefault(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list conditions")
	}
	defer rows.Close()

	var conditions []*recordsDomain.Condition
	for rows.Next() {
		condition, err := scanPostgreSQLCondition(rows)
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

// Update modifies an existing condition in the PostgreSQL database.
func (p *PostgreSQLConditionRepository) Update(
	ctx context.Context,
	condition *recordsDomain.Condition,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE conditions
			  SET member_id = $1,
				  name = $2,
				  notes = $3,
				  diagnosed_date = $4,
				  status = $5,
				  updated_at = $6
			  WHERE family_id = $7 AND id = $8`

	_, err := querier.ExecContext(
		ctx,
		query,
		condition.MemberID,
		encryptedArg(&condition.Name),
		encryptedArg(&condition.Notes),
		condition.DiagnosedDate,
		condition.Status,
		condition.UpdatedAt,
		condition.FamilyID,
		condition.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update condition")
	}
	return nil
}

// Delete removes a condition from the PostgreSQL database.
func (p *PostgreSQLConditionRepository) Delete(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM conditions WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, conditionID)
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

func scanPostgreSQLCondition(row rowScanner) (*recordsDomain.Condition, error) {
	var condition recordsDomain.Condition
	var name, notes sql.NullString

	err := row.Scan(
		&condition.ID,
		&condition.FamilyID,
		&condition.MemberID,
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

	scanEncrypted(&condition.Name, name)
	scanEncrypted(&condition.Notes, notes)
	return &condition, nil
}
