package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// PostgreSQLMemberRepository implements family member persistence for PostgreSQL.
type PostgreSQLMemberRepository struct {
	db *sql.DB
}

// NewPostgreSQLMemberRepository creates a new PostgreSQL member repository.
func NewPostgreSQLMemberRepository(db *sql.DB) *PostgreSQLMemberRepository {
	return &PostgreSQLMemberRepository{db: db}
}

// Create inserts a new family member into the PostgreSQL database.
func (p *PostgreSQLMemberRepository) Create(
	ctx context.Context,
	member *familyDomain.FamilyMember,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO family_members
			  (id, family_id, first_name, last_name, relation, blood_type, phone_number, birth_date, gender, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(
		ctx,
		query,
		member.ID,
		member.FamilyID,
		encryptedArg(&member.FirstName),
		encryptedArg(&member.LastName),
		encryptedArg(&member.Relation),
		encryptedArg(&member.BloodType),
		encryptedArg(&member.PhoneNumber),
		member.BirthDate,
		member.Gender,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create family member")
	}
	return nil
}

// GetByID retrieves a member within a family from the PostgreSQL database.
func (p *PostgreSQLMemberRepository) GetByID(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) (*familyDomain.FamilyMember, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, first_name, last_name, relation, blood_type, phone_number, birth_date, gender, created_at, updated_at
			  FROM family_members
			  WHERE family_id = $1 AND id = $2`

	member, err := scanPostgreSQLMember(querier.QueryRowContext(ctx, query, familyID, memberID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, familyDomain.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get family member")
	}
	return member, nil
}

// ListByFamilyID retrieves a page of a family's members, ordered by creation
// time unless the options select another plain column.
func (p *PostgreSQLMemberRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts familyDomain.ListOptions,
) ([]*familyDomain.FamilyMember, error) {
	querier := database.GetTx(ctx, p.db)

	query := fmt.Sprintf(`SELECT id, family_id, first_name, last_name, relation, blood_type, phone_number, birth_date, gender, created_at, updated_at
			  FROM family_members
			  WHERE family_id = $1
			  ORDER BY %s
			  LIMIT $2 OFFSET $3`, memberOrderBy(opts))

	rows, err := querier.QueryContext(ctx, query, familyID, memberLimit(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list family members")
	}
	defer rows.Close()

	var members []*familyDomain.FamilyMember
	for rows.Next() {
		member, err := scanPostgreSQLMember(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan family member")
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list family members")
	}
	return members, nil
}

// Update modifies an existing member in the PostgreSQL database.
func (p *PostgreSQLMemberRepository) Update(
	ctx context.Context,
	member *familyDomain.FamilyMember,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE family_members
			  SET first_name = $1,
				  last_name = $2,
				  relation = $3,
				  blood_type = $4,
				  phone_number = $5,
				  birth_date = $6,
				  gender = $7,
				  updated_at = $8
			  WHERE family_id = $9 AND id = $10`

	_, err := querier.ExecContext(
		ctx,
		query,
		encryptedArg(&member.FirstName),
		encryptedArg(&member.LastName),
		encryptedArg(&member.Relation),
		encryptedArg(&member.BloodType),
		encryptedArg(&member.PhoneNumber),
		member.BirthDate,
		member.Gender,
		member.UpdatedAt,
		member.FamilyID,
		member.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update family member")
	}
	return nil
}

// Delete removes a member from the PostgreSQL database.
func (p *PostgreSQLMemberRepository) Delete(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM family_members WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, memberID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete family member")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete family member")
	}
	if affected == 0 {
		return familyDomain.ErrMemberNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLMember(row rowScanner) (*familyDomain.FamilyMember, error) {
	var member familyDomain.FamilyMember
	var firstName, lastName, relation, bloodType, phoneNumber sql.NullString

	err := row.Scan(
		&member.ID,
		&member.FamilyID,
		&firstName,
		&lastName,
		&relation,
		&bloodType,
		&phoneNumber,
		&member.BirthDate,
		&member.Gender,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	scanEncrypted(&member.FirstName, firstName)
	scanEncrypted(&member.LastName, lastName)
	scanEncrypted(&member.Relation, relation)
	scanEncrypted(&member.BloodType, bloodType)
	scanEncrypted(&member.PhoneNumber, phoneNumber)
	return &member, nil
}
