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

// MySQLMemberRepository implements family member persistence for MySQL.
type MySQLMemberRepository struct {
	db *sql.DB
}

// NewMySQLMemberRepository creates a new MySQL member repository.
func NewMySQLMemberRepository(db *sql.DB) *MySQLMemberRepository {
	return &MySQLMemberRepository{db: db}
}

// Create inserts a new family member into the MySQL database.
func (m *MySQLMemberRepository) Create(
	ctx context.Context,
	member *familyDomain.FamilyMember,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO family_members
			  (id, family_id, first_name, last_name, relation, blood_type, phone_number, birth_date, gender, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := member.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}
	familyID, err := member.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
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

// GetByID retrieves a member within a family from the MySQL database.
func (m *MySQLMemberRepository) GetByID(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) (*familyDomain.FamilyMember, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, first_name, last_name, relation, blood_type, phone_number, birth_date, gender, created_at, updated_at
			  FROM family_members
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}
	memberIDBytes, err := memberID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal member id")
	}

	member, err := scanMySQLMember(querier.QueryRowContext(ctx, query, familyIDBytes, memberIDBytes))
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
func (m *MySQLMemberRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
	opts familyDomain.ListOptions,
) ([]*familyDomain.FamilyMember, error) {
	querier := database.GetTx(ctx, m.db)

	query := fmt.Sprintf(`SELECT id, family_id, first_name, last_name, relation, blood_type, phone_number, birth_date, gender, created_at, updated_at
			  FROM family_members
			  WHERE family_id = ?
			  ORDER BY %s
			  LIMIT ? OFFSET ?`, memberOrderBy(opts))

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes, memberLimit(opts), opts.Offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list family members")
	}
	defer rows.Close()

	var members []*familyDomain.FamilyMember
	for rows.Next() {
		member, err := scanMySQLMember(rows)
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

// Update modifies an existing member in the MySQL database.
func (m *MySQLMemberRepository) Update(
	ctx context.Context,
	member *familyDomain.FamilyMember,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE family_members
			  SET first_name = ?,
				  last_name = ?,
				  relation = ?,
				  blood_type = ?,
				  phone_number = ?,
				  birth_date = ?,
				  gender = ?,
				  updated_at = ?
			  WHERE family_id = ? AND id = ?`

	familyIDBytes, err := member.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberIDBytes, err := member.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	_, err = querier.ExecContext(
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
		familyIDBytes,
		memberIDBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update family member")
	}
	return nil
}

// Delete removes a member from the MySQL database.
func (m *MySQLMemberRepository) Delete(ctx context.Context, familyID, memberID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM family_members WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	memberIDBytes, err := memberID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal member id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, memberIDBytes)
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

func scanMySQLMember(row rowScanner) (*familyDomain.FamilyMember, error) {
	var member familyDomain.FamilyMember
	var idBytes, familyIDBytes []byte
	var firstName, lastName, relation, bloodType, phoneNumber sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
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

	if err := member.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := member.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&member.FirstName, firstName)
	scanEncrypted(&member.LastName, lastName)
	scanEncrypted(&member.Relation, relation)
	scanEncrypted(&member.BloodType, bloodType)
	scanEncrypted(&member.PhoneNumber, phoneNumber)
	return &member, nil
}
