package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
)

// MySQLUserRepository implements user persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user. Fails with ErrUserAlreadyExists on a duplicate
// email.
func (m *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, family_id, email, password_hash, first_name, last_name,
								 totp_secret, totp_enabled, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}
	familyID, err := user.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
		user.Email,
		user.PasswordHash,
		encryptedArg(&user.FirstName),
		encryptedArg(&user.LastName),
		user.TOTPSecret,
		user.TOTPEnabled,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return userDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (m *MySQLUserRepository) GetByID(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, email, password_hash, first_name, last_name,
					 totp_secret, totp_enabled, created_at, updated_at
			  FROM users
			  WHERE id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	user, err := scanMySQLUser(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return user, nil
}

// GetByEmail retrieves a user by email, the login key.
func (m *MySQLUserRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, email, password_hash, first_name, last_name,
					 totp_secret, totp_enabled, created_at, updated_at
			  FROM users
			  WHERE email = ?`

	user, err := scanMySQLUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}
	return user, nil
}

// UpdateTwoFactor persists the user's two-factor columns.
func (m *MySQLUserRepository) UpdateTwoFactor(
	ctx context.Context,
	user *userDomain.User,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET totp_secret = ?,
				  totp_enabled = ?,
				  updated_at = ?
			  WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.TOTPSecret,
		user.TOTPEnabled,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user two-factor state")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return userDomain.ErrUserNotFound
	}
	return nil
}

// scanMySQLUser scans one user row, unmarshalling BINARY(16) ids.
func scanMySQLUser(row rowScanner) (*userDomain.User, error) {
	var user userDomain.User
	var idBytes, familyIDBytes []byte
	var firstName, lastName sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&user.Email,
		&user.PasswordHash,
		&firstName,
		&lastName,
		&user.TOTPSecret,
		&user.TOTPEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	if err := user.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal family id")
	}
	scanEncrypted(&user.FirstName, firstName)
	scanEncrypted(&user.LastName, lastName)
	return &user, nil
}
