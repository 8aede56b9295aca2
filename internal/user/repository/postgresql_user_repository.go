// Package repository provides user persistence for PostgreSQL and MySQL.
// Name columns hold armored ciphertext; email and the two-factor flag stay
// plaintext for lookup.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
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

// rowScanner abstracts sql.Row and sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation reports whether err is a unique constraint violation,
// for either driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry")
}

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user. Fails with ErrUserAlreadyExists on a duplicate
// email.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, family_id, email, password_hash, first_name, last_name,
								 totp_secret, totp_enabled, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.FamilyID,
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
func (p *PostgreSQLUserRepository) GetByID(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, email, password_hash, first_name, last_name,
					 totp_secret, totp_enabled, created_at, updated_at
			  FROM users
			  WHERE id = $1`

	user, err := scanPostgreSQLUser(querier.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return user, nil
}

// GetByEmail retrieves a user by email, the login key.
func (p *PostgreSQLUserRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, email, password_hash, first_name, last_name,
					 totp_secret, totp_enabled, created_at, updated_at
			  FROM users
			  WHERE email = $1`

	user, err := scanPostgreSQLUser(querier.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}
	return user, nil
}

// UpdateTwoFactor persists the user's two-factor columns.
func (p *PostgreSQLUserRepository) UpdateTwoFactor(
	ctx context.Context,
	user *userDomain.User,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET totp_secret = $1,
				  totp_enabled = $2,
				  updated_at = $3
			  WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.TOTPSecret,
		user.TOTPEnabled,
		user.UpdatedAt,
		user.ID,
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

// scanPostgreSQLUser scans one user row.
func scanPostgreSQLUser(row rowScanner) (*userDomain.User, error) {
	var user userDomain.User
	var firstName, lastName sql.NullString

	err := row.Scan(
		&user.ID,
		&user.FamilyID,
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
	scanEncrypted(&user.FirstName, firstName)
	scanEncrypted(&user.LastName, lastName)
	return &user, nil
}
