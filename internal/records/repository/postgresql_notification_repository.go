package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// PostgreSQLNotificationRepository implements notification persistence for PostgreSQL.
type PostgreSQLNotificationRepository struct {
	db *sql.DB
}

// NewPostgreSQLNotificationRepository creates a new PostgreSQL notification repository.
func NewPostgreSQLNotificationRepository(db *sql.DB) *PostgreSQLNotificationRepository {
	return &PostgreSQLNotificationRepository{db: db}
}

// Create inserts a new notification into the PostgreSQL database.
func (p *PostgreSQLNotificationRepository) Create(
	ctx context.Context,
	notification *recordsDomain.Notification,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO notifications
			  (id, family_id, message, is_read, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		notification.ID,
		notification.FamilyID,
		encryptedArg(&notification.Message),
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create notification")
	}
	return nil
}

// ListByFamilyID retrieves all notifications of a family, newest first.
func (p *PostgreSQLNotificationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*recordsDomain.Notification, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, family_id, message, is_read, created_at
			  FROM notifications
			  WHERE family_id = $1
			  ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notifications")
	}
	defer rows.Close()

	var notifications []*recordsDomain.Notification
	for rows.Next() {
		notification, err := scanPostgreSQLNotification(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan notification")
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list notifications")
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
// Returns ErrNotificationNotFound when absent.
func (p *PostgreSQLNotificationRepository) MarkRead(
	ctx context.Context,
	familyID, notificationID uuid.UUID,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE notifications SET is_read = true WHERE family_id = $1 AND id = $2`

	result, err := querier.ExecContext(ctx, query, familyID, notificationID)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark notification read")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to mark notification read")
	}
	if affected == 0 {
		return recordsDomain.ErrNotificationNotFound
	}
	return nil
}

func scanPostgreSQLNotification(row rowScanner) (*recordsDomain.Notification, error) {
	var notification recordsDomain.Notification
	var message sql.NullString

	err := row.Scan(
		&notification.ID,
		&notification.FamilyID,
		&message,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	scanEncrypted(&notification.Message, message)
	return &notification, nil
}
