package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// MySQLNotificationRepository implements notification persistence for MySQL.
type MySQLNotificationRepository struct {
	db *sql.DB
}

// NewMySQLNotificationRepository creates a new MySQL notification repository.
func NewMySQLNotificationRepository(db *sql.DB) *MySQLNotificationRepository {
	return &MySQLNotificationRepository{db: db}
}

// Create inserts a new notification into the MySQL database.
func (m *MySQLNotificationRepository) Create(
	ctx context.Context,
	notification *recordsDomain.Notification,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO notifications
			  (id, family_id, message, is_read, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := notification.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal notification id")
	}
	familyID, err := notification.FamilyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		familyID,
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
func (m *MySQLNotificationRepository) ListByFamilyID(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*recordsDomain.Notification, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, family_id, message, is_read, created_at
			  FROM notifications
			  WHERE family_id = ?
			  ORDER BY created_at DESC`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal family id")
	}

	rows, err := querier.QueryContext(ctx, query, familyIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notifications")
	}
	defer rows.Close()

	var notifications []*recordsDomain.Notification
	for rows.Next() {
		notification, err := scanMySQLNotification(rows)
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
func (m *MySQLNotificationRepository) MarkRead(
	ctx context.Context,
	familyID, notificationID uuid.UUID,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE notifications SET is_read = true WHERE family_id = ? AND id = ?`

	familyIDBytes, err := familyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal family id")
	}
	notificationIDBytes, err := notificationID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal notification id")
	}

	result, err := querier.ExecContext(ctx, query, familyIDBytes, notificationIDBytes)
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

func scanMySQLNotification(row rowScanner) (*recordsDomain.Notification, error) {
	var notification recordsDomain.Notification
	var idBytes, familyIDBytes []byte
	var message sql.NullString

	err := row.Scan(
		&idBytes,
		&familyIDBytes,
		&message,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := notification.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := notification.FamilyID.UnmarshalBinary(familyIDBytes); err != nil {
		return nil, err
	}

	scanEncrypted(&notification.Message, message)
	return &notification, nil
}
