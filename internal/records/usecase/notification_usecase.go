package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	outboxDomain "github.com/hearthside/hearth/internal/outbox/domain"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// notificationUseCase implements the NotificationUseCase interface.
type notificationUseCase struct {
	notificationRepo NotificationRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewNotificationUseCase creates a new NotificationUseCase instance.
func NewNotificationUseCase(
	notificationRepo NotificationRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Notify stores an encrypted notification for the family.
func (n *notificationUseCase) Notify(
	ctx context.Context,
	familyID uuid.UUID,
	message string,
) (*recordsDomain.NotificationOutput, error) {
	notification := &recordsDomain.Notification{
		ID:        uuid.Must(uuid.NewV7()),
		FamilyID:  familyID,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	handle, err := n.familyKeyUseCase.Attach(ctx, familyID, notification)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := n.fieldCodec.Set(notification, &notification.Message, &message); err != nil {
		return nil, err
	}

	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return n.toOutput(notification)
}

// List returns the family's notifications, newest first.
func (n *notificationUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*recordsDomain.NotificationOutput, error) {
	notifications, err := n.notificationRepo.ListByFamilyID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	hydratables := make([]cryptoDomain.Hydratable, len(notifications))
	for i, notification := range notifications {
		hydratables[i] = notification
	}
	handle, err := n.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*recordsDomain.NotificationOutput, 0, len(notifications))
	for _, notification := range notifications {
		output, err := n.toOutput(notification)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// MarkRead marks one of the family's notifications as read.
func (n *notificationUseCase) MarkRead(ctx context.Context, familyID, notificationID uuid.UUID) error {
	return n.notificationRepo.MarkRead(ctx, familyID, notificationID)
}

func (n *notificationUseCase) toOutput(
	notification *recordsDomain.Notification,
) (*recordsDomain.NotificationOutput, error) {
	message, err := n.fieldCodec.Get(notification, &notification.Message)
	if err != nil {
		return nil, err
	}

	output := &recordsDomain.NotificationOutput{
		ID:        notification.ID,
		FamilyID:  notification.FamilyID,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
	if message != nil {
		output.Message = *message
	}
	return output, nil
}

// NotificationEventProcessor turns outbox events into in-app notifications.
type NotificationEventProcessor struct {
	notifications NotificationUseCase
	logger        *slog.Logger
}

// NewNotificationEventProcessor creates a new NotificationEventProcessor.
func NewNotificationEventProcessor(
	notifications NotificationUseCase,
	logger *slog.Logger,
) *NotificationEventProcessor {
	return &NotificationEventProcessor{
		notifications: notifications,
		logger:        logger,
	}
}

// Process handles one outbox event.
func (p *NotificationEventProcessor) Process(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	switch event.EventType {
	case "user.created":
		var payload struct {
			UserID   uuid.UUID `json:"user_id"`
			FamilyID uuid.UUID `json:"family_id"`
		}
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return err
		}

		_, err := p.notifications.Notify(ctx, payload.FamilyID,
			"A new member joined your family account.")
		if err != nil {
			return err
		}
		if p.logger != nil {
			p.logger.Info("notification created for user.created event",
				slog.String("event_id", event.ID.String()),
			)
		}
		return nil
	default:
		if p.logger != nil {
			p.logger.Warn("unknown event type", slog.String("event_type", event.EventType))
		}
		return nil
	}
}
