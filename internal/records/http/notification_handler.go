package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/httputil"
	"github.com/hearthside/hearth/internal/records/http/dto"
	recordsUseCase "github.com/hearthside/hearth/internal/records/usecase"
)

// NotificationHandler handles HTTP requests for family notifications.
type NotificationHandler struct {
	notificationUseCase recordsUseCase.NotificationUseCase
	logger              *slog.Logger
}

// NewNotificationHandler creates a new notification handler with required dependencies.
func NewNotificationHandler(useCase recordsUseCase.NotificationUseCase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: useCase,
		logger:              logger,
	}
}

// ListHandler retrieves all notifications of a family, newest first.
// GET /v1/families/:family_id/notifications
// Returns 200 OK with the decrypted notification list.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	notifications, err := h.notificationUseCase.List(c.Request.Context(), familyID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNotificationsToListResponse(notifications))
}

// MarkReadHandler marks one notification as read.
// POST /v1/families/:family_id/notifications/:notification_id/mark-read
// Returns 204 No Content.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}
	notificationID, err := uuid.Parse(c.Param("notification_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid notification id: %w", err),
			h.logger,
		)
		return
	}

	if err := h.notificationUseCase.MarkRead(c.Request.Context(), familyID, notificationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
