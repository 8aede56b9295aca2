package dto

import (
	"time"

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"family_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// MapNotificationToResponse converts a decrypted notification view to an API response.
func MapNotificationToResponse(output *recordsDomain.NotificationOutput) NotificationResponse {
	return NotificationResponse{
		ID:        output.ID.String(),
		FamilyID:  output.FamilyID.String(),
		Message:   output.Message,
		IsRead:    output.IsRead,
		CreatedAt: output.CreatedAt,
	}
}

// ListNotificationsResponse represents a list of notifications in API responses.
type ListNotificationsResponse struct {
	Data []NotificationResponse `json:"data"`
}

// MapNotificationsToListResponse converts decrypted notification views to a list response.
func MapNotificationsToListResponse(outputs []*recordsDomain.NotificationOutput) ListNotificationsResponse {
	data := make([]NotificationResponse, 0, len(outputs))
	for _, output := range outputs {
		data = append(data, MapNotificationToResponse(output))
	}
	return ListNotificationsResponse{Data: data}
}
