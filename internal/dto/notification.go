package dto

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
// Cursor is an opaque token from a previous page's nextCursor.
type ListNotificationsParams struct {
	UnreadOnly bool   `form:"unreadOnly"`
	Limit      int    `form:"limit,default=20"`
	Cursor     string `form:"cursor"`
}

// NotificationResponse is the public view of a notification.
type NotificationResponse struct {
	NotificationID string                      `json:"notificationID"`
	Type           domain.NotificationType     `json:"type"`
	Category       domain.NotificationCategory `json:"category"`
	Priority       domain.NotificationPriority `json:"priority"`
	Titel          string                      `json:"titel"`
	Bericht        string                      `json:"bericht"`
	ActionURL      string                      `json:"actionUrl,omitempty"`
	IsRead         bool                        `json:"isRead"`
	CreatedAt      time.Time                   `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to its response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           n.Type,
		Category:       n.Category,
		Priority:       n.Priority,
		Titel:          n.Titel,
		Bericht:        n.Bericht,
		ActionURL:      n.ActionURL,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotificationsResponse wraps a notification page. NextCursor is empty on
// the last page.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextCursor    string                 `json:"nextCursor,omitempty"`
}
