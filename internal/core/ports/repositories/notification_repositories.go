package repositories

import (
	"context"
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// NotificationRepository defines operations for user-facing notifications.
// Rows are write-once except for the read flag.
type NotificationRepository interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// ListByUser retrieves a user's notifications created before the cursor
	// timestamp (nil means now), newest first.
	ListByUser(ctx context.Context, userID string, unreadOnly bool, before *time.Time, limit int) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int, error)

	// MarkRead flips the read flag of a notification owned by the user.
	MarkRead(ctx context.Context, notificationID string, userID string) error

	// ExistsRecent reports whether the user already received a notification
	// of the given type since the cutoff. Used by the sweep's 7-day de-dup.
	ExistsRecent(ctx context.Context, userID string, notificationType domain.NotificationType, since time.Time) (bool, error)
}
