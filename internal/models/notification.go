package models

import "time"

// Notification is the database representation of a user notification.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	Category       string    `db:"category"`
	Priority       string    `db:"priority"`
	Titel          string    `db:"titel"`
	Bericht        string    `db:"bericht"`
	ActionURL      string    `db:"action_url"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
