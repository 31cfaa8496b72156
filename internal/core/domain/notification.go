package domain

import "time"

// NotificationType identifies what a notification is about.
type NotificationType string

const (
	NotifySollicitatieCreated  NotificationType = "SOLLICITATIE_CREATED"
	NotifySollicitatieAccepted NotificationType = "SOLLICITATIE_ACCEPTED"
	NotifySollicitatieRejected NotificationType = "SOLLICITATIE_REJECTED"
	NotifyOpdrachtToegewezen   NotificationType = "OPDRACHT_TOEGEWEZEN"
	NotifyOpdrachtCancelled    NotificationType = "OPDRACHT_CANCELLED"
	NotifyNDNummerExpiry90     NotificationType = "ND_NUMMER_EXPIRY_90"
	NotifyNDNummerExpiry60     NotificationType = "ND_NUMMER_EXPIRY_60"
	NotifyNDNummerExpiry30     NotificationType = "ND_NUMMER_EXPIRY_30"
	NotifyNDNummerVerlopen     NotificationType = "ND_NUMMER_VERLOPEN"
	NotifyBetalingUpdate       NotificationType = "BETALING_UPDATE"
)

// NotificationCategory groups notification types for client-side filtering.
type NotificationCategory string

const (
	CategoryOpdracht   NotificationCategory = "OPDRACHT"
	CategoryCompliance NotificationCategory = "COMPLIANCE"
	CategoryBetaling   NotificationCategory = "BETALING"
)

// NotificationPriority drives which external channels a notification is
// dispatched on.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityMedium NotificationPriority = "MEDIUM"
	PriorityHigh   NotificationPriority = "HIGH"
	PriorityUrgent NotificationPriority = "URGENT"
)

// Notification is a user-facing message record. Only the read flag is ever
// mutated after creation.
type Notification struct {
	NotificationID string               `json:"notificationID"` // Primary key (UUID)
	UserID         string               `json:"userID"`
	Type           NotificationType     `json:"type"`
	Category       NotificationCategory `json:"category"`
	Priority       NotificationPriority `json:"priority"`
	Titel          string               `json:"titel"`
	Bericht        string               `json:"bericht"`
	ActionURL      string               `json:"actionUrl,omitempty"`
	IsRead         bool                 `json:"isRead"`
	CreatedAt      time.Time            `json:"createdAt"`
}
