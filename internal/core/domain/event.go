package domain

import (
	"encoding/json"
	"time"
)

// EventType identifies a lifecycle event flowing through the outbox.
type EventType string

const (
	EventSollicitatieCreated  EventType = "SOLLICITATIE_CREATED"
	EventSollicitatieAccepted EventType = "SOLLICITATIE_ACCEPTED"
	EventSollicitatieRejected EventType = "SOLLICITATIE_REJECTED"
	EventOpdrachtToegewezen   EventType = "OPDRACHT_TOEGEWEZEN"
	EventOpdrachtStatusChange EventType = "OPDRACHT_STATUS_CHANGE"
	EventNDNummerExpiring     EventType = "ND_NUMMER_EXPIRING"
	EventNDNummerVerlopen     EventType = "ND_NUMMER_VERLOPEN"
	EventBetalingUpdate       EventType = "BETALING_UPDATE"
)

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "PENDING"
	OutboxDelivered OutboxStatus = "DELIVERED"
	OutboxFailed    OutboxStatus = "FAILED"
)

// SollicitatieEventPayload travels with sollicitatie lifecycle events.
type SollicitatieEventPayload struct {
	SollicitatieID  string          `json:"sollicitatieID"`
	OpdrachtID      string          `json:"opdrachtID"`
	OpdrachtTitel   string          `json:"opdrachtTitel"`
	SollicitantType SollicitantType `json:"sollicitantType"`
	// TargetUserIDs are the accounts to notify.
	TargetUserIDs []string `json:"targetUserIDs"`
}

// OpdrachtStatusEventPayload travels with posting status changes.
type OpdrachtStatusEventPayload struct {
	OpdrachtID    string         `json:"opdrachtID"`
	OpdrachtTitel string         `json:"opdrachtTitel"`
	From          OpdrachtStatus `json:"from"`
	To            OpdrachtStatus `json:"to"`
	TargetUserIDs []string       `json:"targetUserIDs"`
}

// LicenseEventPayload travels with expiry warnings and demotions.
type LicenseEventPayload struct {
	ProfileID       string           `json:"profileID"`
	UserID          string           `json:"userID"`
	DaysUntilExpiry int              `json:"daysUntilExpiry"`
	Notification    NotificationType `json:"notification"`
}

// BetalingEventPayload travels with payment status updates.
type BetalingEventPayload struct {
	ExternalID string         `json:"externalID"`
	UserID     string         `json:"userID"`
	Status     BetalingStatus `json:"status"`
	Reason     string         `json:"reason,omitempty"`
}

// OutboxEvent is a durably recorded lifecycle event. It is written in the
// same transaction as the business mutation that caused it and delivered
// asynchronously by the outbox worker, so notification fan-out can never be
// lost mid-request.
type OutboxEvent struct {
	EventID     string          `json:"eventID"` // Primary key (UUID)
	Type        EventType       `json:"type"`
	ActorUserID string          `json:"actorUserID"`
	SubjectID   string          `json:"subjectID"` // id of the entity the event concerns
	Payload     json.RawMessage `json:"payload"`
	Status      OutboxStatus    `json:"status"`
	Attempts    int             `json:"attempts"`
	CreatedAt   time.Time       `json:"createdAt"`
	DeliveredAt *time.Time      `json:"deliveredAt,omitempty"`
}
