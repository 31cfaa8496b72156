package services

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

// NotificationReaderSvc defines read operations on notifications.
type NotificationReaderSvc interface {
	// ListForUser returns a cursor-paginated page of the actor's
	// notifications, newest first.
	ListForUser(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)
}

// NotificationWriterSvc defines the allowed notification mutations.
type NotificationWriterSvc interface {
	// MarkRead flips the read flag of one of the actor's notifications.
	MarkRead(ctx context.Context, userID string, notificationID string) error
}

// EventDispatcherSvc turns a recorded lifecycle event into its side effects:
// notification rows, broadcast messages and external channel dispatches.
// Called by the outbox worker, never inline with the business mutation.
type EventDispatcherSvc interface {
	DispatchEvent(ctx context.Context, event domain.OutboxEvent) error
}

// NotificationSvcFacade combines all notification-related service interfaces.
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
	EventDispatcherSvc
}
