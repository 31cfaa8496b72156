package services

import (
	"context"
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and is
// used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	User         UserSvcFacade
	Opdracht     OpdrachtSvcFacade
	Compliance   ComplianceSvcFacade
	Notification NotificationSvcFacade
	Payment      PaymentSvcFacade
	Dashboard    DashboardSvcFacade
}

// Broadcaster publishes best-effort live-update messages for connected UIs.
// Publish failures must never fail the caller's operation.
type Broadcaster interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// ChannelDispatcher delivers a notification over one external channel
// (email, SMS, push). Dispatch is best-effort.
type ChannelDispatcher interface {
	// Channel names the transport, for logging.
	Channel() string

	// Dispatch sends the notification to the user over this channel.
	Dispatch(ctx context.Context, userID string, notification domain.Notification) error
}

// QueryCache is an injected read cache with TTL semantics and
// invalidation by key prefix.
type QueryCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	SetWithTTL(key string, value any, ttl time.Duration)
	InvalidatePrefix(prefix string)
}
