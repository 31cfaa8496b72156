package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// OutboxRepository defines operations for the transactional event outbox.
type OutboxRepository interface {
	// AppendEventInTx records an event in the same transaction as the
	// business mutation that caused it.
	AppendEventInTx(ctx context.Context, tx pgx.Tx, event domain.OutboxEvent) error

	// AppendEvent records an event outside a transaction (sweep, webhook).
	AppendEvent(ctx context.Context, event domain.OutboxEvent) error

	// FetchPending retrieves up to limit undelivered events, oldest first.
	FetchPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error)

	// MarkDelivered records a successful delivery.
	MarkDelivered(ctx context.Context, eventID string, now time.Time) error

	// MarkFailed bumps the attempt counter; events past the retry budget are
	// parked as FAILED.
	MarkFailed(ctx context.Context, eventID string, attempts int, maxAttempts int) error
}
