package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

type PgxOutboxRepository struct {
	db *pgxpool.Pool
}

func newPgxOutboxRepository(db *pgxpool.Pool) portsrepo.OutboxRepository {
	return &PgxOutboxRepository{db: db}
}

var _ portsrepo.OutboxRepository = (*PgxOutboxRepository)(nil)

const insertOutboxEvent = `
	INSERT INTO outbox_events (event_id, type, actor_user_id, subject_id, payload, status, attempts, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func (r *PgxOutboxRepository) AppendEventInTx(ctx context.Context, tx pgx.Tx, event domain.OutboxEvent) error {
	_, err := tx.Exec(ctx, insertOutboxEvent,
		event.EventID, string(event.Type), event.ActorUserID, event.SubjectID,
		[]byte(event.Payload), string(event.Status), event.Attempts, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append outbox event: %w", err)
	}
	return nil
}

func (r *PgxOutboxRepository) AppendEvent(ctx context.Context, event domain.OutboxEvent) error {
	_, err := r.db.Exec(ctx, insertOutboxEvent,
		event.EventID, string(event.Type), event.ActorUserID, event.SubjectID,
		[]byte(event.Payload), string(event.Status), event.Attempts, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append outbox event: %w", err)
	}
	return nil
}

func (r *PgxOutboxRepository) FetchPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT event_id, type, actor_user_id, subject_id, payload, status, attempts, created_at, delivered_at
		FROM outbox_events
		WHERE status = 'PENDING'
		ORDER BY created_at
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending outbox events: %w", err)
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var m models.OutboxEvent
		err := rows.Scan(
			&m.EventID, &m.Type, &m.ActorUserID, &m.SubjectID,
			&m.Payload, &m.Status, &m.Attempts, &m.CreatedAt, &m.DeliveredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox row: %w", err)
		}
		events = append(events, domain.OutboxEvent{
			EventID:     m.EventID,
			Type:        domain.EventType(m.Type),
			ActorUserID: m.ActorUserID,
			SubjectID:   m.SubjectID,
			Payload:     m.Payload,
			Status:      domain.OutboxStatus(m.Status),
			Attempts:    m.Attempts,
			CreatedAt:   m.CreatedAt,
			DeliveredAt: m.DeliveredAt,
		})
	}
	return events, rows.Err()
}

func (r *PgxOutboxRepository) MarkDelivered(ctx context.Context, eventID string, now time.Time) error {
	query := `
		UPDATE outbox_events
		SET status = 'DELIVERED', delivered_at = $2
		WHERE event_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, eventID, now)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event %s delivered: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOutboxRepository) MarkFailed(ctx context.Context, eventID string, attempts int, maxAttempts int) error {
	query := `
		UPDATE outbox_events
		SET attempts = $2, status = CASE WHEN $2 >= $3 THEN 'FAILED' ELSE 'PENDING' END
		WHERE event_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, eventID, attempts, maxAttempts)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event %s failed: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
