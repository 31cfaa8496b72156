package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, type, category, priority, titel, bericht, action_url, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		notification.NotificationID, notification.UserID, string(notification.Type),
		string(notification.Category), string(notification.Priority),
		notification.Titel, notification.Bericht, notification.ActionURL,
		notification.IsRead, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, before *time.Time, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	cutoff := time.Now()
	if before != nil {
		cutoff = *before
	}
	query := `
		SELECT notification_id, user_id, type, category, priority, titel, bericht, action_url, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND created_at < $2 AND (NOT $3 OR NOT is_read)
		ORDER BY created_at DESC
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, userID, cutoff, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID, &m.UserID, &m.Type, &m.Category, &m.Priority,
			&m.Titel, &m.Bericht, &m.ActionURL, &m.IsRead, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, domain.Notification{
			NotificationID: m.NotificationID,
			UserID:         m.UserID,
			Type:           domain.NotificationType(m.Type),
			Category:       domain.NotificationCategory(m.Category),
			Priority:       domain.NotificationPriority(m.Priority),
			Titel:          m.Titel,
			Bericht:        m.Bericht,
			ActionURL:      m.ActionURL,
			IsRead:         m.IsRead,
			CreatedAt:      m.CreatedAt,
		})
	}
	return notifications, rows.Err()
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID string, userID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) ExistsRecent(ctx context.Context, userID string, notificationType domain.NotificationType, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND type = $2 AND created_at >= $3
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, string(notificationType), since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recent notifications for user %s: %w", userID, err)
	}
	return exists, nil
}
