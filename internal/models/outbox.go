package models

import "time"

// OutboxEvent is a row in the transactional event outbox.
type OutboxEvent struct {
	EventID     string     `db:"event_id"`
	Type        string     `db:"type"`
	ActorUserID string     `db:"actor_user_id"`
	SubjectID   string     `db:"subject_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	CreatedAt   time.Time  `db:"created_at"`
	DeliveredAt *time.Time `db:"delivered_at"`
}
