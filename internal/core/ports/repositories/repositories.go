package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines operations for managing database transactions.
// Repositories that mutate multiple rows atomically expose it alongside
// their entity operations.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Safe to call after commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// SweepLocker serializes the compliance sweep across instances via an
// advisory lock.
type SweepLocker interface {
	// TryLockSweep attempts to take the sweep lock without blocking.
	TryLockSweep(ctx context.Context) (bool, error)

	// UnlockSweep releases the sweep lock.
	UnlockSweep(ctx context.Context) error
}

// RepositoryProvider bundles all repository implementations for wiring into
// the service container.
type RepositoryProvider struct {
	UserRepo         UserRepository
	ProfileRepo      ProfileRepositoryWithTx
	OpdrachtRepo     OpdrachtRepositoryWithTx
	SollicitatieRepo SollicitatieRepository
	WerkuurRepo      WerkuurRepository
	NotificationRepo NotificationRepository
	AuditRepo        AuditRepository
	PaymentRepo      PaymentRepository
	OutboxRepo       OutboxRepository
	SweepLocker      SweepLocker
}
