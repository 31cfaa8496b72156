package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
)

// complianceSweepLockID is the advisory lock key serializing the license
// sweep across instances.
const complianceSweepLockID = 874529101

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Safe to call after commit.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// TryLockSweep attempts to take the sweep advisory lock without blocking.
func (r *BaseRepository) TryLockSweep(ctx context.Context) (bool, error) {
	var locked bool
	err := r.Pool.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, complianceSweepLockID).Scan(&locked)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to acquire sweep lock", err)
	}
	return locked, nil
}

// UnlockSweep releases the sweep advisory lock.
func (r *BaseRepository) UnlockSweep(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `SELECT pg_advisory_unlock($1)`, complianceSweepLockID); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to release sweep lock", err)
	}
	return nil
}

// mapPgError translates driver-level constraint violations into the
// sentinel errors the service layer branches on.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.ErrDuplicate
		case "23514":
			return apperrors.ErrConflict
		}
	}
	return err
}
