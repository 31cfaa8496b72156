package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// WerkuurRepository defines operations for work-hour records.
type WerkuurRepository interface {
	// SaveWerkuurInTx persists a scheduled work-hour row within the given
	// transaction, so it becomes visible together with the acceptance that
	// caused it.
	SaveWerkuurInTx(ctx context.Context, tx pgx.Tx, werkuur domain.Werkuur) error

	// ListByZZP retrieves a freelancer's work-hour rows, newest first.
	ListByZZP(ctx context.Context, zzpProfileID string, limit int, offset int) ([]domain.Werkuur, error)

	// ListByOpdracht retrieves the work-hour rows tied to a posting.
	ListByOpdracht(ctx context.Context, opdrachtID string) ([]domain.Werkuur, error)
}
