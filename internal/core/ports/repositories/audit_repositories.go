package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// AuditRepository defines operations for the append-only ND-nummer audit
// trail. There are no update or delete operations.
type AuditRepository interface {
	// AppendNDNummerAudit persists one audit entry.
	AppendNDNummerAudit(ctx context.Context, entry domain.NDNummerAuditLog) error

	// AppendNDNummerAuditInTx persists one audit entry within a transaction.
	AppendNDNummerAuditInTx(ctx context.Context, tx pgx.Tx, entry domain.NDNummerAuditLog) error

	// ListByProfile retrieves a profile's audit trail, newest first.
	ListByProfile(ctx context.Context, profileID string, limit int, offset int) ([]domain.NDNummerAuditLog, error)
}
