package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

// PgxAuditRepository persists the append-only license audit trail.
type PgxAuditRepository struct {
	db *pgxpool.Pool
}

func newPgxAuditRepository(db *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{db: db}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) AppendNDNummerAudit(ctx context.Context, entry domain.NDNummerAuditLog) error {
	return appendNDNummerAudit(ctx, r.db, entry)
}

func (r *PgxAuditRepository) AppendNDNummerAuditInTx(ctx context.Context, tx pgx.Tx, entry domain.NDNummerAuditLog) error {
	return appendNDNummerAudit(ctx, tx, entry)
}

func appendNDNummerAudit(ctx context.Context, exec pgxExecutor, entry domain.NDNummerAuditLog) error {
	query := `
		INSERT INTO nd_nummer_audit_logs (audit_id, profile_id, profile_type, action, previous_status, new_status, risk_level, details, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := exec.Exec(ctx, query,
		entry.AuditID, entry.ProfileID, string(entry.ProfileType), string(entry.Action),
		string(entry.PreviousStatus), string(entry.NewStatus), string(entry.RiskLevel),
		entry.Details, entry.PerformedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append nd-nummer audit entry: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) ListByProfile(ctx context.Context, profileID string, limit int, offset int) ([]domain.NDNummerAuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT audit_id, profile_id, profile_type, action, previous_status, new_status, risk_level, details, performed_by, created_at
		FROM nd_nummer_audit_logs
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	var entries []domain.NDNummerAuditLog
	for rows.Next() {
		var m models.NDNummerAuditLog
		err := rows.Scan(
			&m.AuditID, &m.ProfileID, &m.ProfileType, &m.Action,
			&m.PreviousStatus, &m.NewStatus, &m.RiskLevel,
			&m.Details, &m.PerformedBy, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		entries = append(entries, domain.NDNummerAuditLog{
			AuditID:        m.AuditID,
			ProfileID:      m.ProfileID,
			ProfileType:    domain.SollicitantType(m.ProfileType),
			Action:         domain.NDNummerAction(m.Action),
			PreviousStatus: domain.NDNummerStatus(m.PreviousStatus),
			NewStatus:      domain.NDNummerStatus(m.NewStatus),
			RiskLevel:      domain.RiskLevel(m.RiskLevel),
			Details:        m.Details,
			PerformedBy:    m.PerformedBy,
			CreatedAt:      m.CreatedAt,
		})
	}
	return entries, rows.Err()
}
