package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

type PgxWerkuurRepository struct {
	db *pgxpool.Pool
}

func newPgxWerkuurRepository(db *pgxpool.Pool) portsrepo.WerkuurRepository {
	return &PgxWerkuurRepository{db: db}
}

var _ portsrepo.WerkuurRepository = (*PgxWerkuurRepository)(nil)

const werkuurColumns = `werkuur_id, opdracht_id, sollicitatie_id, zzp_profile_id, start_tijd, eind_tijd, uurtarief, status,
	created_at, created_by, last_updated_at, last_updated_by`

func toDomainWerkuur(m models.Werkuur) domain.Werkuur {
	return domain.Werkuur{
		WerkuurID:      m.WerkuurID,
		OpdrachtID:     m.OpdrachtID,
		SollicitatieID: m.SollicitatieID,
		ZZPProfileID:   m.ZZPProfileID,
		StartTijd:      m.StartTijd,
		EindTijd:       m.EindTijd,
		Uurtarief:      m.Uurtarief,
		Status:         domain.WerkuurStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxWerkuurRepository) SaveWerkuurInTx(ctx context.Context, tx pgx.Tx, werkuur domain.Werkuur) error {
	query := `
		INSERT INTO werkuren (werkuur_id, opdracht_id, sollicitatie_id, zzp_profile_id, start_tijd, eind_tijd, uurtarief, status,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		werkuur.WerkuurID, werkuur.OpdrachtID, werkuur.SollicitatieID, werkuur.ZZPProfileID,
		werkuur.StartTijd, werkuur.EindTijd, werkuur.Uurtarief, string(werkuur.Status),
		werkuur.CreatedAt, werkuur.CreatedBy, werkuur.LastUpdatedAt, werkuur.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save werkuur: %w", err)
	}
	return nil
}

func (r *PgxWerkuurRepository) ListByZZP(ctx context.Context, zzpProfileID string, limit int, offset int) ([]domain.Werkuur, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + werkuurColumns + `
		FROM werkuren
		WHERE zzp_profile_id = $1
		ORDER BY start_tijd DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, zzpProfileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list werkuren for profile %s: %w", zzpProfileID, err)
	}
	defer rows.Close()
	return collectWerkuren(rows)
}

func (r *PgxWerkuurRepository) ListByOpdracht(ctx context.Context, opdrachtID string) ([]domain.Werkuur, error) {
	query := `SELECT ` + werkuurColumns + ` FROM werkuren WHERE opdracht_id = $1 ORDER BY start_tijd;`
	rows, err := r.db.Query(ctx, query, opdrachtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list werkuren for opdracht %s: %w", opdrachtID, err)
	}
	defer rows.Close()
	return collectWerkuren(rows)
}

func collectWerkuren(rows pgx.Rows) ([]domain.Werkuur, error) {
	var werkuren []domain.Werkuur
	for rows.Next() {
		var m models.Werkuur
		err := rows.Scan(
			&m.WerkuurID, &m.OpdrachtID, &m.SollicitatieID, &m.ZZPProfileID,
			&m.StartTijd, &m.EindTijd, &m.Uurtarief, &m.Status,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan werkuur row: %w", err)
		}
		werkuren = append(werkuren, toDomainWerkuur(m))
	}
	return werkuren, rows.Err()
}
