package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

type PgxOpdrachtRepository struct {
	BaseRepository
}

func newPgxOpdrachtRepository(db *pgxpool.Pool) portsrepo.OpdrachtRepositoryWithTx {
	return &PgxOpdrachtRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OpdrachtRepositoryWithTx = (*PgxOpdrachtRepository)(nil)

const opdrachtColumns = `opdracht_id, titel, beschrijving, locatie, start_datum, eind_datum, uurtarief,
	aantal_beveiligers, accepted_count, status, target_audience, direct_zzp_allowed, auto_accept,
	min_team_size, creator_type, creator_id, accepted_bedrijf_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOpdracht(row pgx.Row) (models.Opdracht, error) {
	var m models.Opdracht
	err := row.Scan(
		&m.OpdrachtID, &m.Titel, &m.Beschrijving, &m.Locatie, &m.StartDatum, &m.EindDatum, &m.Uurtarief,
		&m.AantalBeveiligers, &m.AcceptedCount, &m.Status, &m.TargetAudience, &m.DirectZZPAllowed, &m.AutoAccept,
		&m.MinTeamSize, &m.CreatorType, &m.CreatorID, &m.AcceptedBedrijfID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func toDomainOpdracht(m models.Opdracht) domain.Opdracht {
	return domain.Opdracht{
		OpdrachtID:        m.OpdrachtID,
		Titel:             m.Titel,
		Beschrijving:      m.Beschrijving,
		Locatie:           m.Locatie,
		StartDatum:        m.StartDatum,
		EindDatum:         m.EindDatum,
		Uurtarief:         m.Uurtarief,
		AantalBeveiligers: m.AantalBeveiligers,
		AcceptedCount:     m.AcceptedCount,
		Status:            domain.OpdrachtStatus(m.Status),
		TargetAudience:    domain.TargetAudience(m.TargetAudience),
		DirectZZPAllowed:  m.DirectZZPAllowed,
		AutoAccept:        m.AutoAccept,
		MinTeamSize:       m.MinTeamSize,
		Creator:           domain.Owner{Type: domain.OwnerType(m.CreatorType), ID: m.CreatorID},
		AcceptedBedrijfID: m.AcceptedBedrijfID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxOpdrachtRepository) SaveOpdracht(ctx context.Context, opdracht domain.Opdracht) error {
	query := `
		INSERT INTO opdrachten (opdracht_id, titel, beschrijving, locatie, start_datum, eind_datum, uurtarief,
		                        aantal_beveiligers, accepted_count, status, target_audience, direct_zzp_allowed, auto_accept,
		                        min_team_size, creator_type, creator_id, accepted_bedrijf_id,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		opdracht.OpdrachtID, opdracht.Titel, opdracht.Beschrijving, opdracht.Locatie,
		opdracht.StartDatum, opdracht.EindDatum, opdracht.Uurtarief,
		opdracht.AantalBeveiligers, opdracht.AcceptedCount, string(opdracht.Status),
		string(opdracht.TargetAudience), opdracht.DirectZZPAllowed, opdracht.AutoAccept,
		opdracht.MinTeamSize, string(opdracht.Creator.Type), opdracht.Creator.ID, opdracht.AcceptedBedrijfID,
		opdracht.CreatedAt, opdracht.CreatedBy, opdracht.LastUpdatedAt, opdracht.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save opdracht: %w", err)
	}
	return nil
}

func (r *PgxOpdrachtRepository) FindOpdrachtByID(ctx context.Context, opdrachtID string) (*domain.Opdracht, error) {
	query := `SELECT ` + opdrachtColumns + ` FROM opdrachten WHERE opdracht_id = $1;`
	m, err := scanOpdracht(r.Pool.QueryRow(ctx, query, opdrachtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find opdracht by ID %s: %w", opdrachtID, err)
	}
	o := toDomainOpdracht(m)
	return &o, nil
}

func (r *PgxOpdrachtRepository) ListOpdrachten(ctx context.Context, filter portsrepo.OpdrachtFilter) ([]domain.Opdracht, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conds = append(conds, fmt.Sprintf("status = ANY(%s)", arg(statuses)))
	}
	if len(filter.Audiences) > 0 {
		audiences := make([]string, len(filter.Audiences))
		for i, a := range filter.Audiences {
			audiences[i] = string(a)
		}
		cond := fmt.Sprintf("target_audience = ANY(%s)", arg(audiences))
		if filter.IncludeDirectZZP {
			cond = "(" + cond + " OR direct_zzp_allowed)"
		}
		conds = append(conds, cond)
	}
	if filter.Creator != nil {
		conds = append(conds, fmt.Sprintf("creator_type = %s", arg(string(filter.Creator.Type))))
		conds = append(conds, fmt.Sprintf("creator_id = %s", arg(filter.Creator.ID)))
	}

	query := `SELECT ` + opdrachtColumns + ` FROM opdrachten`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %s OFFSET %s;", arg(limit), arg(filter.Offset))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list opdrachten: %w", err)
	}
	defer rows.Close()

	var opdrachten []domain.Opdracht
	for rows.Next() {
		m, err := scanOpdracht(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opdracht row: %w", err)
		}
		opdrachten = append(opdrachten, toDomainOpdracht(m))
	}
	return opdrachten, rows.Err()
}

func (r *PgxOpdrachtRepository) UpdateOpdrachtStatus(ctx context.Context, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error {
	return r.updateStatus(ctx, r.Pool, opdrachtID, from, to, updatedBy, now)
}

func (r *PgxOpdrachtRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error {
	return r.updateStatus(ctx, tx, opdrachtID, from, to, updatedBy, now)
}

// pgxExecutor abstracts over the pool and a transaction for shared UPDATE
// statements.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// updateStatus keys the UPDATE on the previous status so a raced or illegal
// transition touches zero rows.
func (r *PgxOpdrachtRepository) updateStatus(ctx context.Context, db pgxExecutor, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE opdrachten
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE opdracht_id = $1 AND status = $2;
	`
	tag, err := db.Exec(ctx, query, opdrachtID, string(from), string(to), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update opdracht %s status: %w", opdrachtID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PgxOpdrachtRepository) ClaimSlot(ctx context.Context, tx pgx.Tx, opdrachtID string, updatedBy string, now time.Time) (*domain.Opdracht, error) {
	query := `
		UPDATE opdrachten
		SET accepted_count = accepted_count + 1, last_updated_at = $2, last_updated_by = $3
		WHERE opdracht_id = $1
		  AND status IN ('OPEN', 'URGENT')
		  AND accepted_count < aantal_beveiligers
		RETURNING ` + opdrachtColumns + `;
	`
	m, err := scanOpdracht(tx.QueryRow(ctx, query, opdrachtID, now, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to claim slot on opdracht %s: %w", opdrachtID, mapPgError(err))
	}
	o := toDomainOpdracht(m)
	return &o, nil
}

func (r *PgxOpdrachtRepository) AssignBedrijfInTx(ctx context.Context, tx pgx.Tx, opdrachtID string, bedrijfID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE opdrachten
		SET accepted_bedrijf_id = $2, status = 'TOEGEWEZEN', last_updated_at = $3, last_updated_by = $4
		WHERE opdracht_id = $1
		  AND status IN ('OPEN', 'URGENT')
		  AND accepted_bedrijf_id IS NULL;
	`
	tag, err := tx.Exec(ctx, query, opdrachtID, bedrijfID, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to assign bedrijf to opdracht %s: %w", opdrachtID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
