package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

type PgxSollicitatieRepository struct {
	db *pgxpool.Pool
}

func newPgxSollicitatieRepository(db *pgxpool.Pool) portsrepo.SollicitatieRepository {
	return &PgxSollicitatieRepository{db: db}
}

var _ portsrepo.SollicitatieRepository = (*PgxSollicitatieRepository)(nil)

const sollicitatieColumns = `sollicitatie_id, opdracht_id, sollicitant_type, sollicitant_id, status,
	nd_nummer_status, risk_level, is_compliant, voorgesteld_tarief, team_grootte, motivatie,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSollicitatie(row pgx.Row) (models.Sollicitatie, error) {
	var m models.Sollicitatie
	err := row.Scan(
		&m.SollicitatieID, &m.OpdrachtID, &m.SollicitantType, &m.SollicitantID, &m.Status,
		&m.NDNummerStatus, &m.RiskLevel, &m.IsCompliant, &m.VoorgesteldTarief, &m.TeamGrootte, &m.Motivatie,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func toDomainSollicitatie(m models.Sollicitatie) domain.Sollicitatie {
	return domain.Sollicitatie{
		SollicitatieID:  m.SollicitatieID,
		OpdrachtID:      m.OpdrachtID,
		SollicitantType: domain.SollicitantType(m.SollicitantType),
		SollicitantID:   m.SollicitantID,
		Status:          domain.SollicitatieStatus(m.Status),
		Compliance: domain.ComplianceSnapshot{
			NDNummerStatus: domain.NDNummerStatus(m.NDNummerStatus),
			RiskLevel:      domain.RiskLevel(m.RiskLevel),
			IsCompliant:    m.IsCompliant,
		},
		VoorgesteldTarief: m.VoorgesteldTarief,
		TeamGrootte:       m.TeamGrootte,
		Motivatie:         m.Motivatie,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxSollicitatieRepository) SaveSollicitatieInTx(ctx context.Context, tx pgx.Tx, sollicitatie domain.Sollicitatie) error {
	query := `
		INSERT INTO sollicitaties (sollicitatie_id, opdracht_id, sollicitant_type, sollicitant_id, status,
		                           nd_nummer_status, risk_level, is_compliant, voorgesteld_tarief, team_grootte, motivatie,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		sollicitatie.SollicitatieID, sollicitatie.OpdrachtID, string(sollicitatie.SollicitantType),
		sollicitatie.SollicitantID, string(sollicitatie.Status),
		string(sollicitatie.Compliance.NDNummerStatus), string(sollicitatie.Compliance.RiskLevel), sollicitatie.Compliance.IsCompliant,
		sollicitatie.VoorgesteldTarief, sollicitatie.TeamGrootte, sollicitatie.Motivatie,
		sollicitatie.CreatedAt, sollicitatie.CreatedBy, sollicitatie.LastUpdatedAt, sollicitatie.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save sollicitatie: %w", err)
	}
	return nil
}

func (r *PgxSollicitatieRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, sollicitatieID string, status domain.SollicitatieStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE sollicitaties
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sollicitatie_id = $1;
	`
	tag, err := tx.Exec(ctx, query, sollicitatieID, string(status), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update sollicitatie %s status: %w", sollicitatieID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSollicitatieRepository) FindSollicitatieByID(ctx context.Context, sollicitatieID string) (*domain.Sollicitatie, error) {
	query := `SELECT ` + sollicitatieColumns + ` FROM sollicitaties WHERE sollicitatie_id = $1;`
	m, err := scanSollicitatie(r.db.QueryRow(ctx, query, sollicitatieID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sollicitatie by ID %s: %w", sollicitatieID, err)
	}
	s := toDomainSollicitatie(m)
	return &s, nil
}

func (r *PgxSollicitatieRepository) FindByOpdrachtAndSollicitant(ctx context.Context, opdrachtID string, sollicitantID string) (*domain.Sollicitatie, error) {
	query := `SELECT ` + sollicitatieColumns + ` FROM sollicitaties WHERE opdracht_id = $1 AND sollicitant_id = $2;`
	m, err := scanSollicitatie(r.db.QueryRow(ctx, query, opdrachtID, sollicitantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sollicitatie for opdracht %s: %w", opdrachtID, err)
	}
	s := toDomainSollicitatie(m)
	return &s, nil
}

func (r *PgxSollicitatieRepository) ListByOpdracht(ctx context.Context, opdrachtID string) ([]domain.Sollicitatie, error) {
	query := `SELECT ` + sollicitatieColumns + ` FROM sollicitaties WHERE opdracht_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, opdrachtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sollicitaties for opdracht %s: %w", opdrachtID, err)
	}
	defer rows.Close()
	return collectSollicitaties(rows)
}

func (r *PgxSollicitatieRepository) ListBySollicitant(ctx context.Context, sollicitantID string, limit int, offset int) ([]domain.Sollicitatie, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + sollicitatieColumns + `
		FROM sollicitaties
		WHERE sollicitant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, sollicitantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sollicitaties for sollicitant %s: %w", sollicitantID, err)
	}
	defer rows.Close()
	return collectSollicitaties(rows)
}

func collectSollicitaties(rows pgx.Rows) ([]domain.Sollicitatie, error) {
	var sollicitaties []domain.Sollicitatie
	for rows.Next() {
		m, err := scanSollicitatie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sollicitatie row: %w", err)
		}
		sollicitaties = append(sollicitaties, toDomainSollicitatie(m))
	}
	return sollicitaties, rows.Err()
}
