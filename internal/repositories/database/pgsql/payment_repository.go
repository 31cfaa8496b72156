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

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

const betalingColumns = `betaling_id, external_id, ontvanger_user_id, bedrag, status, failure_reason, last_webhook_at, created_at, last_updated_at`

func toDomainBetaling(m models.Betaling) domain.Betaling {
	return domain.Betaling{
		BetalingID:      m.BetalingID,
		ExternalID:      m.ExternalID,
		OntvangerUserID: m.OntvangerUserID,
		Bedrag:          m.Bedrag,
		Status:          domain.BetalingStatus(m.Status),
		FailureReason:   m.FailureReason,
		LastWebhookAt:   m.LastWebhookAt,
		CreatedAt:       m.CreatedAt,
		LastUpdatedAt:   m.LastUpdatedAt,
	}
}

func scanBetaling(row pgx.Row) (models.Betaling, error) {
	var m models.Betaling
	err := row.Scan(
		&m.BetalingID, &m.ExternalID, &m.OntvangerUserID, &m.Bedrag, &m.Status,
		&m.FailureReason, &m.LastWebhookAt, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxPaymentRepository) FindBetalingByExternalID(ctx context.Context, externalID string) (*domain.Betaling, error) {
	query := `SELECT ` + betalingColumns + ` FROM betalingen WHERE external_id = $1;`
	m, err := scanBetaling(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find betaling by external id %s: %w", externalID, err)
	}
	b := toDomainBetaling(m)
	return &b, nil
}

func (r *PgxPaymentRepository) ListBetalingenByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Betaling, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + betalingColumns + `
		FROM betalingen
		WHERE ontvanger_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list betalingen for user %s: %w", userID, err)
	}
	defer rows.Close()

	var betalingen []domain.Betaling
	for rows.Next() {
		m, err := scanBetaling(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan betaling row: %w", err)
		}
		betalingen = append(betalingen, toDomainBetaling(m))
	}
	return betalingen, rows.Err()
}

func (r *PgxPaymentRepository) SaveBetaling(ctx context.Context, betaling domain.Betaling) error {
	query := `
		INSERT INTO betalingen (betaling_id, external_id, ontvanger_user_id, bedrag, status, failure_reason, last_webhook_at, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		betaling.BetalingID, betaling.ExternalID, betaling.OntvangerUserID, betaling.Bedrag,
		string(betaling.Status), betaling.FailureReason, betaling.LastWebhookAt,
		betaling.CreatedAt, betaling.LastUpdatedAt,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save betaling: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) UpdateBetalingStatus(ctx context.Context, externalID string, status domain.BetalingStatus, failureReason string, now time.Time) error {
	query := `
		UPDATE betalingen
		SET status = $2, failure_reason = $3, last_webhook_at = $4, last_updated_at = $4
		WHERE external_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, externalID, string(status), failureReason, now)
	if err != nil {
		return fmt.Errorf("failed to update betaling %s: %w", externalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) FindFactuurByExternalID(ctx context.Context, externalID string) (*domain.Factuur, error) {
	query := `
		SELECT factuur_id, external_id, opdracht_id, debiteur_user_id, bedrag, status, verval_datum, created_at, last_updated_at
		FROM facturen
		WHERE external_id = $1;
	`
	var m models.Factuur
	err := r.db.QueryRow(ctx, query, externalID).Scan(
		&m.FactuurID, &m.ExternalID, &m.OpdrachtID, &m.DebiteurUserID, &m.Bedrag,
		&m.Status, &m.VervalDatum, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find factuur by external id %s: %w", externalID, err)
	}
	return &domain.Factuur{
		FactuurID:      m.FactuurID,
		ExternalID:     m.ExternalID,
		OpdrachtID:     m.OpdrachtID,
		DebiteurUserID: m.DebiteurUserID,
		Bedrag:         m.Bedrag,
		Status:         domain.FactuurStatus(m.Status),
		VervalDatum:    m.VervalDatum,
		CreatedAt:      m.CreatedAt,
		LastUpdatedAt:  m.LastUpdatedAt,
	}, nil
}

func (r *PgxPaymentRepository) SaveFactuur(ctx context.Context, factuur domain.Factuur) error {
	query := `
		INSERT INTO facturen (factuur_id, external_id, opdracht_id, debiteur_user_id, bedrag, status, verval_datum, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		factuur.FactuurID, factuur.ExternalID, factuur.OpdrachtID, factuur.DebiteurUserID,
		factuur.Bedrag, string(factuur.Status), factuur.VervalDatum,
		factuur.CreatedAt, factuur.LastUpdatedAt,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save factuur: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) UpdateFactuurStatus(ctx context.Context, externalID string, status domain.FactuurStatus, now time.Time) error {
	query := `
		UPDATE facturen
		SET status = $2, last_updated_at = $3
		WHERE external_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, externalID, string(status), now)
	if err != nil {
		return fmt.Errorf("failed to update factuur %s: %w", externalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
