package repositories

import (
	"context"
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// PaymentReader defines read operations for payment mirror state.
type PaymentReader interface {
	// FindBetalingByExternalID retrieves a payment by its Finqle id.
	FindBetalingByExternalID(ctx context.Context, externalID string) (*domain.Betaling, error)

	// FindFactuurByExternalID retrieves an invoice by its Finqle id.
	FindFactuurByExternalID(ctx context.Context, externalID string) (*domain.Factuur, error)

	// ListBetalingenByUser retrieves a user's payments, newest first.
	ListBetalingenByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Betaling, error)
}

// PaymentWriter defines write operations for payment mirror state. Only the
// webhook reconciliation path uses these.
type PaymentWriter interface {
	// SaveBetaling persists a new payment mirror row.
	SaveBetaling(ctx context.Context, betaling domain.Betaling) error

	// UpdateBetalingStatus updates the status of a payment matched by its
	// Finqle id.
	UpdateBetalingStatus(ctx context.Context, externalID string, status domain.BetalingStatus, failureReason string, now time.Time) error

	// SaveFactuur persists a new invoice mirror row.
	SaveFactuur(ctx context.Context, factuur domain.Factuur) error

	// UpdateFactuurStatus updates the status of an invoice matched by its
	// Finqle id.
	UpdateFactuurStatus(ctx context.Context, externalID string, status domain.FactuurStatus, now time.Time) error
}

// PaymentRepository combines all payment-related repository interfaces.
type PaymentRepository interface {
	PaymentReader
	PaymentWriter
}
