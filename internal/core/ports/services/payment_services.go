package services

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

// PaymentSvcFacade reconciles payment state from Finqle webhook events and
// serves the mirrored rows.
type PaymentSvcFacade interface {
	// HandleFinqleEvent applies one webhook event to the payment mirror.
	// Processing is idempotent by external payment/invoice id.
	HandleFinqleEvent(ctx context.Context, event dto.FinqleWebhookEvent) error

	// ListBetalingen returns the actor's payments, newest first.
	ListBetalingen(ctx context.Context, userID string, limit, offset int) ([]domain.Betaling, error)
}
