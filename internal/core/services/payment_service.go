package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
	outboxRepo  portsrepo.OutboxRepository
}

// NewPaymentService creates the Finqle reconciliation service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, outboxRepo portsrepo.OutboxRepository) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, outboxRepo: outboxRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ListBetalingen(ctx context.Context, userID string, limit, offset int) ([]domain.Betaling, error) {
	return s.paymentRepo.ListBetalingenByUser(ctx, userID, limit, offset)
}

func (s *paymentService) HandleFinqleEvent(ctx context.Context, event dto.FinqleWebhookEvent) error {
	switch event.Event {
	case dto.FinqlePaymentInitiated, dto.FinqlePaymentCompleted, dto.FinqlePaymentFailed:
		var data dto.FinqlePaymentData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return apperrors.NewAppError(http.StatusBadRequest, "Ongeldige webhook payload", apperrors.ErrValidation)
		}
		return s.handlePaymentEvent(ctx, event.Event, data, event.Timestamp)
	case dto.FinqleInvoiceCreated, dto.FinqleInvoicePaid, dto.FinqleInvoiceOverdue:
		var data dto.FinqleInvoiceData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return apperrors.NewAppError(http.StatusBadRequest, "Ongeldige webhook payload", apperrors.ErrValidation)
		}
		return s.handleInvoiceEvent(ctx, event.Event, data, event.Timestamp)
	}
	return apperrors.NewAppError(http.StatusBadRequest, fmt.Sprintf("Onbekend webhook event: %s", event.Event), apperrors.ErrValidation)
}

func (s *paymentService) handlePaymentEvent(ctx context.Context, eventType dto.FinqleEventType, data dto.FinqlePaymentData, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	status := domain.BetalingProcessing
	switch eventType {
	case dto.FinqlePaymentCompleted:
		status = domain.BetalingPaid
	case dto.FinqlePaymentFailed:
		status = domain.BetalingFailed
	}

	existing, err := s.paymentRepo.FindBetalingByExternalID(ctx, data.PaymentID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		// First event for this payment; events can arrive out of order.
		if err := s.paymentRepo.SaveBetaling(ctx, domain.Betaling{
			BetalingID:      uuid.NewString(),
			ExternalID:      data.PaymentID,
			OntvangerUserID: data.UserID,
			Bedrag:          data.Amount,
			Status:          status,
			FailureReason:   data.Reason,
			LastWebhookAt:   &at,
			CreatedAt:       at,
			LastUpdatedAt:   at,
		}); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Raced webhook retry; the other delivery won.
				return nil
			}
			return err
		}
	case err != nil:
		return err
	default:
		if existing.Status == status {
			s.LogDebug(ctx, "duplicate webhook delivery ignored", "externalID", data.PaymentID)
			return nil
		}
		if err := s.paymentRepo.UpdateBetalingStatus(ctx, data.PaymentID, status, data.Reason, at); err != nil {
			return err
		}
	}

	if eventType == dto.FinqlePaymentInitiated {
		return nil
	}
	return s.queueBetalingNotification(ctx, data.PaymentID, data.UserID, status, data.Reason, at)
}

func (s *paymentService) handleInvoiceEvent(ctx context.Context, eventType dto.FinqleEventType, data dto.FinqleInvoiceData, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	status := domain.FactuurOpen
	switch eventType {
	case dto.FinqleInvoicePaid:
		status = domain.FactuurBetaald
	case dto.FinqleInvoiceOverdue:
		status = domain.FactuurAchterstallig
	}

	existing, err := s.paymentRepo.FindFactuurByExternalID(ctx, data.InvoiceID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		if err := s.paymentRepo.SaveFactuur(ctx, domain.Factuur{
			FactuurID:      uuid.NewString(),
			ExternalID:     data.InvoiceID,
			OpdrachtID:     data.OpdrachtID,
			DebiteurUserID: data.UserID,
			Bedrag:         data.Amount,
			Status:         status,
			VervalDatum:    data.DueDate,
			CreatedAt:      at,
			LastUpdatedAt:  at,
		}); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return nil
			}
			return err
		}
		return nil
	case err != nil:
		return err
	}

	if existing.Status == status {
		s.LogDebug(ctx, "duplicate webhook delivery ignored", "externalID", data.InvoiceID)
		return nil
	}
	return s.paymentRepo.UpdateFactuurStatus(ctx, data.InvoiceID, status, at)
}

func (s *paymentService) queueBetalingNotification(ctx context.Context, externalID, userID string, status domain.BetalingStatus, reason string, at time.Time) error {
	payload, err := json.Marshal(domain.BetalingEventPayload{
		ExternalID: externalID,
		UserID:     userID,
		Status:     status,
		Reason:     reason,
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.AppendEvent(ctx, domain.OutboxEvent{
		EventID:     uuid.NewString(),
		Type:        domain.EventBetalingUpdate,
		ActorUserID: "finqle-webhook",
		SubjectID:   externalID,
		Payload:     payload,
		Status:      domain.OutboxPending,
		CreatedAt:   at,
	})
}
