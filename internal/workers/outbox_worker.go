// Package workers holds the background loops started alongside the HTTP
// server: outbox delivery and the license sweep.
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/platform/metrics"
)

const (
	outboxBatchSize   = 50
	outboxMaxAttempts = 5
)

// OutboxWorker drains the transactional event outbox and hands events to the
// notification dispatcher. Delivery is at-least-once: an event is only marked
// delivered after the dispatcher succeeded.
type OutboxWorker struct {
	outboxRepo   portsrepo.OutboxRepository
	dispatcher   portssvc.EventDispatcherSvc
	pollInterval time.Duration
	logger       *slog.Logger
}

func NewOutboxWorker(outboxRepo portsrepo.OutboxRepository, dispatcher portssvc.EventDispatcherSvc, pollInterval time.Duration, logger *slog.Logger) *OutboxWorker {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &OutboxWorker{
		outboxRepo:   outboxRepo,
		dispatcher:   dispatcher,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Run polls until the context is cancelled.
func (w *OutboxWorker) Run(ctx context.Context) {
	w.logger.Info("outbox worker started", slog.Duration("pollInterval", w.pollInterval))
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopping")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	events, err := w.outboxRepo.FetchPending(ctx, outboxBatchSize)
	if err != nil {
		w.logger.Error("failed to fetch pending outbox events", slog.String("error", err.Error()))
		return
	}

	for i := range events {
		event := events[i]

		policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
		err := backoff.Retry(func() error {
			return w.dispatcher.DispatchEvent(ctx, event)
		}, policy)

		if err != nil {
			metrics.OutboxDeliveries.WithLabelValues("error").Inc()
			w.logger.Error("outbox delivery failed",
				slog.String("eventID", event.EventID),
				slog.String("type", string(event.Type)),
				slog.Int("attempts", event.Attempts+1),
				slog.String("error", err.Error()))
			if err := w.outboxRepo.MarkFailed(ctx, event.EventID, event.Attempts+1, outboxMaxAttempts); err != nil {
				w.logger.Error("failed to record outbox failure", slog.String("eventID", event.EventID), slog.String("error", err.Error()))
			}
			continue
		}

		metrics.OutboxDeliveries.WithLabelValues("ok").Inc()
		if err := w.outboxRepo.MarkDelivered(ctx, event.EventID, time.Now()); err != nil {
			w.logger.Error("failed to mark outbox event delivered", slog.String("eventID", event.EventID), slog.String("error", err.Error()))
		}
	}
}
