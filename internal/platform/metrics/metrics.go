// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookEvents counts processed Finqle webhook events by type and result.
	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "securyflex_webhook_events_total",
		Help: "Finqle webhook events processed, by event type and result.",
	}, []string{"event", "result"})

	// NotificationsDispatched counts notification deliveries by channel.
	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "securyflex_notifications_dispatched_total",
		Help: "Notifications dispatched to external channels, by channel and result.",
	}, []string{"channel", "result"})

	// OutboxDeliveries counts outbox worker delivery outcomes.
	OutboxDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "securyflex_outbox_deliveries_total",
		Help: "Outbox event delivery attempts, by result.",
	}, []string{"result"})

	// SweepRuns counts compliance sweep executions.
	SweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "securyflex_compliance_sweep_runs_total",
		Help: "Compliance sweep executions.",
	})

	// SweepDemotions counts profiles demoted to VERLOPEN by the sweep.
	SweepDemotions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "securyflex_compliance_sweep_demotions_total",
		Help: "Profiles demoted to VERLOPEN by the compliance sweep.",
	})
)
