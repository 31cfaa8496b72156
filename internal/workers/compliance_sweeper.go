package workers

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
)

// ComplianceSweeper runs the expiring-license check on a fixed interval.
// Cross-instance serialization happens inside the service via an advisory
// lock, so every instance can run a sweeper.
type ComplianceSweeper struct {
	compliance portssvc.ComplianceSvcFacade
	interval   time.Duration
	logger     *slog.Logger
}

func NewComplianceSweeper(compliance portssvc.ComplianceSvcFacade, interval time.Duration, logger *slog.Logger) *ComplianceSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ComplianceSweeper{
		compliance: compliance,
		interval:   interval,
		logger:     logger,
	}
}

// Run sweeps once at startup and then on every tick until the context is
// cancelled.
func (s *ComplianceSweeper) Run(ctx context.Context) {
	s.logger.Info("compliance sweeper started", slog.Duration("interval", s.interval))
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("compliance sweeper stopping")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ComplianceSweeper) sweep(ctx context.Context) {
	result, err := s.compliance.CheckExpiringNDNummers(ctx)
	if err != nil {
		s.logger.Error("compliance sweep failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("compliance sweep completed",
		slog.Int("checked", result.ProfilesChecked),
		slog.Int("demoted", result.Demoted),
		slog.Int("warnings", result.WarningsSent),
		slog.Int("skipped", result.Skipped))
}
