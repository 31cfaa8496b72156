package services

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

// ComplianceSvcFacade exposes license monitoring and the periodic sweep.
type ComplianceSvcFacade interface {
	// Monitor returns the caller's current license classification.
	Monitor(ctx context.Context, actorUserID string) (*dto.ComplianceMonitorResponse, error)

	// RegisterNDNummer records or refreshes the caller's license data and
	// writes an audit entry.
	RegisterNDNummer(ctx context.Context, actorUserID string, req dto.RegisterNDNummerRequest) (*dto.ComplianceMonitorResponse, error)

	// CheckExpiringNDNummers scans all licensed profiles, demotes expired
	// ones to VERLOPEN and queues tiered expiry warnings. Concurrent runs
	// are serialized by an advisory lock.
	CheckExpiringNDNummers(ctx context.Context) (*dto.SweepResult, error)

	// AuditTrail returns the caller's license audit entries.
	AuditTrail(ctx context.Context, actorUserID string, limit, offset int) ([]domain.NDNummerAuditLog, error)
}
