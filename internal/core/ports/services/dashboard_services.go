package services

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/dto"
)

// DashboardSvcFacade serves aggregated dashboard numbers from the injected
// query cache.
type DashboardSvcFacade interface {
	// BedrijfStats returns the bedrijf dashboard aggregates for the actor.
	BedrijfStats(ctx context.Context, actorUserID string) (*dto.BedrijfDashboardStats, error)
}
