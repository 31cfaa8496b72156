package dto

import "github.com/securyflex/securyflex-backend/internal/core/domain"

// BedrijfDashboardStats aggregates the numbers shown on the bedrijf
// dashboard. Served from the TTL query cache.
type BedrijfDashboardStats struct {
	OpenSollicitaties    int                     `json:"openSollicitaties"`
	ActieveOpdrachten    int                     `json:"actieveOpdrachten"`
	AfgerondeOpdrachten  int                     `json:"afgerondeOpdrachten"`
	TeamGrootte          int                     `json:"teamGrootte"`
	Compliance           domain.ComplianceStatus `json:"compliance"`
	OngelezenNotificaties int                    `json:"ongelezenNotificaties"`
}
