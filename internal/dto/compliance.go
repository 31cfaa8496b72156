package dto

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// RegisterNDNummerRequest registers or refreshes a profile's license data.
type RegisterNDNummerRequest struct {
	NDNummer    string    `json:"ndNummer" binding:"required,nd_nummer"`
	VervalDatum time.Time `json:"vervalDatum" binding:"required"`
}

// ComplianceMonitorResponse is the caller's current license classification.
type ComplianceMonitorResponse struct {
	ProfileID  string                  `json:"profileID"`
	NDNummer   *string                 `json:"ndNummer,omitempty"`
	Status     domain.NDNummerStatus   `json:"status"`
	VervalDatum *time.Time             `json:"vervalDatum,omitempty"`
	Compliance domain.ComplianceStatus `json:"compliance"`
}

// SweepResult summarizes one run of the expiring-license sweep.
type SweepResult struct {
	ProfilesChecked int `json:"profilesChecked"`
	Demoted         int `json:"demoted"`
	WarningsSent    int `json:"warningsSent"`
	Skipped         int `json:"skipped"` // de-duplicated warnings
}

// NDNummerAuditResponse is the public view of one audit entry.
type NDNummerAuditResponse struct {
	AuditID        string                `json:"auditID"`
	Action         domain.NDNummerAction `json:"action"`
	PreviousStatus domain.NDNummerStatus `json:"previousStatus"`
	NewStatus      domain.NDNummerStatus `json:"newStatus"`
	RiskLevel      domain.RiskLevel      `json:"riskLevel"`
	Details        string                `json:"details"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToNDNummerAuditResponse converts an audit entry to its response DTO.
func ToNDNummerAuditResponse(e *domain.NDNummerAuditLog) NDNummerAuditResponse {
	return NDNummerAuditResponse{
		AuditID:        e.AuditID,
		Action:         e.Action,
		PreviousStatus: e.PreviousStatus,
		NewStatus:      e.NewStatus,
		RiskLevel:      e.RiskLevel,
		Details:        e.Details,
		CreatedAt:      e.CreatedAt,
	}
}
