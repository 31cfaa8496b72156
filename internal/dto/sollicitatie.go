package dto

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyRequest defines the payload for applying to an opdracht.
type ApplyRequest struct {
	Motivatie         string           `json:"motivatie"`
	VoorgesteldTarief *decimal.Decimal `json:"voorgesteldTarief"`
	TeamGrootte       *int             `json:"teamGrootte"` // bedrijf applicants
}

// DecideAction is the reviewer's verdict on a sollicitatie.
type DecideAction string

const (
	DecideAccept DecideAction = "accept"
	DecideReject DecideAction = "reject"
)

// DecideRequest defines the payload for accepting or rejecting a sollicitatie.
type DecideRequest struct {
	Action DecideAction `json:"action" binding:"required,oneof=accept reject"`
}

// SollicitatieResponse is the public view of an application.
type SollicitatieResponse struct {
	SollicitatieID    string                    `json:"sollicitatieID"`
	OpdrachtID        string                    `json:"opdrachtID"`
	SollicitantType   domain.SollicitantType    `json:"sollicitantType"`
	SollicitantID     string                    `json:"sollicitantID"`
	Status            domain.SollicitatieStatus `json:"status"`
	Compliance        domain.ComplianceSnapshot `json:"compliance"`
	VoorgesteldTarief *decimal.Decimal          `json:"voorgesteldTarief,omitempty"`
	TeamGrootte       *int                      `json:"teamGrootte,omitempty"`
	Motivatie         string                    `json:"motivatie"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

// ToSollicitatieResponse converts a domain.Sollicitatie to its response DTO.
func ToSollicitatieResponse(s *domain.Sollicitatie) SollicitatieResponse {
	return SollicitatieResponse{
		SollicitatieID:    s.SollicitatieID,
		OpdrachtID:        s.OpdrachtID,
		SollicitantType:   s.SollicitantType,
		SollicitantID:     s.SollicitantID,
		Status:            s.Status,
		Compliance:        s.Compliance,
		VoorgesteldTarief: s.VoorgesteldTarief,
		TeamGrootte:       s.TeamGrootte,
		Motivatie:         s.Motivatie,
		CreatedAt:         s.CreatedAt,
	}
}

// ApplyResponse reports the application outcome, including whether the
// auto-accept path assigned the opdracht on the spot.
type ApplyResponse struct {
	Sollicitatie SollicitatieResponse `json:"sollicitatie"`
	AutoAccepted bool                 `json:"autoAccepted"`
	OpdrachtStatus domain.OpdrachtStatus `json:"opdrachtStatus"`
}
