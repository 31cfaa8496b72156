package dto

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOpdrachtRequest defines the payload for posting a new opdracht.
type CreateOpdrachtRequest struct {
	Titel             string   `json:"titel" binding:"required"`
	Beschrijving      string   `json:"beschrijving" binding:"required"`
	Locatie           string   `json:"locatie" binding:"required"`
	StartDatum        time.Time `json:"startDatum" binding:"required"`
	EindDatum         time.Time `json:"eindDatum" binding:"required"`
	Uurtarief         decimal.Decimal `json:"uurtarief" binding:"required"`
	AantalBeveiligers int      `json:"aantalBeveiligers" binding:"required,min=1"`
	TargetAudience    domain.TargetAudience `json:"targetAudience" binding:"required,oneof=ALLEEN_BEDRIJVEN ALLEEN_ZZP BEIDEN EIGEN_TEAM"`
	DirectZZPAllowed  bool     `json:"directZZPAllowed"`
	AutoAccept        bool     `json:"autoAccept"`
	Urgent            bool     `json:"urgent"`
	MinTeamSize       *int     `json:"minTeamSize"`
	// Optional pre-assigned roster members; unknown ids are dropped.
	TeamMemberIDs []string `json:"teamMemberIDs"`
}

// ListOpdrachtenParams defines query parameters for listing opdrachten.
type ListOpdrachtenParams struct {
	View   string `form:"view"` // "available" applies the compliance gate
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// OpdrachtResponse is the public view of a job posting.
type OpdrachtResponse struct {
	OpdrachtID        string                `json:"opdrachtID"`
	Titel             string                `json:"titel"`
	Beschrijving      string                `json:"beschrijving"`
	Locatie           string                `json:"locatie"`
	StartDatum        time.Time             `json:"startDatum"`
	EindDatum         time.Time             `json:"eindDatum"`
	Uurtarief         decimal.Decimal       `json:"uurtarief"`
	AantalBeveiligers int                   `json:"aantalBeveiligers"`
	AcceptedCount     int                   `json:"acceptedCount"`
	Status            domain.OpdrachtStatus `json:"status"`
	TargetAudience    domain.TargetAudience `json:"targetAudience"`
	DirectZZPAllowed  bool                  `json:"directZZPAllowed"`
	AutoAccept        bool                  `json:"autoAccept"`
	MinTeamSize       *int                  `json:"minTeamSize,omitempty"`
	Creator           domain.Owner          `json:"creator"`
	AcceptedBedrijfID *string               `json:"acceptedBedrijfID,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// ToOpdrachtResponse converts a domain.Opdracht to its response DTO.
func ToOpdrachtResponse(o *domain.Opdracht) OpdrachtResponse {
	return OpdrachtResponse{
		OpdrachtID:        o.OpdrachtID,
		Titel:             o.Titel,
		Beschrijving:      o.Beschrijving,
		Locatie:           o.Locatie,
		StartDatum:        o.StartDatum,
		EindDatum:         o.EindDatum,
		Uurtarief:         o.Uurtarief,
		AantalBeveiligers: o.AantalBeveiligers,
		AcceptedCount:     o.AcceptedCount,
		Status:            o.Status,
		TargetAudience:    o.TargetAudience,
		DirectZZPAllowed:  o.DirectZZPAllowed,
		AutoAccept:        o.AutoAccept,
		MinTeamSize:       o.MinTeamSize,
		Creator:           o.Creator,
		AcceptedBedrijfID: o.AcceptedBedrijfID,
		CreatedAt:         o.CreatedAt,
	}
}

// ListOpdrachtenResponse wraps an opdracht listing. ComplianceWarning is set
// (with an empty Opdrachten slice) when the compliance gate blocked the
// "available" view.
type ListOpdrachtenResponse struct {
	Opdrachten        []OpdrachtResponse        `json:"opdrachten"`
	ComplianceWarning *domain.ComplianceWarning `json:"complianceWarning,omitempty"`
}

// UpdateOpdrachtStatusRequest moves a posting along its lifecycle.
type UpdateOpdrachtStatusRequest struct {
	Status domain.OpdrachtStatus `json:"status" binding:"required,oneof=OPEN URGENT TOEGEWEZEN IN_PROGRESS COMPLETED CANCELLED"`
}
