package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpdrachtStatus is the lifecycle state of a job posting.
type OpdrachtStatus string

const (
	OpdrachtDraft      OpdrachtStatus = "DRAFT"
	OpdrachtOpen       OpdrachtStatus = "OPEN"
	OpdrachtUrgent     OpdrachtStatus = "URGENT"
	OpdrachtToegewezen OpdrachtStatus = "TOEGEWEZEN"
	OpdrachtInProgress OpdrachtStatus = "IN_PROGRESS"
	OpdrachtCompleted  OpdrachtStatus = "COMPLETED"
	OpdrachtCancelled  OpdrachtStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are allowed.
func (s OpdrachtStatus) IsTerminal() bool {
	return s == OpdrachtCompleted || s == OpdrachtCancelled
}

// IsOpenForApplications reports whether new sollicitaties are accepted.
func (s OpdrachtStatus) IsOpenForApplications() bool {
	return s == OpdrachtOpen || s == OpdrachtUrgent
}

// CanTransitionTo enforces the opdracht state machine:
// DRAFT -> OPEN/URGENT -> TOEGEWEZEN -> IN_PROGRESS -> COMPLETED, with
// CANCELLED reachable from any non-terminal state.
func (s OpdrachtStatus) CanTransitionTo(next OpdrachtStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OpdrachtCancelled {
		return true
	}
	switch s {
	case OpdrachtDraft:
		return next == OpdrachtOpen || next == OpdrachtUrgent
	case OpdrachtOpen, OpdrachtUrgent:
		return next == OpdrachtToegewezen
	case OpdrachtToegewezen:
		return next == OpdrachtInProgress
	case OpdrachtInProgress:
		return next == OpdrachtCompleted
	}
	return false
}

// TargetAudience restricts who may apply to an opdracht.
type TargetAudience string

const (
	AudienceAlleenBedrijven TargetAudience = "ALLEEN_BEDRIJVEN"
	AudienceAlleenZZP       TargetAudience = "ALLEEN_ZZP"
	AudienceBeiden          TargetAudience = "BEIDEN"
	AudienceEigenTeam       TargetAudience = "EIGEN_TEAM"
)

// AllowsZZP reports whether a ZZP actor may apply, given the opdracht's
// direct-ZZP override flag.
func (a TargetAudience) AllowsZZP(directZZPAllowed bool) bool {
	switch a {
	case AudienceBeiden, AudienceAlleenZZP:
		return true
	}
	return directZZPAllowed
}

// AllowsBedrijf reports whether a bedrijf actor may apply.
func (a TargetAudience) AllowsBedrijf() bool {
	return a == AudienceBeiden || a == AudienceAlleenBedrijven
}

// Opdracht is a job posting / work order.
type Opdracht struct {
	OpdrachtID        string          `json:"opdrachtID"` // Primary key (UUID)
	Titel             string          `json:"titel"`
	Beschrijving      string          `json:"beschrijving"`
	Locatie           string          `json:"locatie"`
	StartDatum        time.Time       `json:"startDatum"`
	EindDatum         time.Time       `json:"eindDatum"`
	Uurtarief         decimal.Decimal `json:"uurtarief"`         // must be >= platform minimum
	AantalBeveiligers int             `json:"aantalBeveiligers"` // required headcount
	AcceptedCount     int             `json:"acceptedCount"`     // accepted applicants, never exceeds AantalBeveiligers
	Status            OpdrachtStatus  `json:"status"`
	TargetAudience    TargetAudience  `json:"targetAudience"`
	DirectZZPAllowed  bool            `json:"directZZPAllowed"`
	AutoAccept        bool            `json:"autoAccept"`
	MinTeamSize       *int            `json:"minTeamSize,omitempty"` // bedrijf applicants only
	Creator           Owner           `json:"creator"`
	AcceptedBedrijfID *string         `json:"acceptedBedrijfID,omitempty"`
	AuditFields
}

// RemainingSlots is the headcount still to be filled.
func (o Opdracht) RemainingSlots() int {
	n := o.AantalBeveiligers - o.AcceptedCount
	if n < 0 {
		return 0
	}
	return n
}
