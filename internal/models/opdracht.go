package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opdracht is the database representation of a job posting. Creator is
// stored as a (creator_type, creator_id) pair.
type Opdracht struct {
	OpdrachtID        string          `db:"opdracht_id"`
	Titel             string          `db:"titel"`
	Beschrijving      string          `db:"beschrijving"`
	Locatie           string          `db:"locatie"`
	StartDatum        time.Time       `db:"start_datum"`
	EindDatum         time.Time       `db:"eind_datum"`
	Uurtarief         decimal.Decimal `db:"uurtarief"`
	AantalBeveiligers int             `db:"aantal_beveiligers"`
	AcceptedCount     int             `db:"accepted_count"`
	Status            string          `db:"status"`
	TargetAudience    string          `db:"target_audience"`
	DirectZZPAllowed  bool            `db:"direct_zzp_allowed"`
	AutoAccept        bool            `db:"auto_accept"`
	MinTeamSize       *int            `db:"min_team_size"`
	CreatorType       string          `db:"creator_type"`
	CreatorID         string          `db:"creator_id"`
	AcceptedBedrijfID *string         `db:"accepted_bedrijf_id"`
	AuditFields
}
