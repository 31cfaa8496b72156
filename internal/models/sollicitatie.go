package models

import "github.com/shopspring/decimal"

// Sollicitatie is the database representation of an application. The
// compliance snapshot columns are written once and never updated.
type Sollicitatie struct {
	SollicitatieID    string           `db:"sollicitatie_id"`
	OpdrachtID        string           `db:"opdracht_id"`
	SollicitantType   string           `db:"sollicitant_type"`
	SollicitantID     string           `db:"sollicitant_id"`
	Status            string           `db:"status"`
	NDNummerStatus    string           `db:"nd_nummer_status"`
	RiskLevel         string           `db:"risk_level"`
	IsCompliant       bool             `db:"is_compliant"`
	VoorgesteldTarief *decimal.Decimal `db:"voorgesteld_tarief"`
	TeamGrootte       *int             `db:"team_grootte"`
	Motivatie         string           `db:"motivatie"`
	AuditFields
}
