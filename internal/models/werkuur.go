package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Werkuur is the database representation of a work-hour record.
type Werkuur struct {
	WerkuurID      string          `db:"werkuur_id"`
	OpdrachtID     string          `db:"opdracht_id"`
	SollicitatieID string          `db:"sollicitatie_id"`
	ZZPProfileID   string          `db:"zzp_profile_id"`
	StartTijd      time.Time       `db:"start_tijd"`
	EindTijd       time.Time       `db:"eind_tijd"`
	Uurtarief      decimal.Decimal `db:"uurtarief"`
	Status         string          `db:"status"`
	AuditFields
}
