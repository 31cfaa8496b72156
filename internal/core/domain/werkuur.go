package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WerkuurStatus is the lifecycle state of a logged or scheduled work-hour
// record.
type WerkuurStatus string

const (
	WerkuurScheduled WerkuurStatus = "SCHEDULED"
	WerkuurLogged    WerkuurStatus = "LOGGED"
	WerkuurApproved  WerkuurStatus = "APPROVED"
	WerkuurPaid      WerkuurStatus = "PAID"
)

// Werkuur ties scheduled or logged hours to an accepted assignment. A
// scheduled row is materialized when a ZZP sollicitatie is auto-accepted on
// an urgent opdracht.
type Werkuur struct {
	WerkuurID      string          `json:"werkuurID"` // Primary key (UUID)
	OpdrachtID     string          `json:"opdrachtID"`
	SollicitatieID string          `json:"sollicitatieID"`
	ZZPProfileID   string          `json:"zzpProfileID"`
	StartTijd      time.Time       `json:"startTijd"`
	EindTijd       time.Time       `json:"eindTijd"`
	Uurtarief      decimal.Decimal `json:"uurtarief"`
	Status         WerkuurStatus   `json:"status"`
	AuditFields
}
