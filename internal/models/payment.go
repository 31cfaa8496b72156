package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Betaling is the database mirror of a Finqle payout.
type Betaling struct {
	BetalingID      string          `db:"betaling_id"`
	ExternalID      string          `db:"external_id"`
	OntvangerUserID string          `db:"ontvanger_user_id"`
	Bedrag          decimal.Decimal `db:"bedrag"`
	Status          string          `db:"status"`
	FailureReason   string          `db:"failure_reason"`
	LastWebhookAt   *time.Time      `db:"last_webhook_at"`
	CreatedAt       time.Time       `db:"created_at"`
	LastUpdatedAt   time.Time       `db:"last_updated_at"`
}

// Factuur is the database mirror of a Finqle invoice.
type Factuur struct {
	FactuurID      string          `db:"factuur_id"`
	ExternalID     string          `db:"external_id"`
	OpdrachtID     *string         `db:"opdracht_id"`
	DebiteurUserID string          `db:"debiteur_user_id"`
	Bedrag         decimal.Decimal `db:"bedrag"`
	Status         string          `db:"status"`
	VervalDatum    *time.Time      `db:"verval_datum"`
	CreatedAt      time.Time       `db:"created_at"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
}
