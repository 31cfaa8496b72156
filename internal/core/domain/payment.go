package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetalingStatus mirrors the payment state at the external processor.
type BetalingStatus string

const (
	BetalingProcessing BetalingStatus = "PROCESSING"
	BetalingPaid       BetalingStatus = "PAID"
	BetalingFailed     BetalingStatus = "FAILED"
)

// FactuurStatus mirrors the invoice state at the external processor.
type FactuurStatus string

const (
	FactuurOpen         FactuurStatus = "OPEN"
	FactuurBetaald      FactuurStatus = "BETAALD"
	FactuurAchterstallig FactuurStatus = "ACHTERSTALLIG"
)

// Betaling mirrors a Finqle payout. State is mutated exclusively by inbound
// webhook events, matched on the external payment id.
type Betaling struct {
	BetalingID       string          `json:"betalingID"` // Primary key (UUID)
	ExternalID       string          `json:"externalID"` // Finqle payment id, unique
	OntvangerUserID  string          `json:"ontvangerUserID"`
	Bedrag           decimal.Decimal `json:"bedrag"`
	Status           BetalingStatus  `json:"status"`
	FailureReason    string          `json:"failureReason,omitempty"`
	LastWebhookAt    *time.Time      `json:"lastWebhookAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// Factuur mirrors a Finqle invoice.
type Factuur struct {
	FactuurID     string          `json:"factuurID"` // Primary key (UUID)
	ExternalID    string          `json:"externalID"` // Finqle invoice id, unique
	OpdrachtID    *string         `json:"opdrachtID,omitempty"`
	DebiteurUserID string         `json:"debiteurUserID"`
	Bedrag        decimal.Decimal `json:"bedrag"`
	Status        FactuurStatus   `json:"status"`
	VervalDatum   *time.Time      `json:"vervalDatum,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
