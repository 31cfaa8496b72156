package domain

import "github.com/shopspring/decimal"

// SollicitantType discriminates the kind of applicant behind a sollicitatie.
type SollicitantType string

const (
	SollicitantZZP     SollicitantType = "ZZP"
	SollicitantBedrijf SollicitantType = "BEDRIJF"
)

// SollicitatieStatus is the lifecycle state of an application.
type SollicitatieStatus string

const (
	SollicitatiePending  SollicitatieStatus = "PENDING"
	SollicitatieAccepted SollicitatieStatus = "ACCEPTED"
	SollicitatieRejected SollicitatieStatus = "REJECTED"
)

// ComplianceSnapshot records the applicant's license classification at
// application time, kept immutable for audit purposes.
type ComplianceSnapshot struct {
	NDNummerStatus NDNummerStatus `json:"ndNummerStatus"`
	RiskLevel      RiskLevel      `json:"riskLevel"`
	IsCompliant    bool           `json:"isCompliant"`
}

// Sollicitatie links a ZZP or bedrijf applicant to an opdracht.
// At most one sollicitatie exists per (opdracht, sollicitant) pair.
type Sollicitatie struct {
	SollicitatieID   string             `json:"sollicitatieID"` // Primary key (UUID)
	OpdrachtID       string             `json:"opdrachtID"`     // FK -> opdrachten
	SollicitantType  SollicitantType    `json:"sollicitantType"`
	SollicitantID    string             `json:"sollicitantID"` // profile id of the applicant
	Status           SollicitatieStatus `json:"status"`
	Compliance       ComplianceSnapshot `json:"compliance"`
	VoorgesteldTarief *decimal.Decimal  `json:"voorgesteldTarief,omitempty"`
	TeamGrootte      *int               `json:"teamGrootte,omitempty"` // bedrijf applicants only
	Motivatie        string             `json:"motivatie"`
	AuditFields
}
