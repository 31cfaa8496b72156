package domain

// RiskLevel classifies how urgently a profile's license needs attention.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// ComplianceStatus is the deterministic classification of a license
// (status, expiry) pair at a point in time. DaysUntilExpiry is nil when the
// expiry date is unknown.
type ComplianceStatus struct {
	IsCompliant     bool      `json:"isCompliant"`
	IsExpired       bool      `json:"isExpired"`
	IsExpiringSoon  bool      `json:"isExpiringSoon"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	DaysUntilExpiry *int      `json:"daysUntilExpiry"`
}

// ComplianceWarning is the structured payload returned alongside an empty
// result set when a non-compliant actor requests available opdrachten.
type ComplianceWarning struct {
	Message   string         `json:"message"`
	Status    NDNummerStatus `json:"status"`
	RiskLevel RiskLevel      `json:"riskLevel"`
	ActionURL string         `json:"actionUrl"`
}
