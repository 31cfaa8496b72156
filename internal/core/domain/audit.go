package domain

import "time"

// NDNummerAction identifies what kind of license observation is recorded.
type NDNummerAction string

const (
	NDActionRegistered    NDNummerAction = "REGISTERED"
	NDActionStatusChange  NDNummerAction = "STATUS_CHANGE"
	NDActionExpiryWarning NDNummerAction = "EXPIRY_WARNING"
	NDActionExpired       NDNummerAction = "EXPIRED"
	NDActionChecked       NDNummerAction = "CHECKED"
)

// NDNummerAuditLog is an append-only record of a license status observation
// or change. Rows are never updated or deleted.
type NDNummerAuditLog struct {
	AuditID       string         `json:"auditID"` // Primary key (UUID)
	ProfileID     string         `json:"profileID"`
	ProfileType   SollicitantType `json:"profileType"`
	Action        NDNummerAction `json:"action"`
	PreviousStatus NDNummerStatus `json:"previousStatus"`
	NewStatus     NDNummerStatus `json:"newStatus"`
	RiskLevel     RiskLevel      `json:"riskLevel"`
	Details       string         `json:"details"`
	PerformedBy   string         `json:"performedBy"` // user id or "system"
	CreatedAt     time.Time      `json:"createdAt"`
}
