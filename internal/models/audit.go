package models

import "time"

// NDNummerAuditLog is a row in the append-only license audit table.
type NDNummerAuditLog struct {
	AuditID        string    `db:"audit_id"`
	ProfileID      string    `db:"profile_id"`
	ProfileType    string    `db:"profile_type"`
	Action         string    `db:"action"`
	PreviousStatus string    `db:"previous_status"`
	NewStatus      string    `db:"new_status"`
	RiskLevel      string    `db:"risk_level"`
	Details        string    `db:"details"`
	PerformedBy    string    `db:"performed_by"`
	CreatedAt      time.Time `db:"created_at"`
}
