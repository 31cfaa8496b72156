// Package compliance classifies ND-nummer license state. Evaluate is a pure
// function: the lifecycle services and the periodic sweep both rely on it
// producing identical answers for identical inputs.
package compliance

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

const (
	expiringSoonDays = 90
	highRiskDays     = 30
)

// Evaluate classifies a license (status, expiry) pair at the given moment.
// A missing status or missing expiry always yields CRITICAL with a nil
// DaysUntilExpiry; unknown is never treated as compliant.
func Evaluate(status *domain.NDNummerStatus, expiry *time.Time, now time.Time) domain.ComplianceStatus {
	if status == nil || expiry == nil {
		return domain.ComplianceStatus{
			RiskLevel: domain.RiskCritical,
		}
	}

	days := daysUntil(*expiry, now)
	result := domain.ComplianceStatus{
		IsExpired:       expiry.Before(now),
		IsExpiringSoon:  days >= 0 && days <= expiringSoonDays,
		DaysUntilExpiry: &days,
	}
	result.IsCompliant = *status == domain.NDActief && expiry.After(now)

	switch {
	case result.IsExpired,
		*status == domain.NDIngetrokken,
		*status == domain.NDGeschorst:
		result.RiskLevel = domain.RiskCritical
	case days <= highRiskDays:
		result.RiskLevel = domain.RiskHigh
	case days <= expiringSoonDays:
		result.RiskLevel = domain.RiskMedium
	default:
		result.RiskLevel = domain.RiskLow
	}

	return result
}

// EvaluateLicense is a convenience wrapper over the LicenseInfo shape carried
// by ZZP and bedrijf profiles. NIET_GEREGISTREERD counts as a missing status.
func EvaluateLicense(info domain.LicenseInfo, now time.Time) domain.ComplianceStatus {
	status := info.NDNummerStatus
	if status == "" || status == domain.NDNietGeregistreerd {
		return Evaluate(nil, info.NDNummerVervalDatum, now)
	}
	return Evaluate(&status, info.NDNummerVervalDatum, now)
}

// daysUntil counts whole days from now until expiry, truncated toward zero.
func daysUntil(expiry, now time.Time) int {
	return int(expiry.Sub(now).Hours() / 24)
}
