package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/platform/metrics"
	"github.com/securyflex/securyflex-backend/internal/utils/compliance"
)

// ndNummerPattern matches the Justis ND-nummer format.
var ndNummerPattern = regexp.MustCompile(`^ND\d{6,8}$`)

// warningDedupWindow suppresses repeat expiry warnings of the same tier.
const warningDedupWindow = 7 * 24 * time.Hour

const systemActor = "system"

type complianceService struct {
	BaseService
	profileRepo      portsrepo.ProfileRepositoryWithTx
	auditRepo        portsrepo.AuditRepository
	notificationRepo portsrepo.NotificationRepository
	outboxRepo       portsrepo.OutboxRepository
	userRepo         portsrepo.UserRepository
	sweepLocker      portsrepo.SweepLocker
	cache            portssvc.QueryCache
}

// NewComplianceService creates the license monitoring service.
func NewComplianceService(
	profileRepo portsrepo.ProfileRepositoryWithTx,
	auditRepo portsrepo.AuditRepository,
	notificationRepo portsrepo.NotificationRepository,
	outboxRepo portsrepo.OutboxRepository,
	userRepo portsrepo.UserRepository,
	sweepLocker portsrepo.SweepLocker,
	cache portssvc.QueryCache,
) portssvc.ComplianceSvcFacade {
	return &complianceService{
		profileRepo:      profileRepo,
		auditRepo:        auditRepo,
		notificationRepo: notificationRepo,
		outboxRepo:       outboxRepo,
		userRepo:         userRepo,
		sweepLocker:      sweepLocker,
		cache:            cache,
	}
}

var _ portssvc.ComplianceSvcFacade = (*complianceService)(nil)

// resolveLicensedProfile finds the ZZP or bedrijf profile behind an account.
func (s *complianceService) resolveLicensedProfile(ctx context.Context, userID string) (string, domain.SollicitantType, domain.LicenseInfo, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", "", domain.LicenseInfo{}, err
	}
	switch user.Role {
	case domain.RoleZZPBeveiliger:
		profile, err := s.profileRepo.FindZZPByUserID(ctx, userID)
		if err != nil {
			return "", "", domain.LicenseInfo{}, err
		}
		return profile.ProfileID, domain.SollicitantZZP, profile.LicenseInfo, nil
	case domain.RoleBedrijf:
		profile, err := s.profileRepo.FindBedrijfByUserID(ctx, userID)
		if err != nil {
			return "", "", domain.LicenseInfo{}, err
		}
		return profile.ProfileID, domain.SollicitantBedrijf, profile.LicenseInfo, nil
	}
	return "", "", domain.LicenseInfo{}, apperrors.NewAppError(http.StatusForbidden, "Opdrachtgevers hebben geen ND-nummer registratie", apperrors.ErrForbidden)
}

func (s *complianceService) Monitor(ctx context.Context, actorUserID string) (*dto.ComplianceMonitorResponse, error) {
	profileID, _, license, err := s.resolveLicensedProfile(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return &dto.ComplianceMonitorResponse{
		ProfileID:   profileID,
		NDNummer:    license.NDNummer,
		Status:      license.NDNummerStatus,
		VervalDatum: license.NDNummerVervalDatum,
		Compliance:  compliance.EvaluateLicense(license, time.Now()),
	}, nil
}

func (s *complianceService) RegisterNDNummer(ctx context.Context, actorUserID string, req dto.RegisterNDNummerRequest) (*dto.ComplianceMonitorResponse, error) {
	if !ndNummerPattern.MatchString(req.NDNummer) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Ongeldig ND-nummer formaat, verwacht ND gevolgd door 6-8 cijfers", apperrors.ErrValidation)
	}
	if !req.VervalDatum.After(time.Now()) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "De vervaldatum moet in de toekomst liggen", apperrors.ErrValidation)
	}

	profileID, profileType, previous, err := s.resolveLicensedProfile(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	info := domain.LicenseInfo{
		NDNummer:            &req.NDNummer,
		NDNummerStatus:      domain.NDActief,
		NDNummerVervalDatum: &req.VervalDatum,
	}

	action := domain.NDActionRegistered
	if previous.NDNummerStatus != "" && previous.NDNummerStatus != domain.NDNietGeregistreerd {
		action = domain.NDActionStatusChange
	}
	cs := compliance.EvaluateLicense(info, now)

	// The audit entry commits or rolls back with the license mutation.
	tx, err := s.profileRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.profileRepo.Rollback(ctx, tx) }()

	if err := s.profileRepo.UpdateLicenseInTx(ctx, tx, profileID, profileType, info, actorUserID, now); err != nil {
		return nil, err
	}
	if err := s.auditRepo.AppendNDNummerAuditInTx(ctx, tx, domain.NDNummerAuditLog{
		AuditID:        uuid.NewString(),
		ProfileID:      profileID,
		ProfileType:    profileType,
		Action:         action,
		PreviousStatus: previous.NDNummerStatus,
		NewStatus:      domain.NDActief,
		RiskLevel:      cs.RiskLevel,
		Details:        fmt.Sprintf("ND-nummer %s geldig tot %s", req.NDNummer, req.VervalDatum.Format("2006-01-02")),
		PerformedBy:    actorUserID,
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidatePrefix("dashboard:")
	}
	s.LogInfo(ctx, "nd-nummer registered", "profileID", profileID, "action", string(action))

	return &dto.ComplianceMonitorResponse{
		ProfileID:   profileID,
		NDNummer:    info.NDNummer,
		Status:      info.NDNummerStatus,
		VervalDatum: info.NDNummerVervalDatum,
		Compliance:  cs,
	}, nil
}

func (s *complianceService) AuditTrail(ctx context.Context, actorUserID string, limit, offset int) ([]domain.NDNummerAuditLog, error) {
	profileID, _, _, err := s.resolveLicensedProfile(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return s.auditRepo.ListByProfile(ctx, profileID, limit, offset)
}

func (s *complianceService) CheckExpiringNDNummers(ctx context.Context) (*dto.SweepResult, error) {
	locked, err := s.sweepLocker.TryLockSweep(ctx)
	if err != nil {
		return nil, err
	}
	if !locked {
		s.LogDebug(ctx, "compliance sweep already running elsewhere, skipping")
		return &dto.SweepResult{}, nil
	}
	defer func() {
		if err := s.sweepLocker.UnlockSweep(ctx); err != nil {
			s.LogError(ctx, err, "failed to release sweep lock")
		}
	}()

	metrics.SweepRuns.Inc()
	now := time.Now()

	profiles, err := s.profileRepo.ListLicensedProfiles(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.SweepResult{ProfilesChecked: len(profiles)}
	for i := range profiles {
		if err := s.sweepProfile(ctx, &profiles[i], now, result); err != nil {
			s.LogError(ctx, err, "sweep failed for profile", "profileID", profiles[i].ProfileID)
		}
	}

	s.LogInfo(ctx, "compliance sweep finished",
		"checked", result.ProfilesChecked,
		"demoted", result.Demoted,
		"warnings", result.WarningsSent,
		"skipped", result.Skipped)
	return result, nil
}

func (s *complianceService) sweepProfile(ctx context.Context, profile *domain.LicensedProfile, now time.Time, result *dto.SweepResult) error {
	cs := compliance.EvaluateLicense(profile.LicenseInfo, now)

	if cs.IsExpired && profile.NDNummerStatus == domain.NDActief {
		return s.demoteExpired(ctx, profile, cs, now, result)
	}

	if !cs.IsExpiringSoon || cs.DaysUntilExpiry == nil || profile.NDNummerStatus != domain.NDActief {
		return nil
	}

	notificationType := warningTier(*cs.DaysUntilExpiry)
	recent, err := s.notificationRepo.ExistsRecent(ctx, profile.UserID, notificationType, now.Add(-warningDedupWindow))
	if err != nil {
		return err
	}
	if recent {
		result.Skipped++
		return nil
	}

	payload, err := json.Marshal(domain.LicenseEventPayload{
		ProfileID:       profile.ProfileID,
		UserID:          profile.UserID,
		DaysUntilExpiry: *cs.DaysUntilExpiry,
		Notification:    notificationType,
	})
	if err != nil {
		return err
	}
	if err := s.outboxRepo.AppendEvent(ctx, domain.OutboxEvent{
		EventID:     uuid.NewString(),
		Type:        domain.EventNDNummerExpiring,
		ActorUserID: systemActor,
		SubjectID:   profile.ProfileID,
		Payload:     payload,
		Status:      domain.OutboxPending,
		CreatedAt:   now,
	}); err != nil {
		return err
	}

	if err := s.auditRepo.AppendNDNummerAudit(ctx, domain.NDNummerAuditLog{
		AuditID:        uuid.NewString(),
		ProfileID:      profile.ProfileID,
		ProfileType:    profile.ProfileType,
		Action:         domain.NDActionExpiryWarning,
		PreviousStatus: profile.NDNummerStatus,
		NewStatus:      profile.NDNummerStatus,
		RiskLevel:      cs.RiskLevel,
		Details:        fmt.Sprintf("ND-nummer verloopt over %d dagen", *cs.DaysUntilExpiry),
		PerformedBy:    systemActor,
		CreatedAt:      now,
	}); err != nil {
		return err
	}

	result.WarningsSent++
	return nil
}

func (s *complianceService) demoteExpired(ctx context.Context, profile *domain.LicensedProfile, cs domain.ComplianceStatus, now time.Time, result *dto.SweepResult) error {
	info := profile.LicenseInfo
	info.NDNummerStatus = domain.NDVerlopen

	payload, err := json.Marshal(domain.LicenseEventPayload{
		ProfileID:    profile.ProfileID,
		UserID:       profile.UserID,
		Notification: domain.NotifyNDNummerVerlopen,
	})
	if err != nil {
		return err
	}

	// Demotion, audit entry and outbox event land in one transaction.
	tx, err := s.profileRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.profileRepo.Rollback(ctx, tx) }()

	if err := s.profileRepo.UpdateLicenseInTx(ctx, tx, profile.ProfileID, profile.ProfileType, info, systemActor, now); err != nil {
		return err
	}
	if err := s.auditRepo.AppendNDNummerAuditInTx(ctx, tx, domain.NDNummerAuditLog{
		AuditID:        uuid.NewString(),
		ProfileID:      profile.ProfileID,
		ProfileType:    profile.ProfileType,
		Action:         domain.NDActionExpired,
		PreviousStatus: domain.NDActief,
		NewStatus:      domain.NDVerlopen,
		RiskLevel:      cs.RiskLevel,
		Details:        "ND-nummer vervaldatum verstreken, status automatisch bijgewerkt",
		PerformedBy:    systemActor,
		CreatedAt:      now,
	}); err != nil {
		return err
	}
	if err := s.outboxRepo.AppendEventInTx(ctx, tx, domain.OutboxEvent{
		EventID:     uuid.NewString(),
		Type:        domain.EventNDNummerVerlopen,
		ActorUserID: systemActor,
		SubjectID:   profile.ProfileID,
		Payload:     payload,
		Status:      domain.OutboxPending,
		CreatedAt:   now,
	}); err != nil {
		return err
	}
	if err := s.profileRepo.Commit(ctx, tx); err != nil {
		return err
	}

	metrics.SweepDemotions.Inc()
	result.Demoted++

	if s.cache != nil {
		s.cache.InvalidatePrefix("dashboard:")
	}
	return nil
}

// warningTier buckets remaining days into the 90/60/30 warning ladder.
func warningTier(days int) domain.NotificationType {
	switch {
	case days <= 30:
		return domain.NotifyNDNummerExpiry30
	case days <= 60:
		return domain.NotifyNDNummerExpiry60
	default:
		return domain.NotifyNDNummerExpiry90
	}
}
