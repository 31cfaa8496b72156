package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/utils/compliance"
	"github.com/shopspring/decimal"
)

type opdrachtService struct {
	BaseService
	opdrachtRepo     portsrepo.OpdrachtRepositoryWithTx
	sollicitatieRepo portsrepo.SollicitatieRepository
	werkuurRepo      portsrepo.WerkuurRepository
	profileRepo      portsrepo.ProfileRepository
	userRepo         portsrepo.UserRepository
	outboxRepo       portsrepo.OutboxRepository
	cache            portssvc.QueryCache
	minUurtarief     decimal.Decimal
}

// OpdrachtServiceOption configures optional dependencies.
type OpdrachtServiceOption func(*opdrachtService)

// WithQueryCache wires the read cache whose entries the service invalidates
// on mutation.
func WithQueryCache(cache portssvc.QueryCache) OpdrachtServiceOption {
	return func(s *opdrachtService) { s.cache = cache }
}

// WithMinUurtarief sets the platform minimum hourly rate.
func WithMinUurtarief(min decimal.Decimal) OpdrachtServiceOption {
	return func(s *opdrachtService) { s.minUurtarief = min }
}

// NewOpdrachtService creates the posting lifecycle service.
func NewOpdrachtService(
	opdrachtRepo portsrepo.OpdrachtRepositoryWithTx,
	sollicitatieRepo portsrepo.SollicitatieRepository,
	werkuurRepo portsrepo.WerkuurRepository,
	profileRepo portsrepo.ProfileRepository,
	userRepo portsrepo.UserRepository,
	outboxRepo portsrepo.OutboxRepository,
	opts ...OpdrachtServiceOption,
) portssvc.OpdrachtSvcFacade {
	s := &opdrachtService{
		opdrachtRepo:     opdrachtRepo,
		sollicitatieRepo: sollicitatieRepo,
		werkuurRepo:      werkuurRepo,
		profileRepo:      profileRepo,
		userRepo:         userRepo,
		outboxRepo:       outboxRepo,
		minUurtarief:     decimal.NewFromInt(18),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.OpdrachtSvcFacade = (*opdrachtService)(nil)

// applicant carries the resolved profile of a ZZP or bedrijf actor.
type applicant struct {
	Type        domain.SollicitantType
	ProfileID   string
	UserID      string
	License     domain.LicenseInfo
	TeamGrootte int
}

func (s *opdrachtService) resolveApplicant(ctx context.Context, userID string) (*applicant, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch user.Role {
	case domain.RoleZZPBeveiliger:
		profile, err := s.profileRepo.FindZZPByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &applicant{
			Type:      domain.SollicitantZZP,
			ProfileID: profile.ProfileID,
			UserID:    userID,
			License:   profile.LicenseInfo,
		}, nil
	case domain.RoleBedrijf:
		profile, err := s.profileRepo.FindBedrijfByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &applicant{
			Type:        domain.SollicitantBedrijf,
			ProfileID:   profile.ProfileID,
			UserID:      userID,
			License:     profile.LicenseInfo,
			TeamGrootte: profile.TeamGrootte,
		}, nil
	}
	return nil, apperrors.NewAppError(http.StatusForbidden, "Alleen beveiligers en beveiligingsbedrijven kunnen solliciteren", apperrors.ErrForbidden)
}

// resolveOwner maps a creator account to its owning profile reference.
func (s *opdrachtService) resolveOwner(ctx context.Context, userID string) (domain.Owner, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.Owner{}, err
	}
	switch user.Role {
	case domain.RoleOpdrachtgever:
		profile, err := s.profileRepo.FindOpdrachtgeverByUserID(ctx, userID)
		if err != nil {
			return domain.Owner{}, err
		}
		return domain.Owner{Type: domain.OwnerOpdrachtgever, ID: profile.ProfileID}, nil
	case domain.RoleBedrijf:
		profile, err := s.profileRepo.FindBedrijfByUserID(ctx, userID)
		if err != nil {
			return domain.Owner{}, err
		}
		return domain.Owner{Type: domain.OwnerBedrijf, ID: profile.ProfileID}, nil
	}
	return domain.Owner{}, apperrors.NewAppError(http.StatusForbidden, "Alleen opdrachtgevers en beveiligingsbedrijven kunnen opdrachten beheren", apperrors.ErrForbidden)
}

func complianceBlockMessage(status domain.NDNummerStatus, cs domain.ComplianceStatus) string {
	switch {
	case status == "" || status == domain.NDNietGeregistreerd:
		return "Een geldig ND-nummer is vereist om te kunnen solliciteren. Registreer je ND-nummer."
	case status == domain.NDGeschorst:
		return "Je ND-nummer is geschorst. Neem contact op met Justis."
	case status == domain.NDIngetrokken:
		return "Je ND-nummer is ingetrokken. Neem contact op met Justis."
	case cs.IsExpired || status == domain.NDVerlopen:
		return "Je ND-nummer is verlopen. Verleng je registratie om te kunnen solliciteren."
	default:
		return "Je ND-nummer voldoet niet aan de vereisten om te kunnen solliciteren."
	}
}

func (s *opdrachtService) GetOpdracht(ctx context.Context, opdrachtID string) (*domain.Opdracht, error) {
	return s.opdrachtRepo.FindOpdrachtByID(ctx, opdrachtID)
}

func (s *opdrachtService) ListAvailable(ctx context.Context, actorUserID string, params dto.ListOpdrachtenParams) (*dto.ListOpdrachtenResponse, error) {
	actor, err := s.resolveApplicant(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	cs := compliance.EvaluateLicense(actor.License, time.Now())
	if !cs.IsCompliant {
		return &dto.ListOpdrachtenResponse{
			Opdrachten: []dto.OpdrachtResponse{},
			ComplianceWarning: &domain.ComplianceWarning{
				Message:   complianceBlockMessage(actor.License.NDNummerStatus, cs),
				Status:    actor.License.NDNummerStatus,
				RiskLevel: cs.RiskLevel,
				ActionURL: "/dashboard/compliance",
			},
		}, nil
	}

	filter := portsrepo.OpdrachtFilter{
		Statuses: []domain.OpdrachtStatus{domain.OpdrachtOpen, domain.OpdrachtUrgent},
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if params.Status != "" {
		filter.Statuses = []domain.OpdrachtStatus{domain.OpdrachtStatus(params.Status)}
	}
	switch actor.Type {
	case domain.SollicitantZZP:
		filter.Audiences = []domain.TargetAudience{domain.AudienceBeiden, domain.AudienceAlleenZZP}
		filter.IncludeDirectZZP = true
	case domain.SollicitantBedrijf:
		filter.Audiences = []domain.TargetAudience{domain.AudienceBeiden, domain.AudienceAlleenBedrijven}
	}

	opdrachten, err := s.opdrachtRepo.ListOpdrachten(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListOpdrachtenResponse{Opdrachten: make([]dto.OpdrachtResponse, 0, len(opdrachten))}
	for i := range opdrachten {
		resp.Opdrachten = append(resp.Opdrachten, dto.ToOpdrachtResponse(&opdrachten[i]))
	}
	return resp, nil
}

func (s *opdrachtService) ListMine(ctx context.Context, actorUserID string, limit, offset int) ([]domain.Opdracht, error) {
	owner, err := s.resolveOwner(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return s.opdrachtRepo.ListOpdrachten(ctx, portsrepo.OpdrachtFilter{
		Creator: &owner,
		Limit:   limit,
		Offset:  offset,
	})
}

func (s *opdrachtService) ListSollicitaties(ctx context.Context, actorUserID string, opdrachtID string) ([]domain.Sollicitatie, error) {
	opdracht, err := s.opdrachtRepo.FindOpdrachtByID(ctx, opdrachtID)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveOwner(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if owner != opdracht.Creator {
		return nil, apperrors.NewAppError(http.StatusForbidden, "Alleen de eigenaar kan sollicitaties inzien", apperrors.ErrForbidden)
	}
	return s.sollicitatieRepo.ListByOpdracht(ctx, opdrachtID)
}

func (s *opdrachtService) Create(ctx context.Context, actorUserID string, req dto.CreateOpdrachtRequest) (*domain.Opdracht, error) {
	owner, err := s.resolveOwner(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	if !req.EindDatum.After(req.StartDatum) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Einddatum moet na de startdatum liggen", apperrors.ErrValidation)
	}
	if req.Uurtarief.LessThan(s.minUurtarief) {
		return nil, apperrors.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("Uurtarief moet minimaal €%s zijn", s.minUurtarief.StringFixed(2)), apperrors.ErrValidation)
	}
	if req.TargetAudience == domain.AudienceEigenTeam && owner.Type != domain.OwnerBedrijf {
		return nil, apperrors.NewAppError(http.StatusForbidden, "Alleen beveiligingsbedrijven kunnen opdrachten voor het eigen team aanmaken", apperrors.ErrForbidden)
	}
	if req.MinTeamSize != nil && !req.TargetAudience.AllowsBedrijf() && req.TargetAudience != domain.AudienceEigenTeam {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Minimale teamgrootte is alleen van toepassing op opdrachten voor bedrijven", apperrors.ErrValidation)
	}

	now := time.Now()
	status := domain.OpdrachtOpen
	if req.Urgent {
		status = domain.OpdrachtUrgent
	}

	opdracht := domain.Opdracht{
		OpdrachtID:        uuid.NewString(),
		Titel:             req.Titel,
		Beschrijving:      req.Beschrijving,
		Locatie:           req.Locatie,
		StartDatum:        req.StartDatum,
		EindDatum:         req.EindDatum,
		Uurtarief:         req.Uurtarief,
		AantalBeveiligers: req.AantalBeveiligers,
		Status:            status,
		TargetAudience:    req.TargetAudience,
		DirectZZPAllowed:  req.DirectZZPAllowed,
		AutoAccept:        req.AutoAccept,
		MinTeamSize:       req.MinTeamSize,
		Creator:           owner,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	// An EIGEN_TEAM opdracht never enters the marketplace: it is assigned to
	// the creating bedrijf on the spot, staffed from its active roster.
	if req.TargetAudience == domain.AudienceEigenTeam {
		if err := s.staffFromOwnTeam(ctx, &opdracht, owner.ID, req.TeamMemberIDs); err != nil {
			return nil, err
		}
	}

	if err := s.opdrachtRepo.SaveOpdracht(ctx, opdracht); err != nil {
		return nil, err
	}
	s.invalidateListings()

	s.LogInfo(ctx, "opdracht created",
		"opdrachtID", opdracht.OpdrachtID,
		"status", string(opdracht.Status),
		"targetAudience", string(opdracht.TargetAudience))
	return &opdracht, nil
}

func (s *opdrachtService) staffFromOwnTeam(ctx context.Context, opdracht *domain.Opdracht, bedrijfID string, memberIDs []string) error {
	roster, err := s.profileRepo.ListActiveTeamMembers(ctx, bedrijfID)
	if err != nil {
		return err
	}
	active := make(map[string]bool, len(roster))
	for _, m := range roster {
		active[m.MemberID] = true
	}
	assigned := 0
	for _, id := range memberIDs {
		if active[id] {
			assigned++
		}
	}
	if assigned < opdracht.AantalBeveiligers {
		return apperrors.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("Onvoldoende actieve teamleden: %d van %d vereist", assigned, opdracht.AantalBeveiligers), apperrors.ErrValidation)
	}

	opdracht.Status = domain.OpdrachtToegewezen
	opdracht.AcceptedCount = opdracht.AantalBeveiligers
	opdracht.AcceptedBedrijfID = &bedrijfID
	return nil
}

func (s *opdrachtService) Apply(ctx context.Context, actorUserID string, opdrachtID string, req dto.ApplyRequest) (*dto.ApplyResponse, error) {
	opdracht, err := s.opdrachtRepo.FindOpdrachtByID(ctx, opdrachtID)
	if err != nil {
		return nil, err
	}

	actor, err := s.resolveApplicant(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	// Compliance is checked before the posting gates so a blocked applicant
	// always gets the remediation error, whatever else is wrong.
	now := time.Now()
	cs := compliance.EvaluateLicense(actor.License, now)
	if !cs.IsCompliant {
		return nil, apperrors.NewComplianceError(complianceBlockMessage(actor.License.NDNummerStatus, cs))
	}

	if !opdracht.Status.IsOpenForApplications() {
		return nil, apperrors.NewAppError(http.StatusConflict, "Deze opdracht accepteert geen sollicitaties meer", apperrors.ErrConflict)
	}

	switch actor.Type {
	case domain.SollicitantZZP:
		if !opdracht.TargetAudience.AllowsZZP(opdracht.DirectZZPAllowed) {
			return nil, apperrors.NewAppError(http.StatusForbidden, "Deze opdracht staat niet open voor ZZP-beveiligers", apperrors.ErrForbidden)
		}
	case domain.SollicitantBedrijf:
		if !opdracht.TargetAudience.AllowsBedrijf() {
			return nil, apperrors.NewAppError(http.StatusForbidden, "Deze opdracht staat niet open voor beveiligingsbedrijven", apperrors.ErrForbidden)
		}
	}

	if actor.Type == domain.SollicitantBedrijf && opdracht.MinTeamSize != nil {
		teamGrootte := actor.TeamGrootte
		if req.TeamGrootte != nil {
			teamGrootte = *req.TeamGrootte
		}
		if teamGrootte < *opdracht.MinTeamSize {
			return nil, apperrors.NewAppError(http.StatusBadRequest,
				fmt.Sprintf("Deze opdracht vereist een team van minimaal %d beveiligers", *opdracht.MinTeamSize), apperrors.ErrValidation)
		}
	}

	if _, err := s.sollicitatieRepo.FindByOpdrachtAndSollicitant(ctx, opdrachtID, actor.ProfileID); err == nil {
		return nil, apperrors.NewAppError(http.StatusConflict, "Je hebt al gesolliciteerd op deze opdracht", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if opdracht.RemainingSlots() == 0 {
		return nil, apperrors.NewAppError(http.StatusConflict, "Deze opdracht is al volledig bezet", apperrors.ErrConflict)
	}

	sollicitatie := domain.Sollicitatie{
		SollicitatieID:  uuid.NewString(),
		OpdrachtID:      opdrachtID,
		SollicitantType: actor.Type,
		SollicitantID:   actor.ProfileID,
		Status:          domain.SollicitatiePending,
		Compliance: domain.ComplianceSnapshot{
			NDNummerStatus: actor.License.NDNummerStatus,
			RiskLevel:      cs.RiskLevel,
			IsCompliant:    cs.IsCompliant,
		},
		VoorgesteldTarief: req.VoorgesteldTarief,
		TeamGrootte:       req.TeamGrootte,
		Motivatie:         req.Motivatie,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	// Auto-accept decides the sollicitatie outcome for any applicant; the
	// slot claim and Werkuur materialization stay urgent-and-ZZP only.
	autoAccept := opdracht.AutoAccept
	claimSlot := autoAccept && opdracht.Status == domain.OpdrachtUrgent && actor.Type == domain.SollicitantZZP

	tx, err := s.opdrachtRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.opdrachtRepo.Rollback(ctx, tx) }()

	if err := s.sollicitatieRepo.SaveSollicitatieInTx(ctx, tx, sollicitatie); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(http.StatusConflict, "Je hebt al gesolliciteerd op deze opdracht", apperrors.ErrConflict)
		}
		return nil, err
	}

	resultStatus := opdracht.Status
	if autoAccept {
		sollicitatie.Status = domain.SollicitatieAccepted
		if err := s.sollicitatieRepo.UpdateStatusInTx(ctx, tx, sollicitatie.SollicitatieID, domain.SollicitatieAccepted, actorUserID, now); err != nil {
			return nil, err
		}
	}
	if claimSlot {
		claimed, err := s.opdrachtRepo.ClaimSlot(ctx, tx, opdrachtID, actorUserID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				return nil, apperrors.NewAppError(http.StatusConflict, "Deze opdracht is al volledig bezet", apperrors.ErrConflict)
			}
			return nil, err
		}
		if err := s.werkuurRepo.SaveWerkuurInTx(ctx, tx, domain.Werkuur{
			WerkuurID:      uuid.NewString(),
			OpdrachtID:     opdrachtID,
			SollicitatieID: sollicitatie.SollicitatieID,
			ZZPProfileID:   actor.ProfileID,
			StartTijd:      claimed.StartDatum,
			EindTijd:       claimed.EindDatum,
			Uurtarief:      claimed.Uurtarief,
			Status:         domain.WerkuurScheduled,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorUserID,
			},
		}); err != nil {
			return nil, err
		}

		resultStatus = claimed.Status
		if claimed.RemainingSlots() == 0 {
			if err := s.opdrachtRepo.UpdateStatusInTx(ctx, tx, opdrachtID, claimed.Status, domain.OpdrachtToegewezen, actorUserID, now); err != nil {
				return nil, err
			}
			resultStatus = domain.OpdrachtToegewezen
			if err := s.appendEventInTx(ctx, tx, domain.EventOpdrachtToegewezen, actorUserID, opdrachtID, domain.OpdrachtStatusEventPayload{
				OpdrachtID:    opdrachtID,
				OpdrachtTitel: opdracht.Titel,
				From:          claimed.Status,
				To:            domain.OpdrachtToegewezen,
				TargetUserIDs: []string{opdracht.CreatedBy},
			}, now); err != nil {
				return nil, err
			}
		}
	}

	if autoAccept {
		if err := s.appendEventInTx(ctx, tx, domain.EventSollicitatieAccepted, actorUserID, sollicitatie.SollicitatieID, domain.SollicitatieEventPayload{
			SollicitatieID:  sollicitatie.SollicitatieID,
			OpdrachtID:      opdrachtID,
			OpdrachtTitel:   opdracht.Titel,
			SollicitantType: actor.Type,
			TargetUserIDs:   []string{actorUserID},
		}, now); err != nil {
			return nil, err
		}
	}

	if err := s.appendEventInTx(ctx, tx, domain.EventSollicitatieCreated, actorUserID, sollicitatie.SollicitatieID, domain.SollicitatieEventPayload{
		SollicitatieID:  sollicitatie.SollicitatieID,
		OpdrachtID:      opdrachtID,
		OpdrachtTitel:   opdracht.Titel,
		SollicitantType: actor.Type,
		TargetUserIDs:   []string{opdracht.CreatedBy},
	}, now); err != nil {
		return nil, err
	}

	if err := s.opdrachtRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s.invalidateListings()

	s.LogInfo(ctx, "sollicitatie created",
		"sollicitatieID", sollicitatie.SollicitatieID,
		"opdrachtID", opdrachtID,
		"autoAccepted", autoAccept)

	return &dto.ApplyResponse{
		Sollicitatie:   dto.ToSollicitatieResponse(&sollicitatie),
		AutoAccepted:   autoAccept,
		OpdrachtStatus: resultStatus,
	}, nil
}

func (s *opdrachtService) Decide(ctx context.Context, reviewerUserID string, sollicitatieID string, action dto.DecideAction) (*domain.Sollicitatie, error) {
	sollicitatie, err := s.sollicitatieRepo.FindSollicitatieByID(ctx, sollicitatieID)
	if err != nil {
		return nil, err
	}
	if sollicitatie.Status != domain.SollicitatiePending {
		return nil, apperrors.NewAppError(http.StatusConflict, "Deze sollicitatie is al beoordeeld", apperrors.ErrConflict)
	}

	opdracht, err := s.opdrachtRepo.FindOpdrachtByID(ctx, sollicitatie.OpdrachtID)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveOwner(ctx, reviewerUserID)
	if err != nil {
		return nil, err
	}
	if owner != opdracht.Creator {
		return nil, apperrors.NewAppError(http.StatusForbidden, "Alleen de eigenaar kan sollicitaties beoordelen", apperrors.ErrForbidden)
	}

	now := time.Now()
	tx, err := s.opdrachtRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.opdrachtRepo.Rollback(ctx, tx) }()

	applicantUserID, err := s.applicantUserID(ctx, sollicitatie)
	if err != nil {
		return nil, err
	}

	if action == dto.DecideReject {
		if err := s.sollicitatieRepo.UpdateStatusInTx(ctx, tx, sollicitatieID, domain.SollicitatieRejected, reviewerUserID, now); err != nil {
			return nil, err
		}
		sollicitatie.Status = domain.SollicitatieRejected
		if err := s.appendEventInTx(ctx, tx, domain.EventSollicitatieRejected, reviewerUserID, sollicitatieID, domain.SollicitatieEventPayload{
			SollicitatieID:  sollicitatieID,
			OpdrachtID:      opdracht.OpdrachtID,
			OpdrachtTitel:   opdracht.Titel,
			SollicitantType: sollicitatie.SollicitantType,
			TargetUserIDs:   []string{applicantUserID},
		}, now); err != nil {
			return nil, err
		}
		if err := s.opdrachtRepo.Commit(ctx, tx); err != nil {
			return nil, err
		}
		s.invalidateListings()
		return sollicitatie, nil
	}

	switch sollicitatie.SollicitantType {
	case domain.SollicitantBedrijf:
		// A bedrijf takes over the whole opdracht; the posting leaves the
		// marketplace in one step.
		if err := s.opdrachtRepo.AssignBedrijfInTx(ctx, tx, opdracht.OpdrachtID, sollicitatie.SollicitantID, reviewerUserID, now); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				return nil, apperrors.NewAppError(http.StatusConflict, "Deze opdracht is al toegewezen", apperrors.ErrConflict)
			}
			return nil, err
		}
		if err := s.appendEventInTx(ctx, tx, domain.EventOpdrachtToegewezen, reviewerUserID, opdracht.OpdrachtID, domain.OpdrachtStatusEventPayload{
			OpdrachtID:    opdracht.OpdrachtID,
			OpdrachtTitel: opdracht.Titel,
			From:          opdracht.Status,
			To:            domain.OpdrachtToegewezen,
			TargetUserIDs: []string{applicantUserID, opdracht.CreatedBy},
		}, now); err != nil {
			return nil, err
		}
	case domain.SollicitantZZP:
		claimed, err := s.opdrachtRepo.ClaimSlot(ctx, tx, opdracht.OpdrachtID, reviewerUserID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				return nil, apperrors.NewAppError(http.StatusConflict, "Deze opdracht is al volledig bezet", apperrors.ErrConflict)
			}
			return nil, err
		}
		if err := s.werkuurRepo.SaveWerkuurInTx(ctx, tx, domain.Werkuur{
			WerkuurID:      uuid.NewString(),
			OpdrachtID:     opdracht.OpdrachtID,
			SollicitatieID: sollicitatieID,
			ZZPProfileID:   sollicitatie.SollicitantID,
			StartTijd:      claimed.StartDatum,
			EindTijd:       claimed.EindDatum,
			Uurtarief:      claimed.Uurtarief,
			Status:         domain.WerkuurScheduled,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     reviewerUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: reviewerUserID,
			},
		}); err != nil {
			return nil, err
		}
		if claimed.RemainingSlots() == 0 {
			if err := s.opdrachtRepo.UpdateStatusInTx(ctx, tx, opdracht.OpdrachtID, claimed.Status, domain.OpdrachtToegewezen, reviewerUserID, now); err != nil {
				return nil, err
			}
			if err := s.appendEventInTx(ctx, tx, domain.EventOpdrachtToegewezen, reviewerUserID, opdracht.OpdrachtID, domain.OpdrachtStatusEventPayload{
				OpdrachtID:    opdracht.OpdrachtID,
				OpdrachtTitel: opdracht.Titel,
				From:          claimed.Status,
				To:            domain.OpdrachtToegewezen,
				TargetUserIDs: []string{opdracht.CreatedBy},
			}, now); err != nil {
				return nil, err
			}
		}
	}

	if err := s.sollicitatieRepo.UpdateStatusInTx(ctx, tx, sollicitatieID, domain.SollicitatieAccepted, reviewerUserID, now); err != nil {
		return nil, err
	}
	sollicitatie.Status = domain.SollicitatieAccepted

	if err := s.appendEventInTx(ctx, tx, domain.EventSollicitatieAccepted, reviewerUserID, sollicitatieID, domain.SollicitatieEventPayload{
		SollicitatieID:  sollicitatieID,
		OpdrachtID:      opdracht.OpdrachtID,
		OpdrachtTitel:   opdracht.Titel,
		SollicitantType: sollicitatie.SollicitantType,
		TargetUserIDs:   []string{applicantUserID},
	}, now); err != nil {
		return nil, err
	}

	if err := s.opdrachtRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s.invalidateListings()

	s.LogInfo(ctx, "sollicitatie decided",
		"sollicitatieID", sollicitatieID,
		"action", string(action))
	return sollicitatie, nil
}

func (s *opdrachtService) UpdateStatus(ctx context.Context, actorUserID string, opdrachtID string, next domain.OpdrachtStatus) (*domain.Opdracht, error) {
	opdracht, err := s.opdrachtRepo.FindOpdrachtByID(ctx, opdrachtID)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveOwner(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if owner != opdracht.Creator {
		return nil, apperrors.NewAppError(http.StatusForbidden, "Alleen de eigenaar kan de status wijzigen", apperrors.ErrForbidden)
	}
	if !opdracht.Status.CanTransitionTo(next) {
		return nil, apperrors.NewAppError(http.StatusConflict,
			fmt.Sprintf("Statusovergang van %s naar %s is niet toegestaan", opdracht.Status, next), apperrors.ErrConflict)
	}

	now := time.Now()
	if err := s.opdrachtRepo.UpdateOpdrachtStatus(ctx, opdrachtID, opdracht.Status, next, actorUserID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewAppError(http.StatusConflict, "De opdracht is intussen gewijzigd, probeer opnieuw", apperrors.ErrConflict)
		}
		return nil, err
	}

	payload, err := json.Marshal(domain.OpdrachtStatusEventPayload{
		OpdrachtID:    opdrachtID,
		OpdrachtTitel: opdracht.Titel,
		From:          opdracht.Status,
		To:            next,
		TargetUserIDs: s.assignedUserIDs(ctx, opdracht),
	})
	if err == nil {
		err = s.outboxRepo.AppendEvent(ctx, domain.OutboxEvent{
			EventID:     uuid.NewString(),
			Type:        domain.EventOpdrachtStatusChange,
			ActorUserID: actorUserID,
			SubjectID:   opdrachtID,
			Payload:     payload,
			Status:      domain.OutboxPending,
			CreatedAt:   now,
		})
	}
	if err != nil {
		s.LogError(ctx, err, "failed to record status change event", "opdrachtID", opdrachtID)
	}

	opdracht.Status = next
	opdracht.LastUpdatedAt = now
	opdracht.LastUpdatedBy = actorUserID
	s.invalidateListings()
	return opdracht, nil
}

// assignedUserIDs collects the accounts behind accepted sollicitaties, so
// status changes reach the people working the opdracht.
func (s *opdrachtService) assignedUserIDs(ctx context.Context, opdracht *domain.Opdracht) []string {
	sollicitaties, err := s.sollicitatieRepo.ListByOpdracht(ctx, opdracht.OpdrachtID)
	if err != nil {
		s.LogError(ctx, err, "failed to resolve assigned users", "opdrachtID", opdracht.OpdrachtID)
		return nil
	}
	var ids []string
	for i := range sollicitaties {
		if sollicitaties[i].Status != domain.SollicitatieAccepted {
			continue
		}
		userID, err := s.applicantUserID(ctx, &sollicitaties[i])
		if err != nil {
			continue
		}
		ids = append(ids, userID)
	}
	return ids
}

func (s *opdrachtService) applicantUserID(ctx context.Context, sollicitatie *domain.Sollicitatie) (string, error) {
	switch sollicitatie.SollicitantType {
	case domain.SollicitantBedrijf:
		profile, err := s.profileRepo.FindBedrijfByID(ctx, sollicitatie.SollicitantID)
		if err != nil {
			return "", err
		}
		return profile.UserID, nil
	default:
		// ZZP sollicitaties are created by the account itself.
		return sollicitatie.CreatedBy, nil
	}
}

func (s *opdrachtService) appendEventInTx(ctx context.Context, tx pgx.Tx, eventType domain.EventType, actorUserID, subjectID string, payload any, now time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return s.outboxRepo.AppendEventInTx(ctx, tx, domain.OutboxEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		ActorUserID: actorUserID,
		SubjectID:   subjectID,
		Payload:     data,
		Status:      domain.OutboxPending,
		CreatedAt:   now,
	})
}

func (s *opdrachtService) invalidateListings() {
	if s.cache == nil {
		return
	}
	s.cache.InvalidatePrefix("opdrachten:")
	s.cache.InvalidatePrefix("dashboard:")
}
