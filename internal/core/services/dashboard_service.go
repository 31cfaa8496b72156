package services

import (
	"context"
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/utils/compliance"
)

// aggregationWindow caps how many rows feed one dashboard aggregate.
const aggregationWindow = 200

type dashboardService struct {
	BaseService
	profileRepo      portsrepo.ProfileRepository
	opdrachtRepo     portsrepo.OpdrachtRepositoryWithTx
	sollicitatieRepo portsrepo.SollicitatieRepository
	notificationRepo portsrepo.NotificationRepository
	cache            portssvc.QueryCache
	cacheTTL         time.Duration
}

// NewDashboardService creates the cached dashboard aggregation service.
func NewDashboardService(
	profileRepo portsrepo.ProfileRepository,
	opdrachtRepo portsrepo.OpdrachtRepositoryWithTx,
	sollicitatieRepo portsrepo.SollicitatieRepository,
	notificationRepo portsrepo.NotificationRepository,
	cache portssvc.QueryCache,
	cacheTTL time.Duration,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		profileRepo:      profileRepo,
		opdrachtRepo:     opdrachtRepo,
		sollicitatieRepo: sollicitatieRepo,
		notificationRepo: notificationRepo,
		cache:            cache,
		cacheTTL:         cacheTTL,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) BedrijfStats(ctx context.Context, actorUserID string) (*dto.BedrijfDashboardStats, error) {
	cacheKey := "dashboard:bedrijf:" + actorUserID
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			if stats, ok := cached.(*dto.BedrijfDashboardStats); ok {
				return stats, nil
			}
		}
	}

	profile, err := s.profileRepo.FindBedrijfByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	sollicitaties, err := s.sollicitatieRepo.ListBySollicitant(ctx, profile.ProfileID, aggregationWindow, 0)
	if err != nil {
		return nil, err
	}
	openSollicitaties := 0
	for i := range sollicitaties {
		if sollicitaties[i].Status == domain.SollicitatiePending {
			openSollicitaties++
		}
	}

	owner := domain.Owner{Type: domain.OwnerBedrijf, ID: profile.ProfileID}
	opdrachten, err := s.opdrachtRepo.ListOpdrachten(ctx, portsrepo.OpdrachtFilter{
		Creator: &owner,
		Limit:   aggregationWindow,
	})
	if err != nil {
		return nil, err
	}
	actief, afgerond := 0, 0
	for i := range opdrachten {
		switch opdrachten[i].Status {
		case domain.OpdrachtToegewezen, domain.OpdrachtInProgress:
			actief++
		case domain.OpdrachtCompleted:
			afgerond++
		}
	}

	unread, err := s.notificationRepo.CountUnread(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	stats := &dto.BedrijfDashboardStats{
		OpenSollicitaties:     openSollicitaties,
		ActieveOpdrachten:     actief,
		AfgerondeOpdrachten:   afgerond,
		TeamGrootte:           profile.TeamGrootte,
		Compliance:            compliance.EvaluateLicense(profile.LicenseInfo, time.Now()),
		OngelezenNotificaties: unread,
	}
	if s.cache != nil {
		s.cache.SetWithTTL(cacheKey, stats, s.cacheTTL)
	}
	return stats, nil
}
