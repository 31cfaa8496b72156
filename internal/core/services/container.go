package services

import (
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/platform/config"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	cfg *config.Config,
	cache portssvc.QueryCache,
	broadcaster portssvc.Broadcaster,
	dispatchers ...portssvc.ChannelDispatcher,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth: NewAuthService(repos.UserRepo, repos.ProfileRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		User: NewUserService(repos.UserRepo, repos.ProfileRepo, repos.WerkuurRepo),
		Opdracht: NewOpdrachtService(
			repos.OpdrachtRepo,
			repos.SollicitatieRepo,
			repos.WerkuurRepo,
			repos.ProfileRepo,
			repos.UserRepo,
			repos.OutboxRepo,
			WithQueryCache(cache),
			WithMinUurtarief(cfg.MinUurtarief),
		),
		Compliance: NewComplianceService(
			repos.ProfileRepo,
			repos.AuditRepo,
			repos.NotificationRepo,
			repos.OutboxRepo,
			repos.UserRepo,
			repos.SweepLocker,
			cache,
		),
		Notification: NewNotificationService(repos.NotificationRepo, broadcaster, dispatchers...),
		Payment:      NewPaymentService(repos.PaymentRepo, repos.OutboxRepo),
		Dashboard: NewDashboardService(
			repos.ProfileRepo,
			repos.OpdrachtRepo,
			repos.SollicitatieRepo,
			repos.NotificationRepo,
			cache,
			cfg.CacheTTL,
		),
	}
}
