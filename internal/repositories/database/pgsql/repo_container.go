package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	profileRepo := newPgxProfileRepository(dbPool)
	opdrachtRepo := newPgxOpdrachtRepository(dbPool)
	sollicitatieRepo := newPgxSollicitatieRepository(dbPool)
	werkuurRepo := newPgxWerkuurRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	outboxRepo := newPgxOutboxRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		ProfileRepo:      profileRepo,
		OpdrachtRepo:     opdrachtRepo,
		SollicitatieRepo: sollicitatieRepo,
		WerkuurRepo:      werkuurRepo,
		NotificationRepo: notificationRepo,
		AuditRepo:        auditRepo,
		PaymentRepo:      paymentRepo,
		OutboxRepo:       outboxRepo,
		SweepLocker:      &BaseRepository{Pool: dbPool},
	}
}
