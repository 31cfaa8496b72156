package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock OpdrachtRepository ---

type MockOpdrachtRepository struct {
	mock.Mock
}

func (m *MockOpdrachtRepository) FindOpdrachtByID(ctx context.Context, opdrachtID string) (*domain.Opdracht, error) {
	args := m.Called(ctx, opdrachtID)
	var o *domain.Opdracht
	if args.Get(0) != nil {
		o = args.Get(0).(*domain.Opdracht)
	}
	return o, args.Error(1)
}

func (m *MockOpdrachtRepository) ListOpdrachten(ctx context.Context, filter portsrepo.OpdrachtFilter) ([]domain.Opdracht, error) {
	args := m.Called(ctx, filter)
	var list []domain.Opdracht
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Opdracht)
	}
	return list, args.Error(1)
}

func (m *MockOpdrachtRepository) SaveOpdracht(ctx context.Context, opdracht domain.Opdracht) error {
	args := m.Called(ctx, opdracht)
	return args.Error(0)
}

func (m *MockOpdrachtRepository) UpdateOpdrachtStatus(ctx context.Context, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, opdrachtID, from, to, updatedBy, now)
	return args.Error(0)
}

func (m *MockOpdrachtRepository) ClaimSlot(ctx context.Context, tx pgx.Tx, opdrachtID string, updatedBy string, now time.Time) (*domain.Opdracht, error) {
	args := m.Called(ctx, tx, opdrachtID, updatedBy, now)
	var o *domain.Opdracht
	if args.Get(0) != nil {
		o = args.Get(0).(*domain.Opdracht)
	}
	return o, args.Error(1)
}

func (m *MockOpdrachtRepository) AssignBedrijfInTx(ctx context.Context, tx pgx.Tx, opdrachtID string, bedrijfID string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, opdrachtID, bedrijfID, updatedBy, now)
	return args.Error(0)
}

func (m *MockOpdrachtRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, opdrachtID, from, to, updatedBy, now)
	return args.Error(0)
}

func (m *MockOpdrachtRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockOpdrachtRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockOpdrachtRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock SollicitatieRepository ---

type MockSollicitatieRepository struct {
	mock.Mock
}

func (m *MockSollicitatieRepository) FindSollicitatieByID(ctx context.Context, sollicitatieID string) (*domain.Sollicitatie, error) {
	args := m.Called(ctx, sollicitatieID)
	var s *domain.Sollicitatie
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Sollicitatie)
	}
	return s, args.Error(1)
}

func (m *MockSollicitatieRepository) FindByOpdrachtAndSollicitant(ctx context.Context, opdrachtID string, sollicitantID string) (*domain.Sollicitatie, error) {
	args := m.Called(ctx, opdrachtID, sollicitantID)
	var s *domain.Sollicitatie
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Sollicitatie)
	}
	return s, args.Error(1)
}

func (m *MockSollicitatieRepository) ListByOpdracht(ctx context.Context, opdrachtID string) ([]domain.Sollicitatie, error) {
	args := m.Called(ctx, opdrachtID)
	var list []domain.Sollicitatie
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Sollicitatie)
	}
	return list, args.Error(1)
}

func (m *MockSollicitatieRepository) ListBySollicitant(ctx context.Context, sollicitantID string, limit int, offset int) ([]domain.Sollicitatie, error) {
	args := m.Called(ctx, sollicitantID, limit, offset)
	var list []domain.Sollicitatie
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Sollicitatie)
	}
	return list, args.Error(1)
}

func (m *MockSollicitatieRepository) SaveSollicitatieInTx(ctx context.Context, tx pgx.Tx, sollicitatie domain.Sollicitatie) error {
	args := m.Called(ctx, tx, sollicitatie)
	return args.Error(0)
}

func (m *MockSollicitatieRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, sollicitatieID string, status domain.SollicitatieStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, sollicitatieID, status, updatedBy, now)
	return args.Error(0)
}

// --- Mock WerkuurRepository ---

type MockWerkuurRepository struct {
	mock.Mock
}

func (m *MockWerkuurRepository) SaveWerkuurInTx(ctx context.Context, tx pgx.Tx, werkuur domain.Werkuur) error {
	args := m.Called(ctx, tx, werkuur)
	return args.Error(0)
}

func (m *MockWerkuurRepository) ListByZZP(ctx context.Context, zzpProfileID string, limit int, offset int) ([]domain.Werkuur, error) {
	args := m.Called(ctx, zzpProfileID, limit, offset)
	var list []domain.Werkuur
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Werkuur)
	}
	return list, args.Error(1)
}

func (m *MockWerkuurRepository) ListByOpdracht(ctx context.Context, opdrachtID string) ([]domain.Werkuur, error) {
	args := m.Called(ctx, opdrachtID)
	var list []domain.Werkuur
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Werkuur)
	}
	return list, args.Error(1)
}

// --- Mock ProfileRepository ---

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindZZPByUserID(ctx context.Context, userID string) (*domain.ZZPProfile, error) {
	args := m.Called(ctx, userID)
	var p *domain.ZZPProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.ZZPProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) FindBedrijfByUserID(ctx context.Context, userID string) (*domain.BedrijfProfile, error) {
	args := m.Called(ctx, userID)
	var p *domain.BedrijfProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.BedrijfProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) FindOpdrachtgeverByUserID(ctx context.Context, userID string) (*domain.OpdrachtgeverProfile, error) {
	args := m.Called(ctx, userID)
	var p *domain.OpdrachtgeverProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.OpdrachtgeverProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) FindBedrijfByID(ctx context.Context, profileID string) (*domain.BedrijfProfile, error) {
	args := m.Called(ctx, profileID)
	var p *domain.BedrijfProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.BedrijfProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) ListActiveTeamMembers(ctx context.Context, bedrijfID string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, bedrijfID)
	var list []domain.TeamMember
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.TeamMember)
	}
	return list, args.Error(1)
}

func (m *MockProfileRepository) SaveZZPProfile(ctx context.Context, profile domain.ZZPProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) SaveBedrijfProfile(ctx context.Context, profile domain.BedrijfProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) SaveOpdrachtgeverProfile(ctx context.Context, profile domain.OpdrachtgeverProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateLicenseInTx(ctx context.Context, tx pgx.Tx, profileID string, profileType domain.SollicitantType, info domain.LicenseInfo, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, profileID, profileType, info, updatedBy, now)
	return args.Error(0)
}

func (m *MockProfileRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockProfileRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockProfileRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockProfileRepository) ListLicensedProfiles(ctx context.Context) ([]domain.LicensedProfile, error) {
	args := m.Called(ctx)
	var list []domain.LicensedProfile
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.LicensedProfile)
	}
	return list, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var list []domain.User
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.User)
	}
	return list, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	args := m.Called(ctx, email)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.String(1), args.Error(2)
}

// --- Mock OutboxRepository ---

type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) AppendEventInTx(ctx context.Context, tx pgx.Tx, event domain.OutboxEvent) error {
	args := m.Called(ctx, tx, event)
	return args.Error(0)
}

func (m *MockOutboxRepository) AppendEvent(ctx context.Context, event domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	var list []domain.OutboxEvent
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.OutboxEvent)
	}
	return list, args.Error(1)
}

func (m *MockOutboxRepository) MarkDelivered(ctx context.Context, eventID string, now time.Time) error {
	args := m.Called(ctx, eventID, now)
	return args.Error(0)
}

func (m *MockOutboxRepository) MarkFailed(ctx context.Context, eventID string, attempts int, maxAttempts int) error {
	args := m.Called(ctx, eventID, attempts, maxAttempts)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, before *time.Time, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, before, limit)
	var list []domain.Notification
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Notification)
	}
	return list, args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) ExistsRecent(ctx context.Context, userID string, notificationType domain.NotificationType, since time.Time) (bool, error) {
	args := m.Called(ctx, userID, notificationType, since)
	return args.Bool(0), args.Error(1)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) AppendNDNummerAuditInTx(ctx context.Context, tx pgx.Tx, entry domain.NDNummerAuditLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) AppendNDNummerAudit(ctx context.Context, entry domain.NDNummerAuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByProfile(ctx context.Context, profileID string, limit int, offset int) ([]domain.NDNummerAuditLog, error) {
	args := m.Called(ctx, profileID, limit, offset)
	var list []domain.NDNummerAuditLog
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.NDNummerAuditLog)
	}
	return list, args.Error(1)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindBetalingByExternalID(ctx context.Context, externalID string) (*domain.Betaling, error) {
	args := m.Called(ctx, externalID)
	var b *domain.Betaling
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Betaling)
	}
	return b, args.Error(1)
}

func (m *MockPaymentRepository) FindFactuurByExternalID(ctx context.Context, externalID string) (*domain.Factuur, error) {
	args := m.Called(ctx, externalID)
	var f *domain.Factuur
	if args.Get(0) != nil {
		f = args.Get(0).(*domain.Factuur)
	}
	return f, args.Error(1)
}

func (m *MockPaymentRepository) ListBetalingenByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Betaling, error) {
	args := m.Called(ctx, userID, limit, offset)
	var list []domain.Betaling
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Betaling)
	}
	return list, args.Error(1)
}

func (m *MockPaymentRepository) SaveBetaling(ctx context.Context, betaling domain.Betaling) error {
	args := m.Called(ctx, betaling)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdateBetalingStatus(ctx context.Context, externalID string, status domain.BetalingStatus, failureReason string, now time.Time) error {
	args := m.Called(ctx, externalID, status, failureReason, now)
	return args.Error(0)
}

func (m *MockPaymentRepository) SaveFactuur(ctx context.Context, factuur domain.Factuur) error {
	args := m.Called(ctx, factuur)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdateFactuurStatus(ctx context.Context, externalID string, status domain.FactuurStatus, now time.Time) error {
	args := m.Called(ctx, externalID, status, now)
	return args.Error(0)
}

// --- Mock SweepLocker ---

type MockSweepLocker struct {
	mock.Mock
}

func (m *MockSweepLocker) TryLockSweep(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSweepLocker) UnlockSweep(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock Broadcaster and ChannelDispatcher ---

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Publish(ctx context.Context, channel string, payload any) error {
	args := m.Called(ctx, channel, payload)
	return args.Error(0)
}

type MockChannelDispatcher struct {
	mock.Mock
	ChannelName string
}

func (m *MockChannelDispatcher) Channel() string {
	return m.ChannelName
}

func (m *MockChannelDispatcher) Dispatch(ctx context.Context, userID string, notification domain.Notification) error {
	args := m.Called(ctx, userID, notification)
	return args.Error(0)
}
