package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/core/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OpdrachtServiceTestSuite struct {
	suite.Suite
	mockOpdrachtRepo     *MockOpdrachtRepository
	mockSollicitatieRepo *MockSollicitatieRepository
	mockWerkuurRepo      *MockWerkuurRepository
	mockProfileRepo      *MockProfileRepository
	mockUserRepo         *MockUserRepository
	mockOutboxRepo       *MockOutboxRepository
	service              portssvc.OpdrachtSvcFacade
}

func (suite *OpdrachtServiceTestSuite) SetupTest() {
	suite.mockOpdrachtRepo = new(MockOpdrachtRepository)
	suite.mockSollicitatieRepo = new(MockSollicitatieRepository)
	suite.mockWerkuurRepo = new(MockWerkuurRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOutboxRepo = new(MockOutboxRepository)
	suite.service = services.NewOpdrachtService(
		suite.mockOpdrachtRepo,
		suite.mockSollicitatieRepo,
		suite.mockWerkuurRepo,
		suite.mockProfileRepo,
		suite.mockUserRepo,
		suite.mockOutboxRepo,
		services.WithMinUurtarief(decimal.NewFromInt(18)),
	)
}

// --- Helpers ---

func activeLicense(daysUntilExpiry int) domain.LicenseInfo {
	nd := "ND1234567"
	expiry := time.Now().AddDate(0, 0, daysUntilExpiry)
	return domain.LicenseInfo{
		NDNummer:            &nd,
		NDNummerStatus:      domain.NDActief,
		NDNummerVervalDatum: &expiry,
	}
}

func (suite *OpdrachtServiceTestSuite) givenZZPActor(userID, profileID string, license domain.LicenseInfo) {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleZZPBeveiliger, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindZZPByUserID", mock.Anything, userID).
		Return(&domain.ZZPProfile{ProfileID: profileID, UserID: userID, LicenseInfo: license}, nil)
}

func (suite *OpdrachtServiceTestSuite) givenBedrijfActor(userID, profileID string, teamGrootte int, license domain.LicenseInfo) {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleBedrijf, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindBedrijfByUserID", mock.Anything, userID).
		Return(&domain.BedrijfProfile{ProfileID: profileID, UserID: userID, TeamGrootte: teamGrootte, LicenseInfo: license}, nil)
}

func openOpdracht(ownerID string, ownerUserID string) *domain.Opdracht {
	return &domain.Opdracht{
		OpdrachtID:        uuid.NewString(),
		Titel:             "Objectbeveiliging Amsterdam",
		Beschrijving:      "Nachtdienst",
		Locatie:           "Amsterdam",
		StartDatum:        time.Now().Add(24 * time.Hour),
		EindDatum:         time.Now().Add(32 * time.Hour),
		Uurtarief:         decimal.NewFromInt(25),
		AantalBeveiligers: 2,
		AcceptedCount:     0,
		Status:            domain.OpdrachtOpen,
		TargetAudience:    domain.AudienceBeiden,
		Creator:           domain.Owner{Type: domain.OwnerOpdrachtgever, ID: ownerID},
		AuditFields:       domain.AuditFields{CreatedBy: ownerUserID},
	}
}

// --- Apply ---

func (suite *OpdrachtServiceTestSuite) TestApply_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockSollicitatieRepo.On("FindByOpdrachtAndSollicitant", ctx, opdracht.OpdrachtID, profileID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockSollicitatieRepo.On("SaveSollicitatieInTx", ctx, mock.Anything, mock.MatchedBy(func(s domain.Sollicitatie) bool {
		return s.OpdrachtID == opdracht.OpdrachtID &&
			s.SollicitantID == profileID &&
			s.Status == domain.SollicitatiePending &&
			s.Compliance.IsCompliant
	})).Return(nil).Once()
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.MatchedBy(func(e domain.OutboxEvent) bool {
		return e.Type == domain.EventSollicitatieCreated
	})).Return(nil).Once()
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{Motivatie: "Beschikbaar"})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.False(resp.AutoAccepted)
	suite.Equal(domain.OpdrachtOpen, resp.OpdrachtStatus)
	suite.Equal(domain.SollicitatiePending, resp.Sollicitatie.Status)
	suite.mockSollicitatieRepo.AssertExpectations(suite.T())
	suite.mockOutboxRepo.AssertExpectations(suite.T())
}

func (suite *OpdrachtServiceTestSuite) TestApply_Duplicate() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockSollicitatieRepo.On("FindByOpdrachtAndSollicitant", ctx, opdracht.OpdrachtID, profileID).
		Return(&domain.Sollicitatie{SollicitatieID: uuid.NewString()}, nil).Once()

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusConflict, appErr.Code)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestApply_NotCompliant() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())

	nd := "ND7654321"
	expired := time.Now().AddDate(0, 0, -10)
	suite.givenZZPActor(userID, profileID, domain.LicenseInfo{
		NDNummer:            &nd,
		NDNummerStatus:      domain.NDVerlopen,
		NDNummerVervalDatum: &expired,
	})
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var compErr *apperrors.ComplianceError
	suite.Require().ErrorAs(err, &compErr)
	suite.Equal("/dashboard/compliance", compErr.ActionURL)
	suite.Contains(compErr.Message, "verlopen")
	suite.mockSollicitatieRepo.AssertNotCalled(suite.T(), "SaveSollicitatieInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestApply_ClosedOpdracht() {
	ctx := context.Background()
	userID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.Status = domain.OpdrachtToegewezen

	suite.givenZZPActor(userID, uuid.NewString(), activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusConflict, appErr.Code)
}

func (suite *OpdrachtServiceTestSuite) TestApply_AudienceBlocksZZP() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.TargetAudience = domain.AudienceAlleenBedrijven
	opdracht.DirectZZPAllowed = false

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusForbidden, appErr.Code)
}

func (suite *OpdrachtServiceTestSuite) TestApply_ComplianceCheckedBeforeAudience() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.TargetAudience = domain.AudienceAlleenBedrijven
	opdracht.DirectZZPAllowed = false

	nd := "ND7654321"
	expired := time.Now().AddDate(0, 0, -10)
	suite.givenZZPActor(userID, profileID, domain.LicenseInfo{
		NDNummer:            &nd,
		NDNummerStatus:      domain.NDVerlopen,
		NDNummerVervalDatum: &expired,
	})
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	// The audience gate would also reject, but the blocked applicant must get
	// the remediation error, not a plain forbidden.
	var compErr *apperrors.ComplianceError
	suite.Require().ErrorAs(err, &compErr)
	suite.Equal("/dashboard/compliance", compErr.ActionURL)
}

func (suite *OpdrachtServiceTestSuite) TestApply_ComplianceCheckedBeforeClosedStatus() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.Status = domain.OpdrachtToegewezen

	nd := "ND7654321"
	expired := time.Now().AddDate(0, 0, -10)
	suite.givenZZPActor(userID, profileID, domain.LicenseInfo{
		NDNummer:            &nd,
		NDNummerStatus:      domain.NDVerlopen,
		NDNummerVervalDatum: &expired,
	})
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var compErr *apperrors.ComplianceError
	suite.Require().ErrorAs(err, &compErr)
}

func (suite *OpdrachtServiceTestSuite) TestApply_AutoAcceptOnOpenPosting() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.AutoAccept = true

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockSollicitatieRepo.On("FindByOpdrachtAndSollicitant", ctx, opdracht.OpdrachtID, profileID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockSollicitatieRepo.On("SaveSollicitatieInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Sollicitatie")).Return(nil).Once()
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, mock.AnythingOfType("string"), domain.SollicitatieAccepted, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	// Accepted + created events, no assignment event.
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.AnythingOfType("domain.OutboxEvent")).Return(nil).Times(2)
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.AutoAccepted)
	suite.Equal(domain.SollicitatieAccepted, resp.Sollicitatie.Status)
	// The posting is not urgent, so no slot claim and no scheduled Werkuur.
	suite.Equal(domain.OpdrachtOpen, resp.OpdrachtStatus)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "ClaimSlot",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockWerkuurRepo.AssertNotCalled(suite.T(), "SaveWerkuurInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOutboxRepo.AssertExpectations(suite.T())
}

func (suite *OpdrachtServiceTestSuite) TestApply_AutoAcceptBedrijfSkipsWerkuur() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.Status = domain.OpdrachtUrgent
	opdracht.AutoAccept = true

	suite.givenBedrijfActor(userID, profileID, 4, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockSollicitatieRepo.On("FindByOpdrachtAndSollicitant", ctx, opdracht.OpdrachtID, profileID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockSollicitatieRepo.On("SaveSollicitatieInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Sollicitatie")).Return(nil).Once()
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, mock.AnythingOfType("string"), domain.SollicitatieAccepted, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.AnythingOfType("domain.OutboxEvent")).Return(nil).Times(2)
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.AutoAccepted)
	suite.Equal(domain.SollicitatieAccepted, resp.Sollicitatie.Status)
	// A bedrijf brings its own roster; no Werkuur is scheduled on acceptance.
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "ClaimSlot",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockWerkuurRepo.AssertNotCalled(suite.T(), "SaveWerkuurInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestApply_AutoAcceptFillsLastSlot() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	ownerUserID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), ownerUserID)
	opdracht.Status = domain.OpdrachtUrgent
	opdracht.AutoAccept = true
	opdracht.AantalBeveiligers = 1

	claimed := *opdracht
	claimed.AcceptedCount = 1

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockSollicitatieRepo.On("FindByOpdrachtAndSollicitant", ctx, opdracht.OpdrachtID, profileID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockSollicitatieRepo.On("SaveSollicitatieInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Sollicitatie")).Return(nil).Once()
	suite.mockOpdrachtRepo.On("ClaimSlot", ctx, mock.Anything, opdracht.OpdrachtID, userID, mock.AnythingOfType("time.Time")).
		Return(&claimed, nil).Once()
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, mock.AnythingOfType("string"), domain.SollicitatieAccepted, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockWerkuurRepo.On("SaveWerkuurInTx", ctx, mock.Anything, mock.MatchedBy(func(w domain.Werkuur) bool {
		return w.OpdrachtID == opdracht.OpdrachtID &&
			w.ZZPProfileID == profileID &&
			w.Status == domain.WerkuurScheduled &&
			w.Uurtarief.Equal(opdracht.Uurtarief)
	})).Return(nil).Once()
	suite.mockOpdrachtRepo.On("UpdateStatusInTx", ctx, mock.Anything, opdracht.OpdrachtID, domain.OpdrachtUrgent, domain.OpdrachtToegewezen, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.AnythingOfType("domain.OutboxEvent")).Return(nil).Times(3)
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.AutoAccepted)
	suite.Equal(domain.OpdrachtToegewezen, resp.OpdrachtStatus)
	suite.Equal(domain.SollicitatieAccepted, resp.Sollicitatie.Status)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
	suite.mockWerkuurRepo.AssertExpectations(suite.T())
	suite.mockOutboxRepo.AssertExpectations(suite.T())
}

func (suite *OpdrachtServiceTestSuite) TestApply_CapacityRace() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	opdracht.Status = domain.OpdrachtUrgent
	opdracht.AutoAccept = true
	opdracht.AantalBeveiligers = 1

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockSollicitatieRepo.On("FindByOpdrachtAndSollicitant", ctx, opdracht.OpdrachtID, profileID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockSollicitatieRepo.On("SaveSollicitatieInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Sollicitatie")).Return(nil).Once()
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, mock.AnythingOfType("string"), domain.SollicitatieAccepted, userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	// Another accept got the last slot between the read and the claim.
	suite.mockOpdrachtRepo.On("ClaimSlot", ctx, mock.Anything, opdracht.OpdrachtID, userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusConflict, appErr.Code)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestApply_BedrijfBelowMinTeamSize() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())
	minTeam := 5
	opdracht.MinTeamSize = &minTeam

	suite.givenBedrijfActor(userID, profileID, 3, activeLicense(200))
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)

	resp, err := suite.service.Apply(ctx, userID, opdracht.OpdrachtID, dto.ApplyRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusBadRequest, appErr.Code)
}

// --- Create ---

func (suite *OpdrachtServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, userID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: profileID, UserID: userID}, nil)
	suite.mockOpdrachtRepo.On("SaveOpdracht", ctx, mock.MatchedBy(func(o domain.Opdracht) bool {
		return o.Status == domain.OpdrachtOpen &&
			o.Creator == domain.Owner{Type: domain.OwnerOpdrachtgever, ID: profileID}
	})).Return(nil).Once()

	opdracht, err := suite.service.Create(ctx, userID, dto.CreateOpdrachtRequest{
		Titel:             "Evenementbeveiliging",
		Beschrijving:      "Festival",
		Locatie:           "Utrecht",
		StartDatum:        time.Now().Add(48 * time.Hour),
		EindDatum:         time.Now().Add(56 * time.Hour),
		Uurtarief:         decimal.NewFromInt(30),
		AantalBeveiligers: 4,
		TargetAudience:    domain.AudienceBeiden,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(opdracht)
	suite.NotEmpty(opdracht.OpdrachtID)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
}

func (suite *OpdrachtServiceTestSuite) TestCreate_UurtariefBelowMinimum() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, userID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: profileID, UserID: userID}, nil)

	opdracht, err := suite.service.Create(ctx, userID, dto.CreateOpdrachtRequest{
		Titel:             "Te goedkoop",
		Beschrijving:      "x",
		Locatie:           "x",
		StartDatum:        time.Now().Add(48 * time.Hour),
		EindDatum:         time.Now().Add(56 * time.Hour),
		Uurtarief:         decimal.NewFromInt(10),
		AantalBeveiligers: 1,
		TargetAudience:    domain.AudienceBeiden,
	})

	suite.Require().Error(err)
	suite.Nil(opdracht)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusBadRequest, appErr.Code)
	suite.Contains(appErr.Message, "18")
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "SaveOpdracht", mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestCreate_EigenTeamAssignsDirectly() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	memberA := uuid.NewString()
	memberB := uuid.NewString()

	suite.givenBedrijfActor(userID, profileID, 6, activeLicense(200))
	suite.mockProfileRepo.On("ListActiveTeamMembers", ctx, profileID).Return([]domain.TeamMember{
		{MemberID: memberA, BedrijfID: profileID, Naam: "A", IsActive: true},
		{MemberID: memberB, BedrijfID: profileID, Naam: "B", IsActive: true},
	}, nil).Once()
	suite.mockOpdrachtRepo.On("SaveOpdracht", ctx, mock.MatchedBy(func(o domain.Opdracht) bool {
		return o.Status == domain.OpdrachtToegewezen &&
			o.AcceptedCount == 2 &&
			o.AcceptedBedrijfID != nil && *o.AcceptedBedrijfID == profileID
	})).Return(nil).Once()

	opdracht, err := suite.service.Create(ctx, userID, dto.CreateOpdrachtRequest{
		Titel:             "Interne surveillance",
		Beschrijving:      "Eigen team",
		Locatie:           "Rotterdam",
		StartDatum:        time.Now().Add(24 * time.Hour),
		EindDatum:         time.Now().Add(30 * time.Hour),
		Uurtarief:         decimal.NewFromInt(22),
		AantalBeveiligers: 2,
		TargetAudience:    domain.AudienceEigenTeam,
		TeamMemberIDs:     []string{memberA, memberB},
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(opdracht)
	suite.Equal(domain.OpdrachtToegewezen, opdracht.Status)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
}

func (suite *OpdrachtServiceTestSuite) TestCreate_EigenTeamInsufficientRoster() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()
	memberA := uuid.NewString()

	suite.givenBedrijfActor(userID, profileID, 6, activeLicense(200))
	suite.mockProfileRepo.On("ListActiveTeamMembers", ctx, profileID).Return([]domain.TeamMember{
		{MemberID: memberA, BedrijfID: profileID, Naam: "A", IsActive: true},
	}, nil).Once()

	opdracht, err := suite.service.Create(ctx, userID, dto.CreateOpdrachtRequest{
		Titel:             "Interne surveillance",
		Beschrijving:      "Eigen team",
		Locatie:           "Rotterdam",
		StartDatum:        time.Now().Add(24 * time.Hour),
		EindDatum:         time.Now().Add(30 * time.Hour),
		Uurtarief:         decimal.NewFromInt(22),
		AantalBeveiligers: 2,
		TargetAudience:    domain.AudienceEigenTeam,
		TeamMemberIDs:     []string{memberA, uuid.NewString()},
	})

	suite.Require().Error(err)
	suite.Nil(opdracht)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusBadRequest, appErr.Code)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "SaveOpdracht", mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestCreate_EigenTeamRequiresBedrijf() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, userID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: profileID, UserID: userID}, nil)

	opdracht, err := suite.service.Create(ctx, userID, dto.CreateOpdrachtRequest{
		Titel:             "x",
		Beschrijving:      "x",
		Locatie:           "x",
		StartDatum:        time.Now().Add(24 * time.Hour),
		EindDatum:         time.Now().Add(30 * time.Hour),
		Uurtarief:         decimal.NewFromInt(22),
		AantalBeveiligers: 1,
		TargetAudience:    domain.AudienceEigenTeam,
	})

	suite.Require().Error(err)
	suite.Nil(opdracht)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusForbidden, appErr.Code)
}

// --- Decide ---

func (suite *OpdrachtServiceTestSuite) TestDecide_AlreadyDecided() {
	ctx := context.Background()
	reviewerID := uuid.NewString()
	sollicitatieID := uuid.NewString()

	suite.mockSollicitatieRepo.On("FindSollicitatieByID", ctx, sollicitatieID).
		Return(&domain.Sollicitatie{SollicitatieID: sollicitatieID, Status: domain.SollicitatieAccepted}, nil).Once()

	result, err := suite.service.Decide(ctx, reviewerID, sollicitatieID, dto.DecideAccept)

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusConflict, appErr.Code)
}

func (suite *OpdrachtServiceTestSuite) TestDecide_NotOwner() {
	ctx := context.Background()
	reviewerID := uuid.NewString()
	reviewerProfileID := uuid.NewString()
	sollicitatieID := uuid.NewString()
	opdracht := openOpdracht(uuid.NewString(), uuid.NewString())

	suite.mockSollicitatieRepo.On("FindSollicitatieByID", ctx, sollicitatieID).
		Return(&domain.Sollicitatie{
			SollicitatieID:  sollicitatieID,
			OpdrachtID:      opdracht.OpdrachtID,
			SollicitantType: domain.SollicitantZZP,
			Status:          domain.SollicitatiePending,
		}, nil).Once()
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, reviewerID).
		Return(&domain.User{UserID: reviewerID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, reviewerID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: reviewerProfileID, UserID: reviewerID}, nil)

	result, err := suite.service.Decide(ctx, reviewerID, sollicitatieID, dto.DecideAccept)

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusForbidden, appErr.Code)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestDecide_AcceptZZP() {
	ctx := context.Background()
	reviewerID := uuid.NewString()
	ownerProfileID := uuid.NewString()
	applicantUserID := uuid.NewString()
	zzpProfileID := uuid.NewString()
	sollicitatieID := uuid.NewString()

	opdracht := openOpdracht(ownerProfileID, reviewerID)
	sollicitatie := &domain.Sollicitatie{
		SollicitatieID:  sollicitatieID,
		OpdrachtID:      opdracht.OpdrachtID,
		SollicitantType: domain.SollicitantZZP,
		SollicitantID:   zzpProfileID,
		Status:          domain.SollicitatiePending,
		AuditFields:     domain.AuditFields{CreatedBy: applicantUserID},
	}
	claimed := *opdracht
	claimed.AcceptedCount = 1 // one of two slots taken, stays OPEN

	suite.mockSollicitatieRepo.On("FindSollicitatieByID", ctx, sollicitatieID).Return(sollicitatie, nil).Once()
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, reviewerID).
		Return(&domain.User{UserID: reviewerID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, reviewerID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: ownerProfileID, UserID: reviewerID}, nil)
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockOpdrachtRepo.On("ClaimSlot", ctx, mock.Anything, opdracht.OpdrachtID, reviewerID, mock.AnythingOfType("time.Time")).
		Return(&claimed, nil).Once()
	suite.mockWerkuurRepo.On("SaveWerkuurInTx", ctx, mock.Anything, mock.MatchedBy(func(w domain.Werkuur) bool {
		return w.ZZPProfileID == zzpProfileID && w.Status == domain.WerkuurScheduled
	})).Return(nil).Once()
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, sollicitatieID, domain.SollicitatieAccepted, reviewerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.MatchedBy(func(e domain.OutboxEvent) bool {
		return e.Type == domain.EventSollicitatieAccepted
	})).Return(nil).Once()
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.Decide(ctx, reviewerID, sollicitatieID, dto.DecideAccept)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.SollicitatieAccepted, result.Status)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
	suite.mockWerkuurRepo.AssertExpectations(suite.T())
	// The posting still has a free slot, so no TOEGEWEZEN transition.
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "UpdateStatusInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestDecide_AcceptBedrijfAssignsWholeOpdracht() {
	ctx := context.Background()
	reviewerID := uuid.NewString()
	ownerProfileID := uuid.NewString()
	bedrijfProfileID := uuid.NewString()
	bedrijfUserID := uuid.NewString()
	sollicitatieID := uuid.NewString()

	opdracht := openOpdracht(ownerProfileID, reviewerID)
	sollicitatie := &domain.Sollicitatie{
		SollicitatieID:  sollicitatieID,
		OpdrachtID:      opdracht.OpdrachtID,
		SollicitantType: domain.SollicitantBedrijf,
		SollicitantID:   bedrijfProfileID,
		Status:          domain.SollicitatiePending,
		AuditFields:     domain.AuditFields{CreatedBy: bedrijfUserID},
	}

	suite.mockSollicitatieRepo.On("FindSollicitatieByID", ctx, sollicitatieID).Return(sollicitatie, nil).Once()
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, reviewerID).
		Return(&domain.User{UserID: reviewerID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, reviewerID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: ownerProfileID, UserID: reviewerID}, nil)
	suite.mockProfileRepo.On("FindBedrijfByID", ctx, bedrijfProfileID).
		Return(&domain.BedrijfProfile{ProfileID: bedrijfProfileID, UserID: bedrijfUserID}, nil)
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockOpdrachtRepo.On("AssignBedrijfInTx", ctx, mock.Anything, opdracht.OpdrachtID, bedrijfProfileID, reviewerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, sollicitatieID, domain.SollicitatieAccepted, reviewerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.AnythingOfType("domain.OutboxEvent")).Return(nil).Times(2)
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.Decide(ctx, reviewerID, sollicitatieID, dto.DecideAccept)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.SollicitatieAccepted, result.Status)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
	suite.mockWerkuurRepo.AssertNotCalled(suite.T(), "SaveWerkuurInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestDecide_Reject() {
	ctx := context.Background()
	reviewerID := uuid.NewString()
	ownerProfileID := uuid.NewString()
	applicantUserID := uuid.NewString()
	sollicitatieID := uuid.NewString()

	opdracht := openOpdracht(ownerProfileID, reviewerID)
	sollicitatie := &domain.Sollicitatie{
		SollicitatieID:  sollicitatieID,
		OpdrachtID:      opdracht.OpdrachtID,
		SollicitantType: domain.SollicitantZZP,
		SollicitantID:   uuid.NewString(),
		Status:          domain.SollicitatiePending,
		AuditFields:     domain.AuditFields{CreatedBy: applicantUserID},
	}

	suite.mockSollicitatieRepo.On("FindSollicitatieByID", ctx, sollicitatieID).Return(sollicitatie, nil).Once()
	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, reviewerID).
		Return(&domain.User{UserID: reviewerID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, reviewerID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: ownerProfileID, UserID: reviewerID}, nil)
	suite.mockOpdrachtRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockOpdrachtRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	suite.mockSollicitatieRepo.On("UpdateStatusInTx", ctx, mock.Anything, sollicitatieID, domain.SollicitatieRejected, reviewerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockOutboxRepo.On("AppendEventInTx", ctx, mock.Anything, mock.MatchedBy(func(e domain.OutboxEvent) bool {
		return e.Type == domain.EventSollicitatieRejected
	})).Return(nil).Once()
	suite.mockOpdrachtRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.Decide(ctx, reviewerID, sollicitatieID, dto.DecideReject)

	suite.Require().NoError(err)
	suite.Equal(domain.SollicitatieRejected, result.Status)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "ClaimSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateStatus ---

func (suite *OpdrachtServiceTestSuite) TestUpdateStatus_IllegalTransition() {
	ctx := context.Background()
	actorID := uuid.NewString()
	ownerProfileID := uuid.NewString()
	opdracht := openOpdracht(ownerProfileID, actorID)

	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, actorID).
		Return(&domain.User{UserID: actorID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, actorID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: ownerProfileID, UserID: actorID}, nil)

	result, err := suite.service.UpdateStatus(ctx, actorID, opdracht.OpdrachtID, domain.OpdrachtCompleted)

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusConflict, appErr.Code)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "UpdateOpdrachtStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestUpdateStatus_CancelFromOpen() {
	ctx := context.Background()
	actorID := uuid.NewString()
	ownerProfileID := uuid.NewString()
	opdracht := openOpdracht(ownerProfileID, actorID)

	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, actorID).
		Return(&domain.User{UserID: actorID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, actorID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: ownerProfileID, UserID: actorID}, nil)
	suite.mockOpdrachtRepo.On("UpdateOpdrachtStatus", ctx, opdracht.OpdrachtID, domain.OpdrachtOpen, domain.OpdrachtCancelled, actorID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockSollicitatieRepo.On("ListByOpdracht", ctx, opdracht.OpdrachtID).Return(nil, nil).Once()
	suite.mockOutboxRepo.On("AppendEvent", ctx, mock.MatchedBy(func(e domain.OutboxEvent) bool {
		return e.Type == domain.EventOpdrachtStatusChange
	})).Return(nil).Once()

	result, err := suite.service.UpdateStatus(ctx, actorID, opdracht.OpdrachtID, domain.OpdrachtCancelled)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(domain.OpdrachtCancelled, result.Status)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
	suite.mockOutboxRepo.AssertExpectations(suite.T())
}

func (suite *OpdrachtServiceTestSuite) TestUpdateStatus_RacedTransition() {
	ctx := context.Background()
	actorID := uuid.NewString()
	ownerProfileID := uuid.NewString()
	opdracht := openOpdracht(ownerProfileID, actorID)

	suite.mockOpdrachtRepo.On("FindOpdrachtByID", ctx, opdracht.OpdrachtID).Return(opdracht, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, actorID).
		Return(&domain.User{UserID: actorID, Role: domain.RoleOpdrachtgever, Status: domain.UserActive}, nil)
	suite.mockProfileRepo.On("FindOpdrachtgeverByUserID", ctx, actorID).
		Return(&domain.OpdrachtgeverProfile{ProfileID: ownerProfileID, UserID: actorID}, nil)
	suite.mockOpdrachtRepo.On("UpdateOpdrachtStatus", ctx, opdracht.OpdrachtID, domain.OpdrachtOpen, domain.OpdrachtToegewezen, actorID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrConflict).Once()

	result, err := suite.service.UpdateStatus(ctx, actorID, opdracht.OpdrachtID, domain.OpdrachtToegewezen)

	suite.Require().Error(err)
	suite.Nil(result)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusConflict, appErr.Code)
}

// --- ListAvailable ---

func (suite *OpdrachtServiceTestSuite) TestListAvailable_NonCompliantGetsWarning() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()

	suite.givenZZPActor(userID, profileID, domain.LicenseInfo{NDNummerStatus: domain.NDNietGeregistreerd})

	resp, err := suite.service.ListAvailable(ctx, userID, dto.ListOpdrachtenParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Empty(resp.Opdrachten)
	suite.Require().NotNil(resp.ComplianceWarning)
	suite.Equal("/dashboard/compliance", resp.ComplianceWarning.ActionURL)
	suite.Equal(domain.RiskCritical, resp.ComplianceWarning.RiskLevel)
	suite.mockOpdrachtRepo.AssertNotCalled(suite.T(), "ListOpdrachten", mock.Anything, mock.Anything)
}

func (suite *OpdrachtServiceTestSuite) TestListAvailable_ZZPFilters() {
	ctx := context.Background()
	userID := uuid.NewString()
	profileID := uuid.NewString()

	suite.givenZZPActor(userID, profileID, activeLicense(200))
	suite.mockOpdrachtRepo.On("ListOpdrachten", ctx, mock.MatchedBy(func(f portsrepo.OpdrachtFilter) bool {
		return f.IncludeDirectZZP &&
			len(f.Audiences) == 2 &&
			len(f.Statuses) == 2
	})).Return([]domain.Opdracht{*openOpdracht(uuid.NewString(), uuid.NewString())}, nil).Once()

	resp, err := suite.service.ListAvailable(ctx, userID, dto.ListOpdrachtenParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(resp.Opdrachten, 1)
	suite.Nil(resp.ComplianceWarning)
	suite.mockOpdrachtRepo.AssertExpectations(suite.T())
}

func TestOpdrachtService(t *testing.T) {
	suite.Run(t, new(OpdrachtServiceTestSuite))
}
