package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/utils"
)

type authService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	profileRepo portsrepo.ProfileRepository
	jwtSecret   string
	jwtExpiry   time.Duration
	jwtIssuer   string
}

// NewAuthService creates the registration/login service.
func NewAuthService(userRepo portsrepo.UserRepository, profileRepo portsrepo.ProfileRepository, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
		jwtIssuer:   jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateProfileFields(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewAppError(http.StatusConflict, "E-mailadres is al in gebruik", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, err
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID: newUserID,
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
		Status: domain.UserActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, passwordHash); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(http.StatusConflict, "E-mailadres is al in gebruik", apperrors.ErrDuplicate)
		}
		return nil, err
	}

	if err := s.createProfile(ctx, user, req, now); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user registered", "userID", user.UserID, "role", string(user.Role))
	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry.Seconds()),
		User:      dto.ToUserResponse(&user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, passwordHash, err := s.userRepo.FindCredentialsByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "Ongeldige inloggegevens", apperrors.ErrUnauthenticated)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, passwordHash) {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Ongeldige inloggegevens", apperrors.ErrUnauthenticated)
	}
	if !user.IsActive() {
		return nil, apperrors.NewAppError(http.StatusForbidden, "Dit account is gedeactiveerd", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry.Seconds()),
		User:      dto.ToUserResponse(user),
	}, nil
}

func validateProfileFields(req dto.RegisterRequest) error {
	switch req.Role {
	case domain.RoleZZPBeveiliger:
		if req.Voornaam == "" || req.Achternaam == "" || req.KVKNummer == "" {
			return apperrors.NewAppError(http.StatusBadRequest, "Voornaam, achternaam en KVK-nummer zijn verplicht voor ZZP-beveiligers", apperrors.ErrValidation)
		}
	case domain.RoleBedrijf:
		if req.Bedrijfsnaam == "" || req.KVKNummer == "" {
			return apperrors.NewAppError(http.StatusBadRequest, "Bedrijfsnaam en KVK-nummer zijn verplicht voor beveiligingsbedrijven", apperrors.ErrValidation)
		}
	case domain.RoleOpdrachtgever:
		if req.Bedrijfsnaam == "" {
			return apperrors.NewAppError(http.StatusBadRequest, "Bedrijfsnaam is verplicht voor opdrachtgevers", apperrors.ErrValidation)
		}
	default:
		return apperrors.NewAppError(http.StatusBadRequest, "Ongeldige rol", apperrors.ErrValidation)
	}
	return nil
}

func (s *authService) createProfile(ctx context.Context, user domain.User, req dto.RegisterRequest, now time.Time) error {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     user.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: user.UserID,
	}
	switch user.Role {
	case domain.RoleZZPBeveiliger:
		return s.profileRepo.SaveZZPProfile(ctx, domain.ZZPProfile{
			ProfileID:  uuid.NewString(),
			UserID:     user.UserID,
			Voornaam:   req.Voornaam,
			Achternaam: req.Achternaam,
			KVKNummer:  req.KVKNummer,
			LicenseInfo: domain.LicenseInfo{
				NDNummerStatus: domain.NDNietGeregistreerd,
			},
			AuditFields: audit,
		})
	case domain.RoleBedrijf:
		return s.profileRepo.SaveBedrijfProfile(ctx, domain.BedrijfProfile{
			ProfileID:    uuid.NewString(),
			UserID:       user.UserID,
			Bedrijfsnaam: req.Bedrijfsnaam,
			KVKNummer:    req.KVKNummer,
			LicenseInfo: domain.LicenseInfo{
				NDNummerStatus: domain.NDNietGeregistreerd,
			},
			AuditFields: audit,
		})
	case domain.RoleOpdrachtgever:
		return s.profileRepo.SaveOpdrachtgeverProfile(ctx, domain.OpdrachtgeverProfile{
			ProfileID:    uuid.NewString(),
			UserID:       user.UserID,
			Bedrijfsnaam: req.Bedrijfsnaam,
			ContactNaam:  req.Name,
			AuditFields:  audit,
		})
	}
	return nil
}
