package services

import (
	"context"
	"net/http"
	"time"

	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	profileRepo portsrepo.ProfileRepository
	werkuurRepo portsrepo.WerkuurRepository
}

// NewUserService creates the user identity service.
func NewUserService(userRepo portsrepo.UserRepository, profileRepo portsrepo.ProfileRepository, werkuurRepo portsrepo.WerkuurRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		werkuurRepo: werkuurRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListWerkuren(ctx context.Context, userID string, limit, offset int) ([]domain.Werkuur, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleZZPBeveiliger {
		return nil, apperrors.NewAppError(http.StatusForbidden, "Alleen ZZP-beveiligers hebben werkuren", apperrors.ErrForbidden)
	}

	profile, err := s.profileRepo.FindZZPByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.werkuurRepo.ListByZZP(ctx, profile.ProfileID, limit, offset)
}
