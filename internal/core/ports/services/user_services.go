package services

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

// AuthSvcFacade handles registration and login.
type AuthSvcFacade interface {
	// Register creates a user plus its role profile and issues a token.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

// UserSvcFacade defines operations on user identities.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser updates the actor's own mutable fields.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ListWerkuren returns the actor's work-hour records (ZZP only).
	ListWerkuren(ctx context.Context, userID string, limit, offset int) ([]domain.Werkuur, error)
}
