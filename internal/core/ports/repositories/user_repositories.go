package repositories

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// UserReader defines read operations for user identity data.
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by e-mail address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user identity data.
type UserWriter interface {
	// SaveUser persists a new user together with its password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// UpdateUser updates mutable user fields (name, status, verification).
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserAuthenticator exposes the credential lookup used by the auth service.
type UserAuthenticator interface {
	// FindCredentialsByEmail returns the user and its password hash.
	FindCredentialsByEmail(ctx context.Context, email string) (*domain.User, string, error)
}

// UserRepository combines all user-related repository interfaces.
type UserRepository interface {
	UserReader
	UserWriter
	UserAuthenticator
}
