package dto

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID        string            `json:"userID"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	Role          domain.UserRole   `json:"role"`
	Status        domain.UserStatus `json:"status"`
	EmailVerified bool              `json:"emailVerified"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		Status:        u.Status,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}
