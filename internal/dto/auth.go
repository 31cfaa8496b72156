package dto

import "github.com/securyflex/securyflex-backend/internal/core/domain"

// RegisterRequest creates a user plus its role profile in one call. The role
// is fixed after onboarding.
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ZZP_BEVEILIGER BEDRIJF OPDRACHTGEVER"`

	// Role-specific profile fields
	KVKNummer    string `json:"kvkNummer"`
	Bedrijfsnaam string `json:"bedrijfsnaam"`
	Voornaam     string `json:"voornaam"`
	Achternaam   string `json:"achternaam"`
}

// LoginRequest authenticates by e-mail and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"` // seconds
	User      UserResponse `json:"user"`
}
