package domain

import "time"

// UserRole defines the fixed role a user takes on after onboarding.
type UserRole string

const (
	RoleZZPBeveiliger UserRole = "ZZP_BEVEILIGER"
	RoleBedrijf       UserRole = "BEDRIJF"
	RoleOpdrachtgever UserRole = "OPDRACHTGEVER"
	RoleAdmin         UserRole = "ADMIN"
)

// UserStatus is the soft lifecycle state of a user account. Users are never
// hard-deleted.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserDisabled  UserStatus = "DISABLED"
)

// User represents an identity record in the domain.
type User struct {
	UserID        string     `json:"userID"` // Primary key (UUID)
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Role          UserRole   `json:"role"`
	Status        UserStatus `json:"status"`
	EmailVerified bool       `json:"emailVerified"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // soft delete marker
}

// IsActive reports whether the account may use the platform.
func (u User) IsActive() bool {
	return u.Status == UserActive && u.DeletedAt == nil
}
