package models

import "time"

// User is the database representation of a platform account.
type User struct {
	UserID        string `db:"user_id"`
	Email         string `db:"email"`
	PasswordHash  string `db:"password_hash"`
	Name          string `db:"name"`
	Role          string `db:"role"`
	Status        string `db:"status"`
	EmailVerified bool   `db:"email_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
