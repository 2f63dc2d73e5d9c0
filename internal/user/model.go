package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role is a closed set of platform roles.
type Role string

const (
	RoleMember Role = "member"         // books courts
	RoleOwner  Role = "facility_owner" // manages venues and their bookings
	RoleAdmin  Role = "admin"          // moderates the platform
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents a user in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	Role         Role
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}

// IsAdmin reports whether the user has platform-admin privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	Role     string
	IsActive *bool // Use pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
