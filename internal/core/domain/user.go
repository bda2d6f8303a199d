package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin       = "admin"
	RoleOwner       = "owner"
	RoleTenant      = "tenant"
	RoleAirbnbGuest = "airbnb_guest"
	RoleSecurity    = "security"
)

var validRoles = map[string]struct{}{
	RoleAdmin:       {},
	RoleOwner:       {},
	RoleTenant:      {},
	RoleAirbnbGuest: {},
	RoleSecurity:    {},
}

// IsValidRole reports whether role is one of the fixed role values.
func IsValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrAccountDisabled = errors.New("account disabled")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")

// User models a registered resident, administrator, or staff member.
// PasswordHash is never serialized in any response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Cedula       string    `json:"cedula"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
func (u *User) IsOwner() bool { return u.Role == RoleOwner }
