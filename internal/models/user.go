package models

import (
	"time"
)

// Role is the closed set of actor roles known to the platform.
type Role string

const (
	RoleCitizen   Role = "CITIZEN"
	RoleAuthority Role = "AUTHORITY"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleAuthority, RoleAdmin:
		return true
	}
	return false
}

// CanTriage reports whether the role may update report status, severity,
// assigned agency and resolution images. All permission checks go through
// this method rather than comparing role strings at call sites.
func (r Role) CanTriage() bool {
	return r == RoleAuthority || r == RoleAdmin
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"is_active"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
