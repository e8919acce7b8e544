// internal/models/user.go
package models

import (
	"context"
	"time"
)

// Roles gate which dashboard and guard applies.
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// Roles is the accepted role vocabulary on sign-up.
var Roles = []string{RoleCandidate, RoleEmployer}

// UserProfile is the persisted account record. PasswordHash never leaves
// the server.
type UserProfile struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CompanyName  string    `json:"companyName,omitempty" db:"company_name"`
	CompanyLogo  string    `json:"companyLogo,omitempty" db:"company_logo"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// DashboardPath returns the role's own dashboard route, used by the guard
// when redirecting a mismatched session.
func (u *UserProfile) DashboardPath() string {
	if u.Role == RoleEmployer {
		return "/employer/dashboard"
	}
	return "/candidate/dashboard"
}

// UserRepository defines profile data access.
type UserRepository interface {
	Create(ctx context.Context, user *UserProfile) error
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)
	GetByID(ctx context.Context, id string) (*UserProfile, error)
}
