// internal/models/session.go
package models

import (
	"context"
	"time"
)

// Session represents a signed-in user session
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Role         string    `json:"role"`
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
	LastActivity time.Time `json:"lastActivity"`
}

// IsExpired checks if session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// UpdateActivity updates the last activity timestamp
func (s *Session) UpdateActivity() {
	s.LastActivity = time.Now()
}

// SessionStore defines session data access interface
type SessionStore interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
