package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)

	CreateSession(ctx context.Context, s *Session) error
	// GetBySessionToken resolves a bearer token to its user; expired sessions
	// yield ErrSessionExpired.
	GetBySessionToken(ctx context.Context, token string, now time.Time) (*User, error)
	DeleteSession(ctx context.Context, token string) error
}
