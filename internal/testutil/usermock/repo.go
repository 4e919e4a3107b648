package usermock

import (
	"context"
	"time"

	domain "idcard-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, u *domain.User) error
	GetByEmailFn        func(ctx context.Context, email string) (*domain.User, error)
	GetByUserIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	CreateSessionFn     func(ctx context.Context, s *domain.Session) error
	GetBySessionTokenFn func(ctx context.Context, token string, now time.Time) (*domain.User, error)
	DeleteSessionFn     func(ctx context.Context, token string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateSession(ctx context.Context, s *domain.Session) error {
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySessionToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	if m.GetBySessionTokenFn != nil {
		return m.GetBySessionTokenFn(ctx, token, now)
	}
	return nil, context.Canceled
}

func (m *Repo) DeleteSession(ctx context.Context, token string) error {
	if m.DeleteSessionFn != nil {
		return m.DeleteSessionFn(ctx, token)
	}
	return nil
}
