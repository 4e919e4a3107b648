package locationmock

import (
	"context"

	domain "idcard-backend/internal/domain/location"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Location) error
	SaveFn             func(ctx context.Context, l *domain.Location) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Location, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Location, error)
	ListActiveFn       func(ctx context.Context) ([]domain.Location, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Location) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Location) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Location, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Location, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Location, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}
