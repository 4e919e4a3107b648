package documentmock

import (
	"context"

	domain "idcard-backend/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, d *domain.Document) error
	GetByDocumentIDFn    func(ctx context.Context, documentID string) (*domain.Document, error)
	ListByApplicationFn  func(ctx context.Context, applicationID uint64) ([]domain.Document, error)
	TypesByApplicationFn func(ctx context.Context, applicationID uint64) ([]domain.Type, error)
	DeleteFn             func(ctx context.Context, documentID string) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocumentID(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetByDocumentIDFn != nil {
		return m.GetByDocumentIDFn(ctx, documentID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Document, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) TypesByApplication(ctx context.Context, applicationID uint64) ([]domain.Type, error) {
	if m.TypesByApplicationFn != nil {
		return m.TypesByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, documentID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, documentID)
	}
	return nil
}
