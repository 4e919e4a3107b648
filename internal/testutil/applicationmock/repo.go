package applicationmock

import (
	"context"
	"time"

	domain "idcard-backend/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill the fields a test needs; unfilled ones are no-ops.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	SaveFn                        func(ctx context.Context, a *domain.Application) error
	GetByIDFn                     func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListFn                        func(ctx context.Context, f domain.ListFilter) ([]domain.Application, int64, error)
	SearchFn                      func(ctx context.Context, f domain.SearchFilter) ([]domain.Application, error)
	ExportFn                      func(ctx context.Context, f domain.ExportFilter) ([]domain.Application, error)
	BulkApproveFn                 func(ctx context.Context, applicationIDs []string, reviewerID string, reviewedAt time.Time) (int64, error)
	SetStatusByAppointmentFn      func(ctx context.Context, appointmentID uint64, status domain.Status) (int64, error)
	ListByAppointmentFn           func(ctx context.Context, appointmentID uint64) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Application, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Export(ctx context.Context, f domain.ExportFilter) ([]domain.Application, error) {
	if m.ExportFn != nil {
		return m.ExportFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) BulkApprove(ctx context.Context, applicationIDs []string, reviewerID string, reviewedAt time.Time) (int64, error) {
	if m.BulkApproveFn != nil {
		return m.BulkApproveFn(ctx, applicationIDs, reviewerID, reviewedAt)
	}
	return 0, nil
}

func (m *Repo) SetStatusByAppointment(ctx context.Context, appointmentID uint64, status domain.Status) (int64, error) {
	if m.SetStatusByAppointmentFn != nil {
		return m.SetStatusByAppointmentFn(ctx, appointmentID, status)
	}
	return 0, nil
}

func (m *Repo) ListByAppointment(ctx context.Context, appointmentID uint64) ([]domain.Application, error) {
	if m.ListByAppointmentFn != nil {
		return m.ListByAppointmentFn(ctx, appointmentID)
	}
	return nil, nil
}
