package appointmentmock

import (
	"context"
	"time"

	domain "idcard-backend/internal/domain/appointment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, a *domain.Appointment) error
	SaveFn                   func(ctx context.Context, a *domain.Appointment) error
	GetByAppointmentIDFn     func(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Appointment, error)
	GetByIDSuffixFn          func(ctx context.Context, suffix string) (*domain.Appointment, error)
	CountSlotFn              func(ctx context.Context, locationID uint64, date time.Time, slot string) (int64, error)
	CountByLocationAndDateFn func(ctx context.Context, locationID uint64, date time.Time) (map[string]int, error)
	CountFutureFn            func(ctx context.Context, locationID uint64, from time.Time) (int64, error)
	ListFn                   func(ctx context.Context, f domain.ListFilter) ([]domain.Appointment, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Appointment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Appointment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAppointmentID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	if m.GetByAppointmentIDFn != nil {
		return m.GetByAppointmentIDFn(ctx, appointmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Appointment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDSuffix(ctx context.Context, suffix string) (*domain.Appointment, error) {
	if m.GetByIDSuffixFn != nil {
		return m.GetByIDSuffixFn(ctx, suffix)
	}
	return nil, context.Canceled
}

func (m *Repo) CountSlot(ctx context.Context, locationID uint64, date time.Time, slot string) (int64, error) {
	if m.CountSlotFn != nil {
		return m.CountSlotFn(ctx, locationID, date, slot)
	}
	return 0, nil
}

func (m *Repo) CountByLocationAndDate(ctx context.Context, locationID uint64, date time.Time) (map[string]int, error) {
	if m.CountByLocationAndDateFn != nil {
		return m.CountByLocationAndDateFn(ctx, locationID, date)
	}
	return map[string]int{}, nil
}

func (m *Repo) CountFuture(ctx context.Context, locationID uint64, from time.Time) (int64, error) {
	if m.CountFutureFn != nil {
		return m.CountFutureFn(ctx, locationID, from)
	}
	return 0, nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Appointment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
