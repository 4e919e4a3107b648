package reportingmock

import (
	"context"
	"time"

	domain "idcard-backend/internal/domain/reporting"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unfilled count funcs return zero, unfilled group funcs return empty slices.
type Repo struct {
	CountApplicationsFn                 func(ctx context.Context) (int64, error)
	CountApplicationsByStatusesFn       func(ctx context.Context, statuses []string) (int64, error)
	CountApplicationsPaymentCompletedFn func(ctx context.Context) (int64, error)
	SumCompletedPaymentsFn              func(ctx context.Context) (float64, error)
	CountTodayAppointmentsFn            func(ctx context.Context, day time.Time) (int64, error)
	GroupApplicationsByStatusFn         func(ctx context.Context) ([]domain.StatusCount, error)
	GroupApplicationsByTypeFn           func(ctx context.Context) ([]domain.TypeCount, error)
	GroupApplicationsByStatusAndTypeFn  func(ctx context.Context, r domain.Range) ([]domain.StatusTypeCount, error)
	GroupPaymentsByStatusFn             func(ctx context.Context) ([]domain.PaymentGroup, error)
	GroupPaymentsByStatusAndMethodFn    func(ctx context.Context, r domain.Range) ([]domain.PaymentGroup, error)
	GroupAppointmentsByStatusFn         func(ctx context.Context, r domain.Range) ([]domain.StatusCount, error)
	TopLocationsByVolumeFn              func(ctx context.Context, r domain.Range, limit int) ([]domain.LocationVolume, error)
	RecentApplicationsFn                func(ctx context.Context, limit int) ([]domain.RecentApplication, error)
	CountAppointmentsByLocationFn       func(ctx context.Context, locationID uint64) (int64, error)
	CountAppointmentsByLocationSinceFn  func(ctx context.Context, locationID uint64, from time.Time) (int64, error)
	CountAppointmentsByLocationOnFn     func(ctx context.Context, locationID uint64, day time.Time) (int64, error)
}

func (m *Repo) CountApplications(ctx context.Context) (int64, error) {
	if m.CountApplicationsFn != nil {
		return m.CountApplicationsFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountApplicationsByStatuses(ctx context.Context, statuses []string) (int64, error) {
	if m.CountApplicationsByStatusesFn != nil {
		return m.CountApplicationsByStatusesFn(ctx, statuses)
	}
	return 0, nil
}

func (m *Repo) CountApplicationsPaymentCompleted(ctx context.Context) (int64, error) {
	if m.CountApplicationsPaymentCompletedFn != nil {
		return m.CountApplicationsPaymentCompletedFn(ctx)
	}
	return 0, nil
}

func (m *Repo) SumCompletedPayments(ctx context.Context) (float64, error) {
	if m.SumCompletedPaymentsFn != nil {
		return m.SumCompletedPaymentsFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountTodayAppointments(ctx context.Context, day time.Time) (int64, error) {
	if m.CountTodayAppointmentsFn != nil {
		return m.CountTodayAppointmentsFn(ctx, day)
	}
	return 0, nil
}

func (m *Repo) GroupApplicationsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	if m.GroupApplicationsByStatusFn != nil {
		return m.GroupApplicationsByStatusFn(ctx)
	}
	return []domain.StatusCount{}, nil
}

func (m *Repo) GroupApplicationsByType(ctx context.Context) ([]domain.TypeCount, error) {
	if m.GroupApplicationsByTypeFn != nil {
		return m.GroupApplicationsByTypeFn(ctx)
	}
	return []domain.TypeCount{}, nil
}

func (m *Repo) GroupApplicationsByStatusAndType(ctx context.Context, r domain.Range) ([]domain.StatusTypeCount, error) {
	if m.GroupApplicationsByStatusAndTypeFn != nil {
		return m.GroupApplicationsByStatusAndTypeFn(ctx, r)
	}
	return []domain.StatusTypeCount{}, nil
}

func (m *Repo) GroupPaymentsByStatus(ctx context.Context) ([]domain.PaymentGroup, error) {
	if m.GroupPaymentsByStatusFn != nil {
		return m.GroupPaymentsByStatusFn(ctx)
	}
	return []domain.PaymentGroup{}, nil
}

func (m *Repo) GroupPaymentsByStatusAndMethod(ctx context.Context, r domain.Range) ([]domain.PaymentGroup, error) {
	if m.GroupPaymentsByStatusAndMethodFn != nil {
		return m.GroupPaymentsByStatusAndMethodFn(ctx, r)
	}
	return []domain.PaymentGroup{}, nil
}

func (m *Repo) GroupAppointmentsByStatus(ctx context.Context, r domain.Range) ([]domain.StatusCount, error) {
	if m.GroupAppointmentsByStatusFn != nil {
		return m.GroupAppointmentsByStatusFn(ctx, r)
	}
	return []domain.StatusCount{}, nil
}

func (m *Repo) TopLocationsByVolume(ctx context.Context, r domain.Range, limit int) ([]domain.LocationVolume, error) {
	if m.TopLocationsByVolumeFn != nil {
		return m.TopLocationsByVolumeFn(ctx, r, limit)
	}
	return []domain.LocationVolume{}, nil
}

func (m *Repo) RecentApplications(ctx context.Context, limit int) ([]domain.RecentApplication, error) {
	if m.RecentApplicationsFn != nil {
		return m.RecentApplicationsFn(ctx, limit)
	}
	return []domain.RecentApplication{}, nil
}

func (m *Repo) CountAppointmentsByLocation(ctx context.Context, locationID uint64) (int64, error) {
	if m.CountAppointmentsByLocationFn != nil {
		return m.CountAppointmentsByLocationFn(ctx, locationID)
	}
	return 0, nil
}

func (m *Repo) CountAppointmentsByLocationSince(ctx context.Context, locationID uint64, from time.Time) (int64, error) {
	if m.CountAppointmentsByLocationSinceFn != nil {
		return m.CountAppointmentsByLocationSinceFn(ctx, locationID, from)
	}
	return 0, nil
}

func (m *Repo) CountAppointmentsByLocationOn(ctx context.Context, locationID uint64, day time.Time) (int64, error) {
	if m.CountAppointmentsByLocationOnFn != nil {
		return m.CountAppointmentsByLocationOnFn(ctx, locationID, day)
	}
	return 0, nil
}
