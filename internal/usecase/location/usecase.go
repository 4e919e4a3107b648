package location

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apptDomain "idcard-backend/internal/domain/appointment"
	locDomain "idcard-backend/internal/domain/location"
	"idcard-backend/internal/domain/reporting"
)

const defaultCapacity = 20

type Usecase struct {
	locations    locDomain.Repository
	appointments apptDomain.Repository
	reports      reporting.Repository
	now          func() time.Time
}

func NewUsecase(locations locDomain.Repository, appointments apptDomain.Repository, reports reporting.Repository) *Usecase {
	return &Usecase{locations: locations, appointments: appointments, reports: reports, now: time.Now}
}

// ListActive returns the enrollment centers open for booking.
func (u *Usecase) ListActive(ctx context.Context) ([]locDomain.Location, error) {
	locs, err := u.locations.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if locs == nil {
		locs = []locDomain.Location{}
	}
	return locs, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*locDomain.Location, error) {
	l, err := u.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, locDomain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*locDomain.Location, error) {
	if in.Capacity == 0 {
		in.Capacity = defaultCapacity
	}
	if in.Capacity < 1 {
		return nil, locDomain.ErrInvalidCapacity
	}
	if len(in.AvailableDays) == 0 {
		return nil, locDomain.ErrNoAvailableDays
	}
	if !in.AvailableDays.Valid() {
		return nil, locDomain.ErrInvalidAvailableDay
	}

	l := &locDomain.Location{
		Name:          in.Name,
		Address:       in.Address,
		District:      in.District,
		WorkingHours:  in.WorkingHours,
		AvailableDays: in.AvailableDays,
		Capacity:      in.Capacity,
		IsActive:      true,
	}
	if err := u.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*locDomain.Location, error) {
	l, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.District != nil {
		l.District = *in.District
	}
	if in.WorkingHours != nil {
		l.WorkingHours = *in.WorkingHours
	}
	if in.AvailableDays != nil {
		if !in.AvailableDays.Valid() {
			if len(*in.AvailableDays) == 0 {
				return nil, locDomain.ErrNoAvailableDays
			}
			return nil, locDomain.ErrInvalidAvailableDay
		}
		l.AvailableDays = *in.AvailableDays
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, locDomain.ErrInvalidCapacity
		}
		l.Capacity = *in.Capacity
	}
	if in.IsActive != nil {
		if !*in.IsActive {
			if err := u.deactivationGuard(ctx, l.ID); err != nil {
				return nil, err
			}
		}
		l.IsActive = *in.IsActive
	}

	if err := u.locations.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Deactivate takes a center out of booking. Refused while any future
// SCHEDULED or CONFIRMED appointment still points at it.
func (u *Usecase) Deactivate(ctx context.Context, id uint64) (*locDomain.Location, error) {
	l, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.deactivationGuard(ctx, l.ID); err != nil {
		return nil, err
	}
	l.IsActive = false
	if err := u.locations.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) deactivationGuard(ctx context.Context, locationID uint64) error {
	today := dayStart(u.now())
	n, err := u.appointments.CountFuture(ctx, locationID, today)
	if err != nil {
		return err
	}
	if n > 0 {
		return locDomain.ErrHasAppointments
	}
	return nil
}

// Stats returns appointment volume counters for one center.
func (u *Usecase) Stats(ctx context.Context, id uint64) (*StatsDTO, error) {
	l, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	today := dayStart(u.now())
	total, err := u.reports.CountAppointmentsByLocation(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	upcoming, err := u.reports.CountAppointmentsByLocationSince(ctx, l.ID, today)
	if err != nil {
		return nil, err
	}
	todayCount, err := u.reports.CountAppointmentsByLocationOn(ctx, l.ID, today)
	if err != nil {
		return nil, err
	}

	return &StatsDTO{
		LocationID:        l.ID,
		Name:              l.Name,
		TotalAppointments: total,
		Upcoming:          upcoming,
		Today:             todayCount,
		Capacity:          l.Capacity,
		IsActive:          l.IsActive,
	}, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
