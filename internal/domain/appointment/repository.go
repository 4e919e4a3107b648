package appointment

import (
	"context"
	"time"
)

type ListFilter struct {
	Date       *time.Time
	LocationID uint64
	Status     Status
}

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Save(ctx context.Context, a *Appointment) error
	GetByAppointmentID(ctx context.Context, appointmentID string) (*Appointment, error)
	GetByID(ctx context.Context, id uint64) (*Appointment, error)
	GetByIDSuffix(ctx context.Context, suffix string) (*Appointment, error)
	// CountSlot counts capacity-occupying (SCHEDULED/CONFIRMED) appointments
	// for one (location, date, slot) cell.
	CountSlot(ctx context.Context, locationID uint64, date time.Time, slot string) (int64, error)
	// CountByLocationAndDate returns per-slot occupancy for a whole day.
	CountByLocationAndDate(ctx context.Context, locationID uint64, date time.Time) (map[string]int, error)
	// CountFuture counts capacity-occupying appointments on or after the
	// given day, used by the location deactivation guard.
	CountFuture(ctx context.Context, locationID uint64, from time.Time) (int64, error)
	List(ctx context.Context, f ListFilter) ([]Appointment, error)
}
