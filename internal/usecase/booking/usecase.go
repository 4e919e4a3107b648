package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
	locDomain "idcard-backend/internal/domain/location"
	"idcard-backend/internal/domain/uow"
	"idcard-backend/pkg/id"
)

type Usecase struct {
	applications appDomain.Repository
	appointments apptDomain.Repository
	locations    locDomain.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(applications appDomain.Repository, appointments apptDomain.Repository, locations locDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{applications: applications, appointments: appointments, locations: locations, uow: tx}
}

// Book allocates one slot at a location for a paid application. The capacity
// check and both writes run in a single transaction holding the location row
// lock, so two bookings racing for the last slot serialize instead of
// over-booking.
func (u *Usecase) Book(ctx context.Context, in BookInput) (*BookingDTO, error) {
	if !apptDomain.ValidSlot(in.TimeSlot) {
		return nil, apptDomain.ErrInvalidSlot
	}

	var dto *BookingDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationIDForUpdate(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appDomain.ErrNotFound
			}
			return err
		}
		if a.PaymentStatus != appDomain.PaymentCompleted {
			return appDomain.ErrPaymentRequired
		}
		if a.AppointmentID != nil {
			return appDomain.ErrAlreadyBooked
		}

		loc, err := r.Locations.GetByIDForUpdate(ctx, in.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return locDomain.ErrNotFound
			}
			return err
		}
		if !loc.IsActive {
			return locDomain.ErrNotAvailable
		}
		if !loc.AvailableDays.Contains(in.Date.Weekday()) {
			return apptDomain.ErrInvalidDate
		}

		booked, err := r.Appointments.CountSlot(ctx, loc.ID, in.Date, in.TimeSlot)
		if err != nil {
			return err
		}
		if booked >= int64(loc.Capacity) {
			return apptDomain.ErrSlotFull
		}

		appt := &apptDomain.Appointment{
			AppointmentID: id.NewID32(),
			Date:          in.Date,
			TimeSlot:      in.TimeSlot,
			LocationID:    loc.ID,
			Status:        apptDomain.StatusScheduled,
		}
		if err := r.Appointments.Create(ctx, appt); err != nil {
			return err
		}

		a.AppointmentID = &appt.ID
		a.Status = appDomain.StatusAppointmentScheduled
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = &BookingDTO{
			AppointmentID:      appt.AppointmentID,
			ConfirmationNumber: id.ConfirmationCode(appt.AppointmentID),
			Date:               appt.Date,
			TimeSlot:           appt.TimeSlot,
			Status:             string(appt.Status),
			Location:           loc,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Availability computes the per-slot occupancy of a location for one day.
// A closed day yields an empty slot list with an explanatory message.
func (u *Usecase) Availability(ctx context.Context, locationID uint64, date time.Time) (*AvailabilityDTO, error) {
	loc, err := u.locations.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, locDomain.ErrNotFound
		}
		return nil, err
	}

	if !loc.AvailableDays.Contains(date.Weekday()) {
		return &AvailabilityDTO{
			Date:           date,
			Location:       loc,
			AvailableSlots: []apptDomain.SlotAvailability{},
			Message:        "Location is closed on this day",
		}, nil
	}

	bookedBySlot, err := u.appointments.CountByLocationAndDate(ctx, loc.ID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]apptDomain.SlotAvailability, 0, len(apptDomain.TimeSlots))
	for _, slot := range apptDomain.TimeSlots {
		booked := bookedBySlot[slot]
		slots = append(slots, apptDomain.SlotAvailability{
			Time:      slot,
			Available: booked < loc.Capacity,
			Capacity:  loc.Capacity,
			Booked:    booked,
		})
	}

	return &AvailabilityDTO{Date: date, Location: loc, AvailableSlots: slots}, nil
}

// FindByConfirmation resolves a confirmation code to the appointment and its
// linked applications. No authentication required; the code itself is the
// credential.
func (u *Usecase) FindByConfirmation(ctx context.Context, code string) (*ConfirmationDTO, error) {
	suffix := id.ConfirmationSuffix(code)
	if suffix == "" {
		return nil, apptDomain.ErrNotFound
	}

	appt, err := u.appointments.GetByIDSuffix(ctx, suffix)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apptDomain.ErrNotFound
		}
		return nil, err
	}

	loc, err := u.locations.GetByID(ctx, appt.LocationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	apps, err := u.applications.ListByAppointment(ctx, appt.ID)
	if err != nil {
		return nil, err
	}
	linked := make([]LinkedApplication, 0, len(apps))
	for _, a := range apps {
		linked = append(linked, LinkedApplication{
			ApplicationID: a.ApplicationID,
			FirstName:     a.FirstName,
			LastName:      a.LastName,
			Email:         a.Email,
			PhoneNumber:   a.PhoneNumber,
			Status:        string(a.Status),
		})
	}

	return &ConfirmationDTO{
		ConfirmationNumber: id.ConfirmationCode(appt.AppointmentID),
		Date:               appt.Date,
		TimeSlot:           appt.TimeSlot,
		Status:             string(appt.Status),
		Location:           loc,
		Applications:       linked,
	}, nil
}

// List returns appointments for the admin dashboard, optionally filtered.
func (u *Usecase) List(ctx context.Context, f apptDomain.ListFilter) ([]apptDomain.Appointment, error) {
	return u.appointments.List(ctx, f)
}
