package application

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
	docDomain "idcard-backend/internal/domain/document"
	locDomain "idcard-backend/internal/domain/location"
	"idcard-backend/pkg/id"
)

type Usecase struct {
	applications appDomain.Repository
	documents    docDomain.Repository
	appointments apptDomain.Repository
	locations    locDomain.Repository
}

func NewUsecase(applications appDomain.Repository, documents docDomain.Repository, appointments apptDomain.Repository, locations locDomain.Repository) *Usecase {
	return &Usecase{applications: applications, documents: documents, appointments: appointments, locations: locations}
}

// Create registers a new application at public intake. The fee is fixed here
// from the id-type table and never recomputed.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*appDomain.Application, error) {
	if !appDomain.ValidIDType(in.IDType) {
		return nil, appDomain.ErrInvalidIDType
	}

	a := &appDomain.Application{
		ApplicationID:    id.NewApplicationID(),
		IDType:           in.IDType,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		DateOfBirth:      in.DateOfBirth,
		PlaceOfBirth:     in.PlaceOfBirth,
		Nationality:      in.Nationality,
		Gender:           in.Gender,
		MaritalStatus:    in.MaritalStatus,
		Profession:       in.Profession,
		Address:          in.Address,
		PhoneNumber:      in.PhoneNumber,
		Email:            in.Email,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
		FatherName:       in.FatherName,
		FatherProfession: in.FatherProfession,
		MotherName:       in.MotherName,
		MotherProfession: in.MotherProfession,
		PreviousIDNumber: in.PreviousIDNumber,
		ExpiryDate:       in.ExpiryDate,
		PaymentAmount:    appDomain.Fees[in.IDType],
		PaymentStatus:    appDomain.PaymentPending,
		Status:           appDomain.StatusPendingReview,
		SubmittedAt:      time.Now().UTC(),
	}

	if err := u.applications.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns an application with its documents and appointment, if any.
func (u *Usecase) Get(ctx context.Context, applicationID string) (*DetailDTO, error) {
	a, err := u.applications.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}

	docs, err := u.documents.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []docDomain.Document{}
	}

	dto := &DetailDTO{Application: a, Documents: docs}

	if a.AppointmentID != nil {
		appt, err := u.appointments.GetByID(ctx, *a.AppointmentID)
		if err == nil {
			view := &AppointmentView{
				AppointmentID: appt.AppointmentID,
				Date:          appt.Date,
				TimeSlot:      appt.TimeSlot,
				Status:        string(appt.Status),
			}
			if loc, lerr := u.locations.GetByID(ctx, appt.LocationID); lerr == nil {
				view.Location = loc
			}
			dto.Appointment = view
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return dto, nil
}

func (u *Usecase) List(ctx context.Context, f appDomain.ListFilter) (*ListDTO, error) {
	apps, total, err := u.applications.List(ctx, f)
	if err != nil {
		return nil, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &ListDTO{
		Applications: apps,
		Pagination:   Pagination{Page: page, Limit: limit, Total: total, Pages: pages},
	}, nil
}

func (u *Usecase) Search(ctx context.Context, f appDomain.SearchFilter) ([]appDomain.Application, error) {
	return u.applications.Search(ctx, f)
}

func (u *Usecase) Export(ctx context.Context, f appDomain.ExportFilter) ([]appDomain.Application, error) {
	return u.applications.Export(ctx, f)
}
