package review

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
	"idcard-backend/internal/domain/uow"
)

type Usecase struct {
	applications appDomain.Repository
	appointments apptDomain.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(applications appDomain.Repository, appointments apptDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{applications: applications, appointments: appointments, uow: tx}
}

// UpdateStatus applies an explicit admin transition, recording reviewer
// identity and time. REJECTED requires a reason.
func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*appDomain.Application, error) {
	if !appDomain.ValidStatus(in.Status) {
		return nil, appDomain.ErrInvalidStatus
	}
	if in.Status == appDomain.StatusRejected && in.RejectionReason == "" {
		return nil, appDomain.ErrRejectReasonNeeded
	}

	var out *appDomain.Application
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *appDomain.Application) error {
		now := time.Now().UTC()
		a.Status = in.Status
		a.ReviewedBy = in.ReviewerID
		a.ReviewedAt = &now
		if in.Status == appDomain.StatusRejected {
			a.RejectionReason = in.RejectionReason
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// BulkApprove transitions every listed application still in PENDING_REVIEW or
// DOCUMENT_REVIEW to APPROVED. Ids outside that filter (or unknown) are
// silently skipped; the count reflects rows actually changed.
func (u *Usecase) BulkApprove(ctx context.Context, in BulkApproveInput) (*BulkApproveDTO, error) {
	if len(in.ApplicationIDs) == 0 {
		return &BulkApproveDTO{ApprovedCount: 0}, nil
	}
	n, err := u.applications.BulkApprove(ctx, in.ApplicationIDs, in.ReviewerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &BulkApproveDTO{ApprovedCount: n}, nil
}

// UpdateAppointmentStatus advances an appointment; marking it COMPLETED
// cascades every linked application to BIOMETRIC_COMPLETED in the same
// transaction.
func (u *Usecase) UpdateAppointmentStatus(ctx context.Context, in UpdateAppointmentInput) (*AppointmentStatusDTO, error) {
	if !apptDomain.ValidStatus(in.Status) {
		return nil, apptDomain.ErrInvalidStatus
	}

	var dto *AppointmentStatusDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		appt, err := r.Appointments.GetByAppointmentID(ctx, in.AppointmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apptDomain.ErrNotFound
			}
			return err
		}

		appt.Status = in.Status
		if err := r.Appointments.Save(ctx, appt); err != nil {
			return err
		}

		dto = &AppointmentStatusDTO{
			AppointmentID: appt.AppointmentID,
			Status:        string(appt.Status),
		}

		if in.Status == apptDomain.StatusCompleted {
			n, err := r.Applications.SetStatusByAppointment(ctx, appt.ID, appDomain.StatusBiometricCompleted)
			if err != nil {
				return err
			}
			dto.CascadedApplications = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
