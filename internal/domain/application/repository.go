package application

import (
	"context"
	"time"
)

type ListFilter struct {
	Status Status
	IDType IDType
	Page   int
	Limit  int
}

type SearchFilter struct {
	Query string
	Page  int
	Limit int
}

type ExportFilter struct {
	Status   Status
	IDType   IDType
	DateFrom *time.Time
	DateTo   *time.Time
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row inside the surrounding tx.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, int64, error)
	Search(ctx context.Context, f SearchFilter) ([]Application, error)
	Export(ctx context.Context, f ExportFilter) ([]Application, error)
	// BulkApprove transitions every listed application currently in
	// PENDING_REVIEW or DOCUMENT_REVIEW to APPROVED and returns the number
	// of rows actually changed. Ids outside the filter are skipped.
	BulkApprove(ctx context.Context, applicationIDs []string, reviewerID string, reviewedAt time.Time) (int64, error)
	// SetStatusByAppointment moves every application linked to the given
	// appointment row to the target status.
	SetStatusByAppointment(ctx context.Context, appointmentID uint64, status Status) (int64, error)
	ListByAppointment(ctx context.Context, appointmentID uint64) ([]Application, error)
}
