package uow

import (
	"context"

	"idcard-backend/internal/domain/application"
	"idcard-backend/internal/domain/appointment"
	"idcard-backend/internal/domain/document"
	"idcard-backend/internal/domain/location"
	"idcard-backend/internal/domain/payment"
)

type Repos struct {
	Applications application.Repository
	Appointments appointment.Repository
	Locations    location.Repository
	Documents    document.Repository
	Payments     payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
