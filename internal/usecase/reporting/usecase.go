package reporting

import (
	"context"
	"errors"
	"time"

	appDomain "idcard-backend/internal/domain/application"
	"idcard-backend/internal/domain/reporting"
)

var ErrInvalidPeriod = errors.New("period must be one of day, week, month, year")

const (
	recentLimit       = 10
	topLocationsLimit = 5
)

type Usecase struct {
	reports reporting.Repository
	now     func() time.Time
}

func NewUsecase(reports reporting.Repository) *Usecase {
	return &Usecase{reports: reports, now: time.Now}
}

// Dashboard assembles the admin landing-page counters in one call.
func (u *Usecase) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	total, err := u.reports.CountApplications(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.reports.CountApplicationsByStatuses(ctx, []string{
		string(appDomain.StatusPendingReview),
		string(appDomain.StatusDocumentReview),
	})
	if err != nil {
		return nil, err
	}
	paid, err := u.reports.CountApplicationsPaymentCompleted(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := u.reports.SumCompletedPayments(ctx)
	if err != nil {
		return nil, err
	}
	today, err := u.reports.CountTodayAppointments(ctx, dayStart(u.now()))
	if err != nil {
		return nil, err
	}
	byStatus, err := u.reports.GroupApplicationsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := u.reports.GroupApplicationsByType(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := u.reports.GroupPaymentsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.reports.RecentApplications(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardDTO{
		Totals: DashboardTotals{
			Applications:      total,
			PendingReview:     pending,
			PaymentsCompleted: paid,
			Revenue:           revenue,
			TodayAppointments: today,
		},
		ByStatus: byStatus,
		ByType:   byType,
		Payments: payments,
		Recent:   recent,
	}, nil
}

// Summary builds the periodic activity report. period selects the window
// ending now: day, week, month or year.
func (u *Usecase) Summary(ctx context.Context, period string) (*SummaryDTO, error) {
	to := u.now()
	var from time.Time
	switch period {
	case "day":
		from = to.AddDate(0, 0, -1)
	case "week":
		from = to.AddDate(0, 0, -7)
	case "month":
		from = to.AddDate(0, -1, 0)
	case "year":
		from = to.AddDate(-1, 0, 0)
	default:
		return nil, ErrInvalidPeriod
	}
	r := reporting.Range{From: &from, To: &to}

	apps, err := u.reports.GroupApplicationsByStatusAndType(ctx, r)
	if err != nil {
		return nil, err
	}
	payments, err := u.reports.GroupPaymentsByStatusAndMethod(ctx, r)
	if err != nil {
		return nil, err
	}
	appts, err := u.reports.GroupAppointmentsByStatus(ctx, r)
	if err != nil {
		return nil, err
	}
	top, err := u.reports.TopLocationsByVolume(ctx, r, topLocationsLimit)
	if err != nil {
		return nil, err
	}

	return &SummaryDTO{
		Period:       period,
		From:         from,
		To:           to,
		Applications: apps,
		Payments:     payments,
		Appointments: appts,
		TopLocations: top,
	}, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
