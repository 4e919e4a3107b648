package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"idcard-backend/internal/domain/reporting"
	"idcard-backend/internal/testutil/reportingmock"
)

func TestDashboard(t *testing.T) {
	reports := &reportingmock.Repo{
		CountApplicationsFn: func(ctx context.Context) (int64, error) { return 40, nil },
		CountApplicationsByStatusesFn: func(ctx context.Context, statuses []string) (int64, error) {
			if len(statuses) != 2 {
				t.Fatalf("pending bucket statuses=%v", statuses)
			}
			return 12, nil
		},
		CountApplicationsPaymentCompletedFn: func(ctx context.Context) (int64, error) { return 25, nil },
		SumCompletedPaymentsFn:              func(ctx context.Context) (float64, error) { return 250000, nil },
		CountTodayAppointmentsFn: func(ctx context.Context, day time.Time) (int64, error) {
			if day.Hour() != 0 || day.Minute() != 0 {
				t.Fatalf("day not truncated: %v", day)
			}
			return 7, nil
		},
	}
	uc := NewUsecase(reports)

	dto, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	if dto.Totals.Applications != 40 || dto.Totals.PendingReview != 12 {
		t.Fatalf("totals=%+v", dto.Totals)
	}
	if dto.Totals.Revenue != 250000 || dto.Totals.TodayAppointments != 7 {
		t.Fatalf("totals=%+v", dto.Totals)
	}
}

func TestSummary_Periods(t *testing.T) {
	var gotRange reporting.Range
	reports := &reportingmock.Repo{
		GroupApplicationsByStatusAndTypeFn: func(ctx context.Context, r reporting.Range) ([]reporting.StatusTypeCount, error) {
			gotRange = r
			return nil, nil
		},
	}
	uc := NewUsecase(reports)
	now := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	cases := []struct {
		period string
		from   time.Time
	}{
		{"day", now.AddDate(0, 0, -1)},
		{"week", now.AddDate(0, 0, -7)},
		{"month", now.AddDate(0, -1, 0)},
		{"year", now.AddDate(-1, 0, 0)},
	}
	for _, tc := range cases {
		dto, err := uc.Summary(context.Background(), tc.period)
		if err != nil {
			t.Fatalf("Summary(%s) err: %v", tc.period, err)
		}
		if !dto.From.Equal(tc.from) || !dto.To.Equal(now) {
			t.Fatalf("%s window: %v..%v", tc.period, dto.From, dto.To)
		}
		if gotRange.From == nil || !gotRange.From.Equal(tc.from) {
			t.Fatalf("%s range not forwarded", tc.period)
		}
	}
}

func TestSummary_RejectsUnknownPeriod(t *testing.T) {
	uc := NewUsecase(&reportingmock.Repo{})
	if _, err := uc.Summary(context.Background(), "quarter"); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("want ErrInvalidPeriod, got %v", err)
	}
}
