package reporting

import (
	"time"

	"idcard-backend/internal/domain/reporting"
)

type DashboardDTO struct {
	Totals       DashboardTotals               `json:"totals"`
	ByStatus     []reporting.StatusCount       `json:"by_status"`
	ByType       []reporting.TypeCount         `json:"by_type"`
	Payments     []reporting.PaymentGroup      `json:"payments"`
	Recent       []reporting.RecentApplication `json:"recent_applications"`
}

type DashboardTotals struct {
	Applications      int64   `json:"applications"`
	PendingReview     int64   `json:"pending_review"`
	PaymentsCompleted int64   `json:"payments_completed"`
	Revenue           float64 `json:"revenue"`
	TodayAppointments int64   `json:"today_appointments"`
}

type SummaryDTO struct {
	Period       string                       `json:"period"`
	From         time.Time                    `json:"from"`
	To           time.Time                    `json:"to"`
	Applications []reporting.StatusTypeCount  `json:"applications"`
	Payments     []reporting.PaymentGroup     `json:"payments"`
	Appointments []reporting.StatusCount      `json:"appointments"`
	TopLocations []reporting.LocationVolume   `json:"top_locations"`
}
