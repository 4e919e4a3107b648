package reporting

import (
	"context"
	"time"
)

// Read-side aggregates for the admin dashboard and summary reports.
// Everything here is recomputed per request; nothing is cached.

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type StatusTypeCount struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Count  int64  `json:"count"`
}

type PaymentGroup struct {
	Status      string  `json:"status"`
	Method      string  `json:"method,omitempty"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type LocationVolume struct {
	LocationID   uint64 `json:"location_id"`
	LocationName string `json:"location_name"`
	Count        int64  `json:"count"`
}

type Range struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	CountApplications(ctx context.Context) (int64, error)
	CountApplicationsByStatuses(ctx context.Context, statuses []string) (int64, error)
	CountApplicationsPaymentCompleted(ctx context.Context) (int64, error)
	SumCompletedPayments(ctx context.Context) (float64, error)
	CountTodayAppointments(ctx context.Context, day time.Time) (int64, error)
	GroupApplicationsByStatus(ctx context.Context) ([]StatusCount, error)
	GroupApplicationsByType(ctx context.Context) ([]TypeCount, error)
	GroupApplicationsByStatusAndType(ctx context.Context, r Range) ([]StatusTypeCount, error)
	GroupPaymentsByStatus(ctx context.Context) ([]PaymentGroup, error)
	GroupPaymentsByStatusAndMethod(ctx context.Context, r Range) ([]PaymentGroup, error)
	GroupAppointmentsByStatus(ctx context.Context, r Range) ([]StatusCount, error)
	TopLocationsByVolume(ctx context.Context, r Range, limit int) ([]LocationVolume, error)
	RecentApplications(ctx context.Context, limit int) ([]RecentApplication, error)

	// Per-location counters for the registry stats endpoint.
	CountAppointmentsByLocation(ctx context.Context, locationID uint64) (int64, error)
	CountAppointmentsByLocationSince(ctx context.Context, locationID uint64, from time.Time) (int64, error)
	CountAppointmentsByLocationOn(ctx context.Context, locationID uint64, day time.Time) (int64, error)
}

type RecentApplication struct {
	ApplicationID string    `json:"application_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	IDType        string    `json:"id_type"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentAmount float64   `json:"payment_amount"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phone_number"`
	CreatedAt     time.Time `json:"created_at"`
}
