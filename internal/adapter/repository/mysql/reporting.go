package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
	payDomain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/domain/reporting"
)

type ReportingRepository struct{ db *gorm.DB }

func NewReportingRepository(db *gorm.DB) *ReportingRepository {
	return &ReportingRepository{db: db}
}

func (r *ReportingRepository) CountApplications(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).Count(&n).Error
	return n, err
}

func (r *ReportingRepository) CountApplicationsByStatuses(ctx context.Context, statuses []string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("status IN ?", statuses).
		Count(&n).Error
	return n, err
}

func (r *ReportingRepository) CountApplicationsPaymentCompleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("payment_status = ?", appDomain.PaymentCompleted).
		Count(&n).Error
	return n, err
}

func (r *ReportingRepository) SumCompletedPayments(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("payment_status = ?", appDomain.PaymentCompleted).
		Select("SUM(payment_amount)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *ReportingRepository) CountTodayAppointments(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Where("date = ?", dateOnly(day)).
		Where("status IN ?", countedStatuses).
		Count(&n).Error
	return n, err
}

func (r *ReportingRepository) GroupApplicationsByStatus(ctx context.Context) ([]reporting.StatusCount, error) {
	var out []reporting.StatusCount
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) GroupApplicationsByType(ctx context.Context) ([]reporting.TypeCount, error) {
	var out []reporting.TypeCount
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Select("id_type AS type, COUNT(*) AS count").
		Group("id_type").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func rangeScope(r reporting.Range) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if r.From != nil {
			q = q.Where("created_at >= ?", *r.From)
		}
		if r.To != nil {
			q = q.Where("created_at <= ?", *r.To)
		}
		return q
	}
}

func (r *ReportingRepository) GroupApplicationsByStatusAndType(ctx context.Context, rng reporting.Range) ([]reporting.StatusTypeCount, error) {
	var out []reporting.StatusTypeCount
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Scopes(rangeScope(rng)).
		Select("status, id_type AS type, COUNT(*) AS count").
		Group("status, id_type").
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) GroupPaymentsByStatus(ctx context.Context) ([]reporting.PaymentGroup, error) {
	var out []reporting.PaymentGroup
	err := r.db.WithContext(ctx).Model(&payDomain.Payment{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("status").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) GroupPaymentsByStatusAndMethod(ctx context.Context, rng reporting.Range) ([]reporting.PaymentGroup, error) {
	var out []reporting.PaymentGroup
	err := r.db.WithContext(ctx).Model(&payDomain.Payment{}).
		Scopes(rangeScope(rng)).
		Select("status, method, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Group("status, method").
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) GroupAppointmentsByStatus(ctx context.Context, rng reporting.Range) ([]reporting.StatusCount, error) {
	var out []reporting.StatusCount
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Scopes(rangeScope(rng)).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) TopLocationsByVolume(ctx context.Context, rng reporting.Range, limit int) ([]reporting.LocationVolume, error) {
	if limit < 1 {
		limit = 5
	}
	var out []reporting.LocationVolume
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Scopes(rangeScope(rng)).
		Select("appointments.location_id, locations.name AS location_name, COUNT(*) AS count").
		Joins("JOIN locations ON locations.id = appointments.location_id").
		Group("appointments.location_id, locations.name").
		Order("count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) RecentApplications(ctx context.Context, limit int) ([]reporting.RecentApplication, error) {
	if limit < 1 {
		limit = 10
	}
	var out []reporting.RecentApplication
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Select("application_id, first_name, last_name, id_type, status, payment_status, payment_amount, email, phone_number, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *ReportingRepository) CountAppointmentsByLocation(ctx context.Context, locationID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Where("location_id = ?", locationID).
		Count(&n).Error
	return n, err
}

func (r *ReportingRepository) CountAppointmentsByLocationSince(ctx context.Context, locationID uint64, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Where("location_id = ? AND date >= ?", locationID, dateOnly(from)).
		Count(&n).Error
	return n, err
}

func (r *ReportingRepository) CountAppointmentsByLocationOn(ctx context.Context, locationID uint64, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Where("location_id = ? AND date = ?", locationID, dateOnly(day)).
		Count(&n).Error
	return n, err
}
