package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	apptDomain "idcard-backend/internal/domain/appointment"
)

type AppointmentRepository struct{ db *gorm.DB }

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *apptDomain.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AppointmentRepository) Save(ctx context.Context, a *apptDomain.Appointment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AppointmentRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*apptDomain.Appointment, error) {
	var out apptDomain.Appointment
	res := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&out)
	return &out, res.Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint64) (*apptDomain.Appointment, error) {
	var out apptDomain.Appointment
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *AppointmentRepository) GetByIDSuffix(ctx context.Context, suffix string) (*apptDomain.Appointment, error) {
	var out apptDomain.Appointment
	res := r.db.WithContext(ctx).
		Where("appointment_id LIKE ?", "%"+suffix).
		First(&out)
	return &out, res.Error
}

var countedStatuses = []apptDomain.Status{apptDomain.StatusScheduled, apptDomain.StatusConfirmed}

func (r *AppointmentRepository) CountSlot(ctx context.Context, locationID uint64, date time.Time, slot string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Where("location_id = ? AND date = ? AND time_slot = ?", locationID, dateOnly(date), slot).
		Where("status IN ?", countedStatuses).
		Count(&n).Error
	return n, err
}

func (r *AppointmentRepository) CountByLocationAndDate(ctx context.Context, locationID uint64, date time.Time) (map[string]int, error) {
	type row struct {
		TimeSlot string
		N        int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Select("time_slot, COUNT(*) AS n").
		Where("location_id = ? AND date = ?", locationID, dateOnly(date)).
		Where("status IN ?", countedStatuses).
		Group("time_slot").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.TimeSlot] = r.N
	}
	return out, nil
}

func (r *AppointmentRepository) CountFuture(ctx context.Context, locationID uint64, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&apptDomain.Appointment{}).
		Where("location_id = ? AND date >= ?", locationID, dateOnly(from)).
		Where("status IN ?", countedStatuses).
		Count(&n).Error
	return n, err
}

func (r *AppointmentRepository) List(ctx context.Context, f apptDomain.ListFilter) ([]apptDomain.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&apptDomain.Appointment{})
	if f.Date != nil {
		q = q.Where("date = ?", dateOnly(*f.Date))
	}
	if f.LocationID != 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var out []apptDomain.Appointment
	err := q.Order("date ASC, time_slot ASC").Find(&out).Error
	return out, err
}

// dateOnly truncates to the calendar day; appointment dates carry no
// time-of-day beyond the slot label.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
