package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDomain "idcard-backend/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.ListFilter) ([]appDomain.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.IDType != "" {
		q = q.Where("id_type = ?", f.IDType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var out []appDomain.Application
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

func (r *ApplicationRepository) Search(ctx context.Context, f appDomain.SearchFilter) ([]appDomain.Application, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	like := "%" + f.Query + "%"
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Where("application_id LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone_number LIKE ?",
			like, like, like, like, like).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) Export(ctx context.Context, f appDomain.ExportFilter) ([]appDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.IDType != "" {
		q = q.Where("id_type = ?", f.IDType)
	}
	if f.DateFrom != nil {
		q = q.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("created_at <= ?", *f.DateTo)
	}

	var out []appDomain.Application
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) BulkApprove(ctx context.Context, applicationIDs []string, reviewerID string, reviewedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("application_id IN ?", applicationIDs).
		Where("status IN ?", []appDomain.Status{appDomain.StatusPendingReview, appDomain.StatusDocumentReview}).
		Updates(map[string]interface{}{
			"status":      appDomain.StatusApproved,
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) ListByAppointment(ctx context.Context, appointmentID uint64) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) SetStatusByAppointment(ctx context.Context, appointmentID uint64, status appDomain.Status) (int64, error) {
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("appointment_id = ?", appointmentID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
