package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	locDomain "idcard-backend/internal/domain/location"
)

type LocationRepository struct{ db *gorm.DB }

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *locDomain.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) Save(ctx context.Context, l *locDomain.Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id uint64) (*locDomain.Location, error) {
	var out locDomain.Location
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LocationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*locDomain.Location, error) {
	var out locDomain.Location
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LocationRepository) ListActive(ctx context.Context) ([]locDomain.Location, error) {
	var out []locDomain.Location
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}
