package mysql

import (
	"context"

	"gorm.io/gorm"

	docDomain "idcard-backend/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByDocumentID(ctx context.Context, documentID string) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]docDomain.Document, error) {
	var out []docDomain.Document
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *DocumentRepository) TypesByApplication(ctx context.Context, applicationID uint64) ([]docDomain.Type, error) {
	var out []docDomain.Type
	err := r.db.WithContext(ctx).Model(&docDomain.Document{}).
		Where("application_id = ?", applicationID).
		Distinct().
		Pluck("type", &out).Error
	return out, err
}

func (r *DocumentRepository) Delete(ctx context.Context, documentID string) error {
	return r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Delete(&docDomain.Document{}).Error
}
