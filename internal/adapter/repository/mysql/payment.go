package mysql

import (
	"context"

	"gorm.io/gorm"

	payDomain "idcard-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payDomain.Payment, error) {
	var out payDomain.Payment
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]payDomain.Payment, error) {
	var out []payDomain.Payment
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
