package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
	ListByApplication(ctx context.Context, applicationID uint64) ([]Payment, error)
}
