package paymentmock

import (
	"context"

	domain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/infrastructure/payprovider"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, p *domain.Payment) error
	GetByTransactionIDFn func(ctx context.Context, transactionID string) (*domain.Payment, error)
	ListByApplicationFn  func(ctx context.Context, applicationID uint64) ([]domain.Payment, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Payment, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

var _ payprovider.Provider = (*Provider)(nil)

// Provider is a function-backed mock for the payment provider boundary.
type Provider struct {
	ChargeFn func(ctx context.Context, method domain.Method, details payprovider.Details, amount float64) (*payprovider.Result, error)
}

func (m *Provider) Charge(ctx context.Context, method domain.Method, details payprovider.Details, amount float64) (*payprovider.Result, error) {
	if m.ChargeFn != nil {
		return m.ChargeFn(ctx, method, details, amount)
	}
	return &payprovider.Result{Status: domain.StatusCompleted, ProviderRef: "ref-test", Message: "ok"}, nil
}
