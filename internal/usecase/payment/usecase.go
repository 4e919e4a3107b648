package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appDomain "idcard-backend/internal/domain/application"
	payDomain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/domain/uow"
	"idcard-backend/internal/infrastructure/payprovider"
)

type Usecase struct {
	payments     payDomain.Repository
	applications appDomain.Repository
	provider     payprovider.Provider
	uow          uow.UnitOfWork
}

func NewUsecase(payments payDomain.Repository, applications appDomain.Repository, provider payprovider.Provider, tx uow.UnitOfWork) *Usecase {
	return &Usecase{payments: payments, applications: applications, provider: provider, uow: tx}
}

// Process charges the fee for an application. The amount must match the fee
// fixed at intake; nothing is written when it does not. A completed charge
// moves the application to PAYMENT_COMPLETED, anything else to
// PAYMENT_PENDING.
func (u *Usecase) Process(ctx context.Context, in ProcessInput) (*ReceiptDTO, error) {
	if !payDomain.ValidMethod(in.Method) {
		return nil, payDomain.ErrInvalidMethod
	}

	var dto *ReceiptDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *appDomain.Application) error {
		if in.Amount != a.PaymentAmount {
			return payDomain.ErrAmountMismatch
		}

		res, err := u.provider.Charge(ctx, in.Method, in.Details, in.Amount)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		txnID := newTransactionID()

		p := &payDomain.Payment{
			TransactionID: txnID,
			ApplicationID: a.ID,
			Amount:        in.Amount,
			Currency:      appDomain.Currency,
			Method:        in.Method,
			Status:        res.Status,
			ProviderRef:   res.ProviderRef,
			ProviderMsg:   res.Message,
			Description:   fmt.Sprintf("Payment for %s ID card application", a.IDType),
		}
		if res.Status == payDomain.StatusCompleted {
			p.PaidAt = &now
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		a.PaymentStatus = appDomain.PaymentStatus(res.Status)
		a.PaymentMethod = string(in.Method)
		a.PaymentReference = txnID
		if res.Status == payDomain.StatusCompleted {
			a.PaidAt = &now
			a.Status = appDomain.StatusPaymentCompleted
		} else {
			a.Status = appDomain.StatusPaymentPending
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = &ReceiptDTO{
			TransactionID:   txnID,
			Status:          string(res.Status),
			Amount:          in.Amount,
			Method:          string(in.Method),
			ProviderMessage: res.Message,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Verify returns the stored state of a transaction with a snapshot of its
// application.
func (u *Usecase) Verify(ctx context.Context, transactionID string) (*VerifyDTO, error) {
	p, err := u.payments.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payDomain.ErrNotFound
		}
		return nil, err
	}

	dto := &VerifyDTO{
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		Amount:        p.Amount,
		Method:        string(p.Method),
		PaidAt:        p.PaidAt,
	}

	a, err := u.applications.GetByID(ctx, p.ApplicationID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return dto, nil
	}
	dto.Application = ApplicationSnapshot{
		ApplicationID: a.ApplicationID,
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
	}
	return dto, nil
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
}
