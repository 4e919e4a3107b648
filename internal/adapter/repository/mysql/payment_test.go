package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	payDomain "idcard-backend/internal/domain/payment"
)

func TestPayment_CreateAndGetByTransactionID(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	paidAt := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)
	p := &payDomain.Payment{
		TransactionID: "TXN-A1B2C3D4",
		ApplicationID: 12,
		Amount:        10000,
		Currency:      "FCFA",
		Method:        payDomain.MethodCard,
		Status:        payDomain.StatusCompleted,
		ProviderRef:   "ref-001",
		PaidAt:        &paidAt,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByTransactionID(ctx, "TXN-A1B2C3D4")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != payDomain.StatusCompleted || got.Amount != 10000 {
		t.Fatalf("unexpected payment: %+v", got)
	}
	if got.PaidAt == nil || !got.PaidAt.Equal(paidAt) {
		t.Fatalf("paid_at did not survive round-trip: %v", got.PaidAt)
	}
}

func TestPayment_GetByTransactionID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)

	_, err := repo.GetByTransactionID(context.Background(), "TXN-MISSING")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}

func TestPayment_ListByApplication(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	seed := []*payDomain.Payment{
		{TransactionID: "TXN-1", ApplicationID: 3, Amount: 10000, Method: payDomain.MethodCard, Status: payDomain.StatusFailed},
		{TransactionID: "TXN-2", ApplicationID: 3, Amount: 10000, Method: payDomain.MethodMobileMoney, Status: payDomain.StatusCompleted},
		{TransactionID: "TXN-3", ApplicationID: 4, Amount: 5000, Method: payDomain.MethodCard, Status: payDomain.StatusCompleted},
	}
	for _, p := range seed {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := repo.ListByApplication(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 payments for application 3, got %d", len(got))
	}
}
