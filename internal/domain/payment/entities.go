package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Method string

const (
	MethodCard         Method = "CARD"
	MethodMobileMoney  Method = "MOBILE_MONEY"
	MethodBankTransfer Method = "BANK_TRANSFER"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusProcessing Status = "PROCESSING"
)

var (
	ErrNotFound       = errors.New("payment not found")
	ErrAmountMismatch = errors.New("payment amount does not match application fee")
	ErrInvalidMethod  = errors.New("unsupported payment method")
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodCard, MethodMobileMoney, MethodBankTransfer:
		return true
	}
	return false
}

type Payment struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string     `gorm:"size:64;uniqueIndex:ux_payments_txn_id" json:"transaction_id"`
	ApplicationID uint64     `gorm:"not null;index:idx_payments_application" json:"-"`
	Amount        float64    `gorm:"type:decimal(18,2)" json:"amount"`
	Currency      string     `gorm:"size:8" json:"currency"`
	Method        Method     `gorm:"type:enum('CARD','MOBILE_MONEY','BANK_TRANSFER')" json:"method"`
	Status        Status     `gorm:"type:enum('PENDING','COMPLETED','FAILED','PROCESSING');default:'PENDING'" json:"status"`
	ProviderRef   string     `gorm:"size:64" json:"provider_ref,omitempty"`
	ProviderMsg   string     `gorm:"size:255" json:"-"`
	Description   string     `gorm:"size:255" json:"description,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
