package payment

import (
	"time"

	payDomain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/infrastructure/payprovider"
)

type ProcessInput struct {
	ApplicationID string
	Amount        float64
	Method        payDomain.Method
	Details       payprovider.Details
}

type ReceiptDTO struct {
	TransactionID   string  `json:"transaction_id"`
	Status          string  `json:"status"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method"`
	ProviderMessage string  `json:"provider_message"`
}

type VerifyDTO struct {
	TransactionID string              `json:"transaction_id"`
	Status        string              `json:"status"`
	Amount        float64             `json:"amount"`
	Method        string              `json:"method"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	Application   ApplicationSnapshot `json:"application"`
}

type ApplicationSnapshot struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// MethodInfo is the static payment-method catalog served to the frontend.
type MethodInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ProcessingTime string `json:"processing_time"`
	Fees           string `json:"fees"`
	Enabled        bool   `json:"enabled"`
}

func Methods() []MethodInfo {
	return []MethodInfo{
		{
			ID:             string(payDomain.MethodCard),
			Name:           "Credit/Debit Card",
			Description:    "Pay with Visa, Mastercard, or other major cards",
			ProcessingTime: "Instant",
			Fees:           "No additional fees",
			Enabled:        true,
		},
		{
			ID:             string(payDomain.MethodMobileMoney),
			Name:           "Mobile Money",
			Description:    "Pay from a registered mobile money account",
			ProcessingTime: "1-5 minutes",
			Fees:           "1.5% transaction fee",
			Enabled:        true,
		},
		{
			ID:             string(payDomain.MethodBankTransfer),
			Name:           "Bank Transfer",
			Description:    "Direct transfer from your bank account",
			ProcessingTime: "24-48 hours",
			Fees:           "No additional fees",
			Enabled:        true,
		},
	}
}
