// Package payprovider simulates the payment providers behind the portal.
// It is a stand-in, not a gateway integration: card and mobile-money charges
// succeed with a fixed probability, bank transfers always come back
// PROCESSING until reconciled out of band.
package payprovider

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	payDomain "idcard-backend/internal/domain/payment"
)

type Details map[string]string

type Result struct {
	Status      payDomain.Status
	ProviderRef string
	Message     string
}

type Provider interface {
	Charge(ctx context.Context, method payDomain.Method, details Details, amount float64) (*Result, error)
}

const (
	cardSuccessRate        = 0.95
	mobileMoneySuccessRate = 0.90
)

// Simulator implements Provider with a seedable random source so tests can
// pin outcomes.
type Simulator struct {
	rng *rand.Rand
}

func NewSimulator(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulator) Charge(ctx context.Context, method payDomain.Method, details Details, amount float64) (*Result, error) {
	switch method {
	case payDomain.MethodCard:
		return s.card(details), nil
	case payDomain.MethodMobileMoney:
		return s.mobileMoney(details), nil
	case payDomain.MethodBankTransfer:
		return s.bankTransfer(details), nil
	default:
		return nil, payDomain.ErrInvalidMethod
	}
}

func (s *Simulator) card(details Details) *Result {
	if s.rng.Float64() < cardSuccessRate {
		return &Result{
			Status:      payDomain.StatusCompleted,
			ProviderRef: ref("CARD"),
			Message:     "Payment processed successfully",
		}
	}
	return &Result{
		Status:      payDomain.StatusFailed,
		ProviderRef: ref("CARD"),
		Message:     "Card payment declined",
	}
}

func (s *Simulator) mobileMoney(details Details) *Result {
	if s.rng.Float64() < mobileMoneySuccessRate {
		return &Result{
			Status:      payDomain.StatusCompleted,
			ProviderRef: ref("MM"),
			Message:     "Mobile money payment successful",
		}
	}
	return &Result{
		Status:      payDomain.StatusFailed,
		ProviderRef: ref("MM"),
		Message:     "Mobile money payment failed",
	}
}

func (s *Simulator) bankTransfer(details Details) *Result {
	return &Result{
		Status:      payDomain.StatusProcessing,
		ProviderRef: ref("BT"),
		Message:     "Bank transfer initiated, verification pending",
	}
}

func ref(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.Split(uuid.NewString(), "-")[0])
}
