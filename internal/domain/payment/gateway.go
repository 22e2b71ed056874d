package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutSession is the gateway view of a hosted checkout.
type CheckoutSession struct {
	ID            string
	PaymentStatus string
	Status        string
	AmountTotal   decimal.Decimal
	Currency      string
	// ClientReferenceID carries our payment id when the checkout was created by us.
	ClientReferenceID string
	Metadata          map[string]string
}

func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == "paid" || s.PaymentStatus == "no_payment_required"
}

// CheckoutGateway resolves checkout sessions at the payment provider.
type CheckoutGateway interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
