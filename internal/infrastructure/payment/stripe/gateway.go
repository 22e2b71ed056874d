// Package stripe adapts Stripe Checkout to payment.CheckoutGateway.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/shared/logger"
)

// sessionGetter is the subset of the checkout session client we use.
type sessionGetter interface {
	Get(id string, params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

// Currencies Stripe bills in whole units.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

type Gateway struct {
	sessions sessionGetter
	logger   logger.Interface
}

// NewGateway returns a gateway authenticated with secretKey.
func NewGateway(secretKey string, log logger.Interface) *Gateway {
	sc := client.New(secretKey, nil)
	return newGateway(sc.CheckoutSessions, log)
}

func newGateway(sessions sessionGetter, log logger.Interface) *Gateway {
	return &Gateway{sessions: sessions, logger: log}
}

func (g *Gateway) GetCheckoutSession(ctx context.Context, sessionID string) (*payment.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripego.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return nil, payment.ErrPaymentNotFound
		}
		g.logger.Errorw("failed to fetch stripe checkout session", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %v", payment.ErrCheckoutSessionFetch, err)
	}

	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripego.CheckoutSession) *payment.CheckoutSession {
	currency := strings.ToLower(string(s.Currency))
	exp := int32(-2)
	if zeroDecimalCurrencies[currency] {
		exp = 0
	}

	metadata := make(map[string]string, len(s.Metadata))
	for k, v := range s.Metadata {
		metadata[k] = v
	}

	return &payment.CheckoutSession{
		ID:                s.ID,
		PaymentStatus:     string(s.PaymentStatus),
		Status:            string(s.Status),
		AmountTotal:       decimal.New(s.AmountTotal, exp),
		Currency:          strings.ToUpper(currency),
		ClientReferenceID: s.ClientReferenceID,
		Metadata:          metadata,
	}
}
