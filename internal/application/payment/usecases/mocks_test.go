package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/shared/authorization"
)

type memoryPayments struct {
	items   map[string]*payment.Payment
	updates int
}

func newMemoryPayments(list ...*payment.Payment) *memoryPayments {
	m := &memoryPayments{items: map[string]*payment.Payment{}}
	for _, p := range list {
		m.items[p.ID()] = p
	}
	return m
}

func (m *memoryPayments) Create(ctx context.Context, p *payment.Payment) error {
	m.items[p.ID()] = p
	return nil
}

func (m *memoryPayments) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (m *memoryPayments) GetByGatewaySessionID(ctx context.Context, sessionID string) (*payment.Payment, error) {
	for _, p := range m.items {
		if s := p.GatewaySessionID(); s != nil && *s == sessionID {
			return p, nil
		}
	}
	return nil, payment.ErrPaymentNotFound
}

func (m *memoryPayments) Update(ctx context.Context, p *payment.Payment) error {
	m.updates++
	m.items[p.ID()] = p
	return nil
}

type fakeGateway struct {
	sessions map[string]*payment.CheckoutSession
	err      error
}

func (f fakeGateway) GetCheckoutSession(ctx context.Context, id string) (*payment.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, payment.ErrPaymentNotFound
	}
	return s, nil
}

func pendingPayment(id, orgID string, sessionID *string) *payment.Payment {
	now := time.Now()
	return payment.ReconstructPayment(id, orgID, payment.GatewayStripe, payment.StatusPending, decimal.RequireFromString("30.00"), "USD", sessionID, "mero-crm", nil, now, now)
}

func checkout(id, status, clientRef string) *payment.CheckoutSession {
	return &payment.CheckoutSession{
		ID:                id,
		PaymentStatus:     status,
		Status:            "complete",
		AmountTotal:       decimal.New(3000, -2),
		Currency:          "USD",
		ClientReferenceID: clientRef,
	}
}

func member(orgID string) authorization.Principal {
	return authorization.Principal{UserID: "user-1", SessionID: "s-1", OrganizationID: &orgID}
}

func strPtr(s string) *string { return &s }
