package payment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type Gateway string

const GatewayStripe Gateway = "stripe"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Payment struct {
	id               string
	organizationID   string
	gateway          Gateway
	status           Status
	amount           decimal.Decimal
	currency         string
	gatewaySessionID *string
	description      string
	completedAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPayment(organizationID string, gateway Gateway, amount decimal.Decimal, currency, description string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	now := biztime.NowUTC()
	return &Payment{
		id:             id.New(),
		organizationID: organizationID,
		gateway:        gateway,
		status:         StatusPending,
		amount:         amount.Round(2),
		currency:       currency,
		description:    description,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPayment rebuilds a payment from persistence
func ReconstructPayment(
	id, organizationID string,
	gateway Gateway,
	status Status,
	amount decimal.Decimal,
	currency string,
	gatewaySessionID *string,
	description string,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:               id,
		organizationID:   organizationID,
		gateway:          gateway,
		status:           status,
		amount:           amount,
		currency:         currency,
		gatewaySessionID: gatewaySessionID,
		description:      description,
		completedAt:      completedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Payment) ID() string                { return p.id }
func (p *Payment) OrganizationID() string    { return p.organizationID }
func (p *Payment) Gateway() Gateway          { return p.gateway }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) Amount() decimal.Decimal   { return p.amount }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) GatewaySessionID() *string { return p.gatewaySessionID }
func (p *Payment) Description() string       { return p.description }
func (p *Payment) CompletedAt() *time.Time   { return p.completedAt }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time      { return p.updatedAt }

func (p *Payment) IsCompleted() bool {
	return p.status == StatusCompleted
}

func (p *Payment) BindGatewaySession(sessionID string) {
	p.gatewaySessionID = &sessionID
	p.updatedAt = biztime.NowUTC()
}

// MarkCompleted moves the payment to completed. It reports false when the
// payment was already completed.
func (p *Payment) MarkCompleted() (bool, error) {
	switch p.status {
	case StatusCompleted:
		return false, nil
	case StatusFailed:
		return false, ErrPaymentFailed
	}
	now := biztime.NowUTC()
	p.status = StatusCompleted
	p.completedAt = &now
	p.updatedAt = now
	return true, nil
}

func (p *Payment) MarkFailed() error {
	if p.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	p.status = StatusFailed
	p.updatedAt = biztime.NowUTC()
	return nil
}
