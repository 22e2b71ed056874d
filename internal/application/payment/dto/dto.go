package dto

import (
	"time"

	"github.com/merojugx/mero/internal/domain/payment"
)

type PaymentVerificationDTO struct {
	PaymentID      string     `json:"payment_id"`
	OrganizationID string     `json:"organization_id"`
	Gateway        string     `json:"gateway"`
	Status         string     `json:"status"`
	Paid           bool       `json:"paid"`
	Amount         string     `json:"amount"`
	Currency       string     `json:"currency"`
	SessionID      string     `json:"session_id"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func ToPaymentVerificationDTO(p *payment.Payment, sessionID string) *PaymentVerificationDTO {
	return &PaymentVerificationDTO{
		PaymentID:      p.ID(),
		OrganizationID: p.OrganizationID(),
		Gateway:        string(p.Gateway()),
		Status:         string(p.Status()),
		Paid:           p.IsCompleted(),
		Amount:         p.Amount().StringFixed(2),
		Currency:       p.Currency(),
		SessionID:      sessionID,
		CompletedAt:    p.CompletedAt(),
	}
}
