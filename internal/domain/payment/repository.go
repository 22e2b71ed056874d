package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetByGatewaySessionID(ctx context.Context, sessionID string) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
}
