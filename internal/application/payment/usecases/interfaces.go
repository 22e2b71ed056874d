package usecases

import (
	"context"

	"github.com/merojugx/mero/internal/application/payment/dto"
)

type VerifyStripePaymentExecutor interface {
	Execute(ctx context.Context, cmd VerifyStripePaymentCommand) (*dto.PaymentVerificationDTO, error)
}
