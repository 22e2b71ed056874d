package usecases

import (
	"context"
	"errors"

	"github.com/merojugx/mero/internal/application/payment/dto"
	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/shared/authorization"
	apperrors "github.com/merojugx/mero/internal/shared/errors"
	"github.com/merojugx/mero/internal/shared/logger"
)

type VerifyStripePaymentCommand struct {
	Actor     authorization.Principal
	SessionID string
	// TransactionID optionally names the payment the caller expects the
	// checkout session to belong to.
	TransactionID string
}

// VerifyStripePaymentUseCase confirms a Stripe checkout and completes the
// bound payment once Stripe reports it paid. Repeated calls are harmless.
type VerifyStripePaymentUseCase struct {
	paymentRepo payment.Repository
	gateway     payment.CheckoutGateway
	logger      logger.Interface
}

func NewVerifyStripePaymentUseCase(paymentRepo payment.Repository, gateway payment.CheckoutGateway, logger logger.Interface) *VerifyStripePaymentUseCase {
	return &VerifyStripePaymentUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

func (uc *VerifyStripePaymentUseCase) Execute(ctx context.Context, cmd VerifyStripePaymentCommand) (*dto.PaymentVerificationDTO, error) {
	uc.logger.Infow("executing verify stripe payment use case", "session_id", cmd.SessionID, "transaction_id", cmd.TransactionID)

	session, err := uc.gateway.GetCheckoutSession(ctx, cmd.SessionID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("checkout session not found")
		}
		uc.logger.Errorw("failed to fetch checkout session", "session_id", cmd.SessionID, "error", err)
		return nil, apperrors.NewInternalError("failed to verify payment with stripe")
	}

	p, err := uc.resolvePayment(ctx, session, cmd.TransactionID)
	if err != nil {
		return nil, err
	}
	if !authorization.PolicySystemAdmin.Permits(cmd.Actor) && !cmd.Actor.InOrganization(p.OrganizationID()) {
		return nil, apperrors.NewNotFoundError("payment not found")
	}

	dirty := false
	if p.GatewaySessionID() == nil {
		p.BindGatewaySession(session.ID)
		dirty = true
	}

	if session.IsPaid() {
		if !session.AmountTotal.Equal(p.Amount()) || session.Currency != p.Currency() {
			uc.logger.Warnw("checkout amount does not match payment",
				"payment_id", p.ID(),
				"expected", p.Amount().String()+" "+p.Currency(),
				"got", session.AmountTotal.String()+" "+session.Currency,
			)
			return nil, apperrors.NewValidationError(payment.ErrTransactionMismatch.Error(), "amount or currency differs")
		}
		changed, err := p.MarkCompleted()
		if err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
		dirty = dirty || changed
		if changed {
			uc.logger.Infow("payment completed", "payment_id", p.ID(), "organization_id", p.OrganizationID())
		}
	}

	if dirty {
		if err := uc.paymentRepo.Update(ctx, p); err != nil {
			uc.logger.Errorw("failed to update payment", "payment_id", p.ID(), "error", err)
			return nil, apperrors.NewInternalError("failed to update payment")
		}
	}

	return dto.ToPaymentVerificationDTO(p, session.ID), nil
}

// resolvePayment finds the payment bound to the session, by stored session id
// first and then by the client reference set when the checkout was created.
func (uc *VerifyStripePaymentUseCase) resolvePayment(ctx context.Context, session *payment.CheckoutSession, transactionID string) (*payment.Payment, error) {
	if transactionID != "" {
		p, err := uc.paymentRepo.GetByID(ctx, transactionID)
		if err != nil {
			return nil, uc.lookupError(err, transactionID)
		}
		bound := p.GatewaySessionID()
		if (bound != nil && *bound != session.ID) || (bound == nil && session.ClientReferenceID != p.ID()) {
			uc.logger.Warnw("transaction does not match checkout session", "payment_id", p.ID(), "session_id", session.ID)
			return nil, apperrors.NewValidationError(payment.ErrTransactionMismatch.Error())
		}
		return p, nil
	}

	p, err := uc.paymentRepo.GetByGatewaySessionID(ctx, session.ID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, payment.ErrPaymentNotFound) || session.ClientReferenceID == "" {
		return nil, uc.lookupError(err, session.ID)
	}

	p, err = uc.paymentRepo.GetByID(ctx, session.ClientReferenceID)
	if err != nil {
		return nil, uc.lookupError(err, session.ClientReferenceID)
	}
	if bound := p.GatewaySessionID(); bound != nil && *bound != session.ID {
		return nil, apperrors.NewValidationError(payment.ErrTransactionMismatch.Error())
	}
	return p, nil
}

func (uc *VerifyStripePaymentUseCase) lookupError(err error, ref string) error {
	if errors.Is(err, payment.ErrPaymentNotFound) {
		return apperrors.NewNotFoundError("payment not found")
	}
	uc.logger.Errorw("failed to load payment", "reference", ref, "error", err)
	return apperrors.NewInternalError("failed to load payment")
}
