package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merojugx/mero/internal/application/payment/usecases"
	"github.com/merojugx/mero/internal/interfaces/dto"
	"github.com/merojugx/mero/internal/shared/logger"
	"github.com/merojugx/mero/internal/shared/utils"
)

type PaymentHandler struct {
	verifyStripeUC usecases.VerifyStripePaymentExecutor
	logger         logger.Interface
}

func NewPaymentHandler(verifyStripeUC usecases.VerifyStripePaymentExecutor, logger logger.Interface) *PaymentHandler {
	return &PaymentHandler{
		verifyStripeUC: verifyStripeUC,
		logger:         logger,
	}
}

// VerifyStripe handles POST /payments/stripe/verify
func (h *PaymentHandler) VerifyStripe(c *gin.Context) {
	actor, ok := utils.RequirePrincipal(c)
	if !ok {
		return
	}

	var req dto.VerifyStripeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.verifyStripeUC.Execute(c.Request.Context(), usecases.VerifyStripePaymentCommand{
		Actor:         actor,
		SessionID:     req.SessionID,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.logger.Warnw("stripe verification failed", "session_id", req.SessionID, "user_id", actor.UserID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Payment is not completed yet"
	if result.Paid {
		message = "Payment verified successfully"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}
