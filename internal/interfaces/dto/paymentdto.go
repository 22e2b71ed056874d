package dto

type VerifyStripeRequest struct {
	SessionID     string `json:"session_id" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"omitempty,uuid"`
}
