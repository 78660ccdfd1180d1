package request

type ReconcilePaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
