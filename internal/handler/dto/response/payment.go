package response

import "decor-market/internal/usecase/commands"

type CheckoutSessionResponse struct {
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl"`
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		SessionID:   s.ID,
		CheckoutURL: s.URL,
	}
}
