package response

import (
	"time"

	"marcenaria_rampanelli/internal/domain/entities"
)

type PaymentResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

// LoginResponse carries the bearer token issued for the operator.
type LoginResponse struct {
	Token string `json:"token"`
}
