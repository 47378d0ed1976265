package domain

import "time"

const (
	PaymentCompleted = "COMPLETED"
	PaymentCurrency  = "INR"
)

// Payment is the local record of a charge settled through the payment
// gateway. GatewayPaymentID is the gateway-side identifier and is unique,
// so resolving a payment by it is idempotent.
type Payment struct {
	ID               string    `json:"id"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	GatewayPaymentID string    `json:"payment_id"`
	UserID           string    `json:"user_id"`
	EventID          string    `json:"event_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
