package response

import (
	"github.com/zuper-events/zuper-api/internal/pkg/payment"
)

// PaymentRequiredResponse tells the client to settle the gateway order and
// retry the registration with the resulting payment id.
type PaymentRequiredResponse struct {
	RequiresPayment bool          `json:"requires_payment"`
	Order           payment.Order `json:"order"`
	KeyID           string        `json:"key_id"`
}
