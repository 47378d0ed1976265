// Package payment wraps the Razorpay Orders API behind the small surface
// the registration workflow needs.
package payment

import (
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Razorpay rejects receipts longer than 40 characters.
const MaxReceiptLen = 40

var ErrReceiptTooLong = errors.New("receipt exceeds 40 characters")

// Order is the gateway-side handle for a pending charge. Amount is in
// minor currency units (paise for INR).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

// KeyID is the public key the frontend needs to open the checkout widget.
func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (Order, error) {
	if len(receipt) > MaxReceiptLen {
		return Order{}, ErrReceiptTooLong
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		noteFields := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			noteFields[k] = v
		}
		data["notes"] = noteFields
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay order create -> %w", err)
	}

	return Order{
		ID:       stringField(body, "id"),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   stringField(body, "status"),
	}, nil
}

func stringField(body map[string]interface{}, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}

	return ""
}
