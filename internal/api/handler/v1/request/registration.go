package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterForEventRequest struct {
	EventID   string `json:"event_id"`
	Notes     string `json:"notes"`
	PaymentID string `json:"payment_id"`
}

func (req *RegisterForEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, is.UUIDv4),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (req *UpdateRegistrationStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}
