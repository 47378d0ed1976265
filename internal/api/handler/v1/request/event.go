package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEndBeforeStart = errors.New("end_date must not be before start_date")

type CreateEventRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Location        string    `json:"location"`
	TicketPrice     int64     `json:"ticket_price"`
	Capacity        int       `json:"capacity"`
	ImageURL        string    `json:"image_url"`
	RequireApproval bool      `json:"require_approval"`
	IsPublished     bool      `json:"is_published"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 500)),
		validation.Field(&req.TicketPrice, validation.Min(0)),
		validation.Field(&req.Capacity, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.EndDate.Before(req.StartDate) {
		return errEndBeforeStart
	}

	return nil
}

type UpdateEventRequest struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Location        *string    `json:"location"`
	TicketPrice     *int64     `json:"ticket_price"`
	Capacity        *int       `json:"capacity"`
	ImageURL        *string    `json:"image_url"`
	RequireApproval *bool      `json:"require_approval"`
	IsPublished     *bool      `json:"is_published"`
}

func (req *UpdateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&req.Location, validation.NilOrNotEmpty, validation.Length(2, 500)),
		validation.Field(&req.TicketPrice, validation.Min(int64(0))),
		validation.Field(&req.Capacity, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return errEndBeforeStart
	}

	return nil
}
