package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Qualification *string `json:"qualification"`
	Description   *string `json:"description"`
	Phone         *string `json:"phone"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Qualification, validation.Length(0, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Phone, validation.Length(0, 20)),
	)
}
