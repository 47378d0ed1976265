package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// SubmitGuruApplicationRequest arrives as multipart form data so the resume
// and profile image can ride along. Expertise is a comma-separated list.
type SubmitGuruApplicationRequest struct {
	FullName   string `form:"full_name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Expertise  string `form:"expertise"`
	Experience string `form:"experience"`
	LinkedIn   string `form:"linkedin"`
	Website    string `form:"website"`
	Bio        string `form:"bio"`
	Motivation string `form:"motivation"`
}

func (req *SubmitGuruApplicationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Length(5, 20)),
		validation.Field(&req.Expertise, validation.Required),
		validation.Field(&req.Experience, validation.Required),
		validation.Field(&req.LinkedIn, is.URL),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Bio, validation.Required, validation.Length(10, 2000)),
		validation.Field(&req.Motivation, validation.Required, validation.Length(10, 2000)),
	)
}

// ExpertiseList splits the comma-separated expertise field, dropping blanks.
func (req *SubmitGuruApplicationRequest) ExpertiseList() []string {
	return splitCommaList(req.Expertise)
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (req *UpdateApplicationStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
	)
}
