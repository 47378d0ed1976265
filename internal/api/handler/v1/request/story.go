package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateStoryRequest is multipart so an illustration image can be attached.
// Achievements is a comma-separated list.
type CreateStoryRequest struct {
	FounderName      string `form:"founder_name"`
	CompanyName      string `form:"company_name"`
	Industry         string `form:"industry"`
	ShortDescription string `form:"short_description"`
	FullStory        string `form:"full_story"`
	Achievements     string `form:"achievements"`
	Testimonial      string `form:"testimonial"`
}

func (req *CreateStoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FounderName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.CompanyName, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Industry, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.ShortDescription, validation.Required, validation.Length(10, 500)),
		validation.Field(&req.FullStory, validation.Required, validation.Length(50, 20000)),
		validation.Field(&req.Testimonial, validation.Length(0, 2000)),
	)
}

func (req *CreateStoryRequest) AchievementsList() []string {
	return splitCommaList(req.Achievements)
}

type UpdateStoryRequest struct {
	FounderName      *string `json:"founder_name"`
	CompanyName      *string `json:"company_name"`
	Industry         *string `json:"industry"`
	ShortDescription *string `json:"short_description"`
	FullStory        *string `json:"full_story"`
	Achievements     *string `json:"achievements"`
	Testimonial      *string `json:"testimonial"`
	ImageURL         *string `json:"image_url"`
}

func (req *UpdateStoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FounderName, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.CompanyName, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&req.Industry, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.ShortDescription, validation.NilOrNotEmpty, validation.Length(10, 500)),
		validation.Field(&req.FullStory, validation.NilOrNotEmpty, validation.Length(50, 20000)),
	)
}

func (req *UpdateStoryRequest) AchievementsList() *[]string {
	if req.Achievements == nil {
		return nil
	}
	list := splitCommaList(*req.Achievements)

	return &list
}

type SetStoryPublishedRequest struct {
	IsPublished *bool `json:"is_published"`
}

func (req *SetStoryPublishedRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IsPublished, validation.NotNil),
	)
}

func splitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}
