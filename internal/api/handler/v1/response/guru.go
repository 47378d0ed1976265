package response

import (
	"github.com/zuper-events/zuper-api/internal/domain"
)

// ApplicationCheckResponse answers "has this user applied yet".
type ApplicationCheckResponse struct {
	HasApplied bool                `json:"has_applied"`
	Status     domain.ReviewStatus `json:"status,omitempty"`
}

type ApplicationCreatedResponse struct {
	Application domain.GuruApplication `json:"application"`
	Warning     string                 `json:"warning,omitempty"`
}

type StoryCreatedResponse struct {
	Story   domain.SuccessStory `json:"story"`
	Warning string              `json:"warning,omitempty"`
}
