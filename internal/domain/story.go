package domain

import "time"

// SuccessStory is a publishable case study authored by a guru or admin.
// Stories created by a guru start unpublished; admin-created stories are
// published right away.
type SuccessStory struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id"`
	FounderName      string      `json:"founder_name"`
	CompanyName      string      `json:"company_name"`
	Industry         string      `json:"industry"`
	ImageURL         string      `json:"image_url,omitempty"`
	ShortDescription string      `json:"short_description"`
	FullStory        string      `json:"full_story"`
	Achievements     []string    `json:"achievements"`
	Testimonial      string      `json:"testimonial,omitempty"`
	IsPublished      bool        `json:"is_published"`
	User             UserSummary `json:"user"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// StoryStats summarises one author's stories.
type StoryStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Pending   int64 `json:"pending"`
}
