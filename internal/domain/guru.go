package domain

import "time"

// GuruApplication is a member's request for the elevated GURU role.
// One application per user.
type GuruApplication struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	FullName        string       `json:"full_name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Expertise       []string     `json:"expertise"`
	Experience      string       `json:"experience"`
	LinkedIn        string       `json:"linkedin,omitempty"`
	Website         string       `json:"website,omitempty"`
	Bio             string       `json:"bio"`
	Motivation      string       `json:"motivation"`
	ResumeURL       string       `json:"resume_url,omitempty"`
	ProfileImageURL string       `json:"profile_image_url,omitempty"`
	Status          ReviewStatus `json:"status"`
	Notes           string       `json:"notes,omitempty"`
	ReviewedBy      string       `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	User            UserSummary  `json:"user"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
