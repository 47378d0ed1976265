package domain

import (
	"errors"
	"time"
)

// ReviewStatus is the closed set of states a registration or guru
// application can be in. The transition operations only ever accept one
// of these values; anything else is rejected before a write happens.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "PENDING"
	StatusApproved ReviewStatus = "APPROVED"
	StatusRejected ReviewStatus = "REJECTED"
)

var ErrUnknownStatus = errors.New("unknown status")

func ParseReviewStatus(s string) (ReviewStatus, error) {
	switch ReviewStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return ReviewStatus(s), nil
	}

	return "", ErrUnknownStatus
}

// Registration links one user to one event. At most one registration
// exists per (user, event) pair.
type Registration struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	EventID   string       `json:"event_id"`
	Status    ReviewStatus `json:"status"`
	Notes     string       `json:"notes,omitempty"`
	PaymentID string       `json:"payment_id,omitempty"`
	Event     Event        `json:"event"`
	User      UserSummary  `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// RegistrationFilter narrows registration listings.
type RegistrationFilter struct {
	EventID string
	UserID  string
	Status  string
}
