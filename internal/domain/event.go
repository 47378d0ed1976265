package domain

import "time"

type Event struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	Location         string      `json:"location"`
	TicketPrice      int64       `json:"ticket_price"` // whole currency units; 0 = free
	Capacity         int         `json:"capacity"`
	ImageURL         string      `json:"image_url,omitempty"`
	RequireApproval  bool        `json:"require_approval"`
	IsPublished      bool        `json:"is_published"`
	CreatorID        string      `json:"creator_id"`
	Creator          UserSummary `json:"creator"`
	ParticipantCount int64       `json:"participant_count"`

	// Participants is only populated on the event detail view.
	Participants []Participant `json:"participants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Participant is the registration projection embedded in an event detail.
type Participant struct {
	ID        string       `json:"id"`
	Status    ReviewStatus `json:"status"`
	User      UserSummary  `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// IsFree reports whether registration needs no payment order.
func (e Event) IsFree() bool {
	return e.TicketPrice <= 0
}

// EventFilter narrows event listings.
type EventFilter struct {
	CreatorID   string
	IsPublished *bool
}
