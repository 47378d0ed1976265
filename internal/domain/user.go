package domain

import "time"

const (
	RoleMember = "ARMY_MEMBER"
	RoleGuru   = "GURU"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Qualification string    `json:"qualification"`
	Description   string    `json:"description,omitempty"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserSummary is the slim projection embedded in events, registrations
// and stories instead of the full user record.
type UserSummary struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserCounts carries the related-record counts returned with a user profile.
type UserCounts struct {
	Events        int64 `json:"events"`
	Registrations int64 `json:"registrations"`
	Payments      int64 `json:"payments"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
