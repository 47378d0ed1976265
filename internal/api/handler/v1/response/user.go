package response

import (
	"github.com/zuper-events/zuper-api/internal/domain"
)

type ProfileResponse struct {
	User   domain.User       `json:"user"`
	Counts domain.UserCounts `json:"counts"`
}
