package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validCreateEvent() CreateEventRequest {
	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)

	return CreateEventRequest{
		Name:      "Community Meetup",
		StartDate: start,
		EndDate:   start.Add(4 * time.Hour),
		Location:  "Community Hall, Mumbai",
		Capacity:  100,
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	req := validCreateEvent()
	require.NoError(t, req.Validate())

	req = validCreateEvent()
	req.Name = ""
	require.Error(t, req.Validate())

	req = validCreateEvent()
	req.Capacity = 0
	require.NoError(t, req.Validate(), "zero capacity is a valid event size")

	req = validCreateEvent()
	req.Capacity = -1
	require.Error(t, req.Validate())

	req = validCreateEvent()
	req.TicketPrice = -1
	require.Error(t, req.Validate())

	req = validCreateEvent()
	req.EndDate = req.StartDate.Add(-time.Hour)
	require.ErrorIs(t, req.Validate(), errEndBeforeStart)
}

func TestUpdateEventRequest_Validate(t *testing.T) {
	require.NoError(t, (&UpdateEventRequest{}).Validate(), "empty partial update is allowed")

	empty := ""
	require.Error(t, (&UpdateEventRequest{Name: &empty}).Validate())

	imageURL := "https://res.cloudinary.com/demo/image/upload/banner.png"
	negative := -1
	require.NoError(t, (&UpdateEventRequest{ImageURL: &imageURL}).Validate())
	require.Error(t, (&UpdateEventRequest{Capacity: &negative}).Validate())

	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	require.ErrorIs(t, (&UpdateEventRequest{StartDate: &start, EndDate: &end}).Validate(), errEndBeforeStart)
}
