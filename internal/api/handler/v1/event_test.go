package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/service"
)

type fakeEventService struct {
	updateInput service.UpdateEventInput
}

func (f *fakeEventService) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, _ string) (domain.Event, error) {
	return domain.Event{}, service.ErrEventNotFound
}

func (f *fakeEventService) ListEvents(_ context.Context, _ domain.EventFilter) ([]domain.Event, error) {
	return nil, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id string, _ domain.User, input service.UpdateEventInput) (domain.Event, error) {
	f.updateInput = input

	return domain.Event{ID: id}, nil
}

func (f *fakeEventService) DeleteEvent(_ context.Context, _ string, _ domain.User) error {
	return nil
}

func TestHandleUpdateEvent_PassesPartialFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEventService{}
	router := gin.New()
	router.PUT("/events/:eventID",
		setContextUser(domain.User{ID: "creator-1", Role: domain.RoleMember}),
		NewEventHandler(svc).HandleUpdateEvent)

	body := `{"name":"Founders Meetup","image_url":"https://res.cloudinary.com/demo/image/upload/banner.png","capacity":0}`
	req := httptest.NewRequest(http.MethodPut, "/events/event-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, svc.updateInput.Name)
	require.Equal(t, "Founders Meetup", *svc.updateInput.Name)
	require.NotNil(t, svc.updateInput.ImageURL)
	require.Equal(t, "https://res.cloudinary.com/demo/image/upload/banner.png", *svc.updateInput.ImageURL)
	require.NotNil(t, svc.updateInput.Capacity)
	require.Equal(t, 0, *svc.updateInput.Capacity)
	require.Nil(t, svc.updateInput.Location, "absent fields stay nil")
}
