package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zuper-events/zuper-api/internal/api/middleware"
	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/service"
)

type fakeRegistrationService struct {
	registerResult service.RegisterResult
	registerErr    error
}

func (f *fakeRegistrationService) RegisterForEvent(_ context.Context, _ service.RegisterInput) (service.RegisterResult, error) {
	if f.registerErr != nil {
		return service.RegisterResult{}, f.registerErr
	}

	return f.registerResult, nil
}

func (f *fakeRegistrationService) GetRegistration(_ context.Context, _ string) (domain.Registration, error) {
	return domain.Registration{}, service.ErrRegistrationNotFound
}

func (f *fakeRegistrationService) ListRegistrations(_ context.Context, _ domain.RegistrationFilter) ([]domain.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationService) UpdateStatus(_ context.Context, _, _, _ string) (domain.Registration, error) {
	return domain.Registration{}, service.ErrRegistrationNotFound
}

func (f *fakeRegistrationService) DeleteRegistration(_ context.Context, _ string) error {
	return nil
}

func setContextUser(user domain.User) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUser, user)
	}
}

func postRegister(t *testing.T, svc RegistrationService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewRegistrationHandler(svc)
	router.POST("/event-participants",
		setContextUser(domain.User{ID: "member-1", Role: domain.RoleMember}),
		handler.HandleRegister)

	body := `{"event_id":"6f1d2c3a-4b5e-4f6a-8b9c-0d1e2f3a4b5c"}`
	req := httptest.NewRequest(http.MethodPost, "/event-participants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHandleRegister_GatewayFailureIsServerError(t *testing.T) {
	resp := postRegister(t, &fakeRegistrationService{registerErr: service.ErrPaymentGateway})

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.JSONEq(t, `{"error":"failed to create payment order, please try again"}`, resp.Body.String())
}

func TestHandleRegister_RejectionsAreBadRequests(t *testing.T) {
	resp := postRegister(t, &fakeRegistrationService{registerErr: service.ErrEventFull})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = postRegister(t, &fakeRegistrationService{registerErr: service.ErrAlreadyRegistered})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.JSONEq(t, `{"error":"user is already registered for this event"}`, resp.Body.String())
}
