package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/service"
)

type fakeUserFinder struct {
	users map[string]domain.User
}

func (f *fakeUserFinder) GetUser(_ context.Context, id string) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func newTestRouter(roles ...string) (*gin.Engine, *fakeUserFinder) {
	gin.SetMode(gin.TestMode)

	finder := &fakeUserFinder{
		users: map[string]domain.User{
			"member-1": {ID: "member-1", Role: domain.RoleMember},
			"admin-1":  {ID: "admin-1", Role: domain.RoleAdmin},
		},
	}

	router := gin.New()
	handlers := []gin.HandlerFunc{NewAuthenticator(finder).Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		user := ctx.MustGet(ContextKeyUser).(domain.User)
		ctx.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	router.GET("/protected", handlers...)

	return router, finder
}

func doRequest(router *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if userID != "" {
		req.Header.Set("user-id", userID)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	router, _ := newTestRouter()

	resp := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.JSONEq(t, `{"error":"user-id header is required"}`, resp.Body.String())
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	router, _ := newTestRouter()

	resp := doRequest(router, "ghost")
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAuthenticate_ResolvesUser(t *testing.T) {
	router, _ := newTestRouter()

	resp := doRequest(router, "member-1")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"id":"member-1"}`, resp.Body.String())
}

func TestRequireRole(t *testing.T) {
	router, _ := newTestRouter(domain.RoleAdmin)

	resp := doRequest(router, "member-1")
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = doRequest(router, "admin-1")
	require.Equal(t, http.StatusOK, resp.Code)
}
