package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/zuper-events/zuper-api/internal/api/handler/v1/response"
	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/service"
)

// ContextKeyUser is where the authenticated user is stored on the gin context.
const ContextKeyUser = "currentUser"

const headerUserID = "user-id"

type UserFinder interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

// Authenticator resolves the user-id request header against the user table.
type Authenticator struct {
	users UserFinder
}

func NewAuthenticator(users UserFinder) *Authenticator {
	return &Authenticator{
		users: users,
	}
}

// Authenticate rejects requests without a user-id header with 401, and
// requests carrying an unknown id with 403. The resolved user is stored on
// the context for downstream handlers.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetHeader(headerUserID)
		if userID == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("user-id header is required"))

			return
		}

		user, err := a.users.GetUser(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("unknown user")))

				return
			}

			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}

		ctx.Set(ContextKeyUser, user)
		ctx.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(ContextKeyUser)
		if !exists {
			response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

			return
		}

		user, ok := value.(domain.User)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()

				return
			}
		}

		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("insufficient role")))
	}
}
