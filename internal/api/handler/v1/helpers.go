package v1

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zuper-events/zuper-api/internal/api/middleware"
	"github.com/zuper-events/zuper-api/internal/domain"
)

var errNoAuthenticatedUser = errors.New("no authenticated user in context")

// MediaStore uploads a local file and returns its public URL.
type MediaStore interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
}

func getUserFromContext(ctx *gin.Context) (domain.User, error) {
	value, exists := ctx.Get(middleware.ContextKeyUser)
	if !exists {
		return domain.User{}, errNoAuthenticatedUser
	}

	user, ok := value.(domain.User)
	if !ok {
		return domain.User{}, errNoAuthenticatedUser
	}

	return user, nil
}

// uploadFormFile saves a multipart file under uploadDir and pushes it to the
// media store. Returns the public URL, or "" when the file is absent or the
// upload fails; upload failures are logged and reported as a warning string.
func uploadFormFile(ctx *gin.Context, store MediaStore, uploadDir, field, folder string) (url string, warning string) {
	file, err := ctx.FormFile(field)
	if err != nil {
		return "", ""
	}

	localPath := filepath.Join(uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err = ctx.SaveUploadedFile(file, localPath); err != nil {
		zap.L().Warn("saving uploaded file failed",
			zap.String("field", field),
			zap.Error(err))

		return "", fmt.Sprintf("failed to store %v upload", field)
	}

	url, err = store.Upload(ctx.Request.Context(), localPath, folder)
	if err != nil {
		zap.L().Warn("media store upload failed",
			zap.String("field", field),
			zap.Error(err))

		return "", fmt.Sprintf("failed to store %v upload", field)
	}

	return url, ""
}
