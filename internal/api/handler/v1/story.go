package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zuper-events/zuper-api/internal/api/handler/v1/request"
	"github.com/zuper-events/zuper-api/internal/api/handler/v1/response"
	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/service"
)

type StoryService interface {
	CreateStory(ctx context.Context, actor domain.User, story domain.SuccessStory) (domain.SuccessStory, error)
	GetStory(ctx context.Context, id string, actor domain.User) (domain.SuccessStory, error)
	ListStories(ctx context.Context, actor domain.User) ([]domain.SuccessStory, error)
	ListStoriesByUser(ctx context.Context, userID string) ([]domain.SuccessStory, error)
	UpdateStory(ctx context.Context, id string, actor domain.User, input service.UpdateStoryInput) (domain.SuccessStory, error)
	SetPublished(ctx context.Context, id string, published bool) (domain.SuccessStory, error)
	Stats(ctx context.Context, userID string) (domain.StoryStats, error)
}

type StoryHandler struct {
	svc       StoryService
	media     MediaStore
	uploadDir string
}

func NewStoryHandler(svc StoryService, media MediaStore, uploadDir string) *StoryHandler {
	return &StoryHandler{
		svc:       svc,
		media:     media,
		uploadDir: uploadDir,
	}
}

// actorFromContext tolerates unauthenticated access for public story reads.
func actorFromContext(ctx *gin.Context) domain.User {
	user, err := getUserFromContext(ctx)
	if err != nil {
		return domain.User{}
	}

	return user
}

// HandleCreateStory godoc
// @Summary      Share a success story
// @Description  Multipart form; the image file is optional. Admin-authored
// @Description  stories publish immediately, guru-authored ones wait for review.
// @Tags         stories
// @Accept       mpfd
// @Produce      json
// @Success      201      {object}   response.StoryCreatedResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories [post]
func (h *StoryHandler) HandleCreateStory(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	req := request.CreateStoryRequest{}
	if err = ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	imageURL, warning := uploadFormFile(ctx, h.media, h.uploadDir, "image", "stories")

	story, err := h.svc.CreateStory(ctx.Request.Context(), user, domain.SuccessStory{
		FounderName:      req.FounderName,
		CompanyName:      req.CompanyName,
		Industry:         req.Industry,
		ShortDescription: req.ShortDescription,
		FullStory:        req.FullStory,
		Achievements:     req.AchievementsList(),
		Testimonial:      req.Testimonial,
		ImageURL:         imageURL,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStory -> h.svc.CreateStory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.StoryCreatedResponse{
		Story:   story,
		Warning: warning,
	})
}

// HandleListStories godoc
// @Summary      List success stories
// @Tags         stories
// @Produce      json
// @Success      200      {array}    domain.SuccessStory
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories [get]
func (h *StoryHandler) HandleListStories(ctx *gin.Context) {
	stories, err := h.svc.ListStories(ctx.Request.Context(), actorFromContext(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListStories -> h.svc.ListStories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stories)
}

// HandleGetStory godoc
// @Summary      Get a success story by ID
// @Tags         stories
// @Produce      json
// @Param        storyID  path       string true "story ID"
// @Success      200      {object}   domain.SuccessStory
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories/{storyID} [get]
func (h *StoryHandler) HandleGetStory(ctx *gin.Context) {
	storyID := ctx.Param("storyID")

	story, err := h.svc.GetStory(ctx.Request.Context(), storyID, actorFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
		case errors.Is(err, service.ErrStoryNotPublished):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleGetStory -> h.svc.GetStory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, story)
}

// HandleListStoriesByUser godoc
// @Summary      List a user's success stories
// @Tags         stories
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {array}    domain.SuccessStory
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories/user/{userID} [get]
func (h *StoryHandler) HandleListStoriesByUser(ctx *gin.Context) {
	userID := ctx.Param("userID")

	stories, err := h.svc.ListStoriesByUser(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListStoriesByUser -> h.svc.ListStoriesByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stories)
}

// HandleUpdateStory godoc
// @Summary      Update a success story
// @Tags         stories
// @Produce      json
// @Param        storyID  path       string true "story ID"
// @Param        request  body       request.UpdateStoryRequest true "request body"
// @Success      200      {object}   domain.SuccessStory
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories/{storyID} [put]
func (h *StoryHandler) HandleUpdateStory(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	storyID := ctx.Param("storyID")

	req := request.UpdateStoryRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateStory(ctx.Request.Context(), storyID, user, service.UpdateStoryInput{
		FounderName:      req.FounderName,
		CompanyName:      req.CompanyName,
		Industry:         req.Industry,
		ShortDescription: req.ShortDescription,
		FullStory:        req.FullStory,
		Achievements:     req.AchievementsList(),
		Testimonial:      req.Testimonial,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))
		case errors.Is(err, service.ErrNotStoryOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateStory -> h.svc.UpdateStory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleSetStoryPublished godoc
// @Summary      Publish or unpublish a success story
// @Tags         stories
// @Produce      json
// @Param        storyID  path       string true "story ID"
// @Param        request  body       request.SetStoryPublishedRequest true "request body"
// @Success      200      {object}   domain.SuccessStory
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories/{storyID}/publish [patch]
func (h *StoryHandler) HandleSetStoryPublished(ctx *gin.Context) {
	storyID := ctx.Param("storyID")

	req := request.SetStoryPublishedRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.SetPublished(ctx.Request.Context(), storyID, *req.IsPublished)
	if err != nil {
		if errors.Is(err, service.ErrStoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("story", "ID", storyID))

			return
		}

		err = fmt.Errorf("v1.HandleSetStoryPublished -> h.svc.SetPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleStoryStats godoc
// @Summary      Per-user success story counts
// @Tags         stories
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {object}   domain.StoryStats
// @Failure      500      {object}   response.Err
// @Router       /guru/success-stories/user/{userID}/stats [get]
func (h *StoryHandler) HandleStoryStats(ctx *gin.Context) {
	userID := ctx.Param("userID")

	stats, err := h.svc.Stats(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleStoryStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
