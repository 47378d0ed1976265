package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zuper-events/zuper-api/internal/api/handler/v1/request"
	"github.com/zuper-events/zuper-api/internal/api/handler/v1/response"
	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/service"
)

type GuruService interface {
	SubmitApplication(ctx context.Context, application domain.GuruApplication) (domain.GuruApplication, error)
	GetApplication(ctx context.Context, id string) (domain.GuruApplication, error)
	GetApplicationByUser(ctx context.Context, userID string) (domain.GuruApplication, error)
	ListApplications(ctx context.Context) ([]domain.GuruApplication, error)
	DecideApplication(ctx context.Context, id, status, notes, reviewedBy string) (domain.GuruApplication, error)
}

type GuruHandler struct {
	svc       GuruService
	media     MediaStore
	uploadDir string
}

func NewGuruHandler(svc GuruService, media MediaStore, uploadDir string) *GuruHandler {
	return &GuruHandler{
		svc:       svc,
		media:     media,
		uploadDir: uploadDir,
	}
}

// HandleSubmitApplication godoc
// @Summary      Apply for the guru role
// @Description  Multipart form; resume and profile_image files are optional.
// @Description  Upload failures degrade to a warning on the 201 response.
// @Tags         guru
// @Accept       mpfd
// @Produce      json
// @Success      201      {object}   response.ApplicationCreatedResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/applications [post]
func (h *GuruHandler) HandleSubmitApplication(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	req := request.SubmitGuruApplicationRequest{}
	if err = ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var warnings []string
	resumeURL, warning := uploadFormFile(ctx, h.media, h.uploadDir, "resume", "resumes")
	if warning != "" {
		warnings = append(warnings, warning)
	}
	imageURL, warning := uploadFormFile(ctx, h.media, h.uploadDir, "profile_image", "profiles")
	if warning != "" {
		warnings = append(warnings, warning)
	}

	application, err := h.svc.SubmitApplication(ctx.Request.Context(), domain.GuruApplication{
		UserID:          user.ID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Expertise:       req.ExpertiseList(),
		Experience:      req.Experience,
		LinkedIn:        req.LinkedIn,
		Website:         req.Website,
		Bio:             req.Bio,
		Motivation:      req.Motivation,
		ResumeURL:       resumeURL,
		ProfileImageURL: imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationExists):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", user.ID))
		default:
			err = fmt.Errorf("v1.HandleSubmitApplication -> h.svc.SubmitApplication -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.ApplicationCreatedResponse{
		Application: application,
		Warning:     strings.Join(warnings, "; "),
	})
}

// HandleListApplications godoc
// @Summary      List all guru applications
// @Tags         guru
// @Produce      json
// @Success      200      {array}    domain.GuruApplication
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/applications [get]
func (h *GuruHandler) HandleListApplications(ctx *gin.Context) {
	applications, err := h.svc.ListApplications(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListApplications -> h.svc.ListApplications -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// HandleGetApplication godoc
// @Summary      Get a guru application by ID
// @Tags         guru
// @Produce      json
// @Param        applicationID path string true "application ID"
// @Success      200      {object}   domain.GuruApplication
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/applications/{applicationID} [get]
func (h *GuruHandler) HandleGetApplication(ctx *gin.Context) {
	applicationID := ctx.Param("applicationID")

	application, err := h.svc.GetApplication(ctx.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", applicationID))

			return
		}

		err = fmt.Errorf("v1.HandleGetApplication -> h.svc.GetApplication -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, application)
}

// HandleGetApplicationByUser godoc
// @Summary      Get a user's guru application
// @Tags         guru
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {object}   domain.GuruApplication
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/applications/user/{userID} [get]
func (h *GuruHandler) HandleGetApplicationByUser(ctx *gin.Context) {
	userID := ctx.Param("userID")

	application, err := h.svc.GetApplicationByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "user ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetApplicationByUser -> h.svc.GetApplicationByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, application)
}

// HandleCheckApplication godoc
// @Summary      Check whether a user has applied for the guru role
// @Tags         guru
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {object}   response.ApplicationCheckResponse
// @Failure      500      {object}   response.Err
// @Router       /guru/applications/user/{userID}/check [get]
func (h *GuruHandler) HandleCheckApplication(ctx *gin.Context) {
	userID := ctx.Param("userID")

	application, err := h.svc.GetApplicationByUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			ctx.JSON(http.StatusOK, response.ApplicationCheckResponse{HasApplied: false})

			return
		}

		err = fmt.Errorf("v1.HandleCheckApplication -> h.svc.GetApplicationByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ApplicationCheckResponse{
		HasApplied: true,
		Status:     application.Status,
	})
}

// HandleDecideApplication godoc
// @Summary      Approve or reject a guru application
// @Tags         guru
// @Produce      json
// @Param        applicationID path string true "application ID"
// @Param        request  body       request.UpdateApplicationStatusRequest true "request body"
// @Success      200      {object}   domain.GuruApplication
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /guru/applications/{applicationID}/status [patch]
func (h *GuruHandler) HandleDecideApplication(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	applicationID := ctx.Param("applicationID")

	req := request.UpdateApplicationStatusRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	application, err := h.svc.DecideApplication(ctx.Request.Context(), applicationID, req.Status, req.Notes, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrApplicationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", applicationID))
		default:
			err = fmt.Errorf("v1.HandleDecideApplication -> h.svc.DecideApplication -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, application)
}
