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

type RegistrationService interface {
	RegisterForEvent(ctx context.Context, input service.RegisterInput) (service.RegisterResult, error)
	GetRegistration(ctx context.Context, id string) (domain.Registration, error)
	ListRegistrations(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error)
	UpdateStatus(ctx context.Context, id, status, notes string) (domain.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register the authenticated user for an event
// @Description  Paid events without a payment_id get a payment order back
// @Description  instead of a registration; retry with the settled payment id.
// @Tags         registrations
// @Produce      json
// @Param        request   body      request.RegisterForEventRequest true "request body"
// @Success      200      {object}   response.PaymentRequiredResponse
// @Success      201      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event-participants [post]
func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	req := request.RegisterForEventRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.RegisterForEvent(ctx.Request.Context(), service.RegisterInput{
		UserID:    user.ID,
		EventID:   req.EventID,
		Notes:     req.Notes,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", user.ID))
		case errors.Is(err, service.ErrAlreadyRegistered),
			errors.Is(err, service.ErrEventFull):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrPaymentGateway):
			response.RenderErr(ctx, response.ErrGatewayFailure(err))
		default:
			err = fmt.Errorf("v1.HandleRegister -> h.svc.RegisterForEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	if result.RequiresPayment {
		ctx.JSON(http.StatusOK, response.PaymentRequiredResponse{
			RequiresPayment: true,
			Order:           result.Order,
			KeyID:           result.GatewayKeyID,
		})

		return
	}

	ctx.JSON(http.StatusCreated, result.Registration)
}

// HandleListRegistrations godoc
// @Summary      List registrations
// @Tags         registrations
// @Produce      json
// @Param        event_id query     string false "filter by event"
// @Param        user_id  query     string false "filter by user"
// @Param        status   query     string false "filter by status"
// @Success      200      {array}    domain.Registration
// @Failure      500      {object}   response.Err
// @Router       /event-participants [get]
func (h *RegistrationHandler) HandleListRegistrations(ctx *gin.Context) {
	filter := domain.RegistrationFilter{
		EventID: ctx.Query("event_id"),
		UserID:  ctx.Query("user_id"),
		Status:  ctx.Query("status"),
	}

	registrations, err := h.svc.ListRegistrations(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleGetRegistration godoc
// @Summary      Get a registration by ID
// @Tags         registrations
// @Produce      json
// @Param        registrationID path string true "registration ID"
// @Success      200      {object}   domain.Registration
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event-participants/{registrationID} [get]
func (h *RegistrationHandler) HandleGetRegistration(ctx *gin.Context) {
	registrationID := ctx.Param("registrationID")

	registration, err := h.svc.GetRegistration(ctx.Request.Context(), registrationID)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))

			return
		}

		err = fmt.Errorf("v1.HandleGetRegistration -> h.svc.GetRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleUpdateStatus godoc
// @Summary      Approve or reject a registration
// @Tags         registrations
// @Produce      json
// @Param        registrationID path   string true "registration ID"
// @Param        request  body       request.UpdateRegistrationStatusRequest true "request body"
// @Success      200      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event-participants/{registrationID} [put]
func (h *RegistrationHandler) HandleUpdateStatus(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	registrationID := ctx.Param("registrationID")

	req := request.UpdateRegistrationStatusRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	registration, err := h.svc.GetRegistration(ctx.Request.Context(), registrationID)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStatus -> h.svc.GetRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	// Only the event creator or an admin may review registrations.
	if user.Role != domain.RoleAdmin && user.ID != registration.Event.CreatorID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("only the event creator or an admin can review registrations")))

		return
	}

	updated, err := h.svc.UpdateStatus(ctx.Request.Context(), registrationID, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrRegistrationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))
		default:
			err = fmt.Errorf("v1.HandleUpdateStatus -> h.svc.UpdateStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteRegistration godoc
// @Summary      Cancel a registration
// @Tags         registrations
// @Produce      json
// @Param        registrationID path string true "registration ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /event-participants/{registrationID} [delete]
func (h *RegistrationHandler) HandleDeleteRegistration(ctx *gin.Context) {
	user, err := getUserFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))

		return
	}

	registrationID := ctx.Param("registrationID")

	registration, err := h.svc.GetRegistration(ctx.Request.Context(), registrationID)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", registrationID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRegistration -> h.svc.GetRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if user.Role != domain.RoleAdmin && user.ID != registration.UserID && user.ID != registration.Event.CreatorID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("only the registrant, the event creator or an admin can cancel a registration")))

		return
	}

	if err = h.svc.DeleteRegistration(ctx.Request.Context(), registrationID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteRegistration -> h.svc.DeleteRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
