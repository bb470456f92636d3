package controller

import (
	"time"

	"calendar-api/core/constants"
	"calendar-api/core/controller"
	"calendar-api/core/errors"
	"calendar-api/core/utils"
	"calendar-api/modules/event/dto"
	"calendar-api/modules/event/service"
	"calendar-api/modules/event/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles calendar event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *EventController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// ListEvents handles GET /events
// @Summary List calendar events
// @Description List the caller's events, optionally clipped to a from/to window
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param from query string false "RFC3339 window start"
// @Param to query string false "RFC3339 window end"
// @Success 200 {array} dto.EventResponse
// @Failure 401 {object} errors.AppError
// @Router /private/events [get]
func (c *EventController) ListEvents(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var from, to *time.Time
	if fromStr := ctx.QueryParam("from"); fromStr != "" {
		t, parseErr := time.Parse(dto.WireTimeFormat, fromStr)
		if parseErr != nil {
			return c.BadRequest(errors.ErrInvalidInput, "from must be RFC3339")
		}
		from = &t
	}
	if toStr := ctx.QueryParam("to"); toStr != "" {
		t, parseErr := time.Parse(dto.WireTimeFormat, toStr)
		if parseErr != nil {
			return c.BadRequest(errors.ErrInvalidInput, "to must be RFC3339")
		}
		to = &t
	}
	if (from == nil) != (to == nil) {
		return c.BadRequest(errors.ErrInvalidInput, "from and to must be supplied together")
	}

	result, appErr := c.EventService.ListEvents(ctx.Request().Context(), userID, from, to)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetEvent handles GET /events/:id
// @Summary Get an event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.EventService.GetEvent(ctx.Request().Context(), userID, ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Event data"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateEventRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// UpdateEvent handles PUT /events/:id
// @Summary Update an event
// @Description Replace the whole event record
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.EventRequest true "Event data"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [put]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidateEventRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), userID, ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), userID, ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

// PromoteAlternative handles POST /events/:id/promote
// @Summary Promote a suggested alternative
// @Description Create a real scheduled event from a selected alternative and cancel the original
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Original event ID"
// @Param request body dto.PromoteRequest true "Selected alternative"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/promote [post]
func (c *EventController) PromoteAlternative(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.PromoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	validationResult := validator.ValidatePromoteRequest(&req)
	if validationResult.HasError() {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	result, appErr := c.EventService.PromoteAlternative(ctx.Request().Context(), userID, ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Alternative promoted successfully")
}
