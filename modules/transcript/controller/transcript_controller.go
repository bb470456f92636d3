package controller

import (
	"time"

	"calendar-api/core/constants"
	"calendar-api/core/controller"
	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/core/utils"
	eventdto "calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"
	eventservice "calendar-api/modules/event/service"
	"calendar-api/modules/transcript/dto"
	"calendar-api/modules/transcript/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TranscriptController handles voice transcript HTTP requests
type TranscriptController struct {
	controller.BaseController
	EventService eventservice.EventServiceInterface
}

func NewTranscriptController(eventService eventservice.EventServiceInterface) *TranscriptController {
	return &TranscriptController{
		BaseController: controller.NewBaseController(),
		EventService:   eventService,
	}
}

func (c *TranscriptController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// Parse handles POST /transcripts/parse
// @Summary Extract an event draft from a transcript
// @Description Parse an utterance like "Meeting with Bob on June 25 at 3pm" into a draft event
// @Tags Transcript
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Transcript to parse"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} errors.AppError
// @Router /private/transcripts/parse [post]
func (c *TranscriptController) Parse(ctx echo.Context) error {
	if _, err := c.getUserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ParseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	draft, appErr := service.Parse(req.Transcript, time.Now())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.ToDraftResponse(draft), "Transcript parsed")
}

// CreateFromTranscript handles POST /transcripts/events
// @Summary Create an event from a transcript
// @Description Parse an utterance and persist the extracted draft as a personal event
// @Tags Transcript
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Transcript to parse"
// @Success 200 {object} eventdto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/transcripts/events [post]
func (c *TranscriptController) CreateFromTranscript(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ParseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data")
	}

	draft, appErr := service.Parse(req.Transcript, time.Now())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	eventReq := &eventdto.EventRequest{
		Title:     draft.Title,
		StartTime: eventdto.FormatWireTime(draft.StartTime),
		EndTime:   eventdto.FormatWireTime(draft.EndTime),
		Category:  string(entity.CategoryPersonal),
		Status:    string(entity.StatusScheduled),
	}

	event, svcErr := c.EventService.CreateEvent(ctx.Request().Context(), userID, eventReq)
	if svcErr != nil {
		logger.Error("TranscriptController:CreateFromTranscript", svcErr)
		return c.ErrorResponse(ctx, svcErr)
	}

	return c.SuccessResponse(ctx, event, "Event created from transcript")
}
