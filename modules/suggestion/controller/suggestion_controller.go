package controller

import (
	"time"

	"calendar-api/core/constants"
	"calendar-api/core/controller"
	"calendar-api/core/errors"
	"calendar-api/core/utils"
	eventdto "calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"
	eventrepo "calendar-api/modules/event/repository"
	"calendar-api/modules/suggestion/dto"
	"calendar-api/modules/suggestion/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SuggestionController handles alternative suggestion HTTP requests
type SuggestionController struct {
	controller.BaseController
	SuggestionService service.SuggestionServiceInterface
	EventRepo         eventrepo.EventRepositoryInterface
}

func NewSuggestionController(svc service.SuggestionServiceInterface, eventRepo eventrepo.EventRepositoryInterface) *SuggestionController {
	return &SuggestionController{
		BaseController:    controller.NewBaseController(),
		SuggestionService: svc,
		EventRepo:         eventRepo,
	}
}

func (c *SuggestionController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GenerateAlternatives handles POST /events/:id/alternatives
// @Summary Suggest alternatives for an event
// @Description Return three canned substitutes keeping the event's time slot
// @Tags Suggestion
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/alternatives [post]
func (c *SuggestionController) GenerateAlternatives(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	event, repoErr := c.EventRepo.GetEventByID(ctx.Request().Context(), userID, ctx.Param("id"))
	if repoErr != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrGetFailed, "failed to get event", repoErr))
	}
	if event == nil {
		return c.NotFound(errors.ErrNotFound, "Event not found")
	}

	result := c.SuggestionService.GenerateAlternatives(event)
	return c.SuccessResponse(ctx, result, "Alternatives generated")
}

// SuggestSmart handles POST /suggestions/smart
// @Summary Preference-aware suggestions for a free window
// @Tags Suggestion
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SmartSuggestionRequest true "Preferences and window"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/suggestions/smart [post]
func (c *SuggestionController) SuggestSmart(ctx echo.Context) error {
	if _, err := c.getUserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.SmartSuggestionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	windowStart, parseErr := time.Parse(eventdto.WireTimeFormat, req.StartTime)
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "startTime must be RFC3339")
	}
	windowEnd, parseErr := time.Parse(eventdto.WireTimeFormat, req.EndTime)
	if parseErr != nil {
		return c.BadRequest(errors.ErrInvalidInput, "endTime must be RFC3339")
	}
	if !windowEnd.After(windowStart) {
		return c.BadRequest(errors.ErrInvalidInput, "endTime must be after startTime")
	}
	if req.Category != "" && !entity.EventCategory(req.Category).Valid() {
		return c.BadRequest(errors.ErrInvalidInput, "category is not a valid value")
	}

	result := c.SuggestionService.SuggestSmart(&req, windowStart, windowEnd)
	return c.SuccessResponse(ctx, result, "Smart suggestions generated")
}
