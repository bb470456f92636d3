package controller

import (
	"fmt"

	"calendar-api/core/constants"
	"calendar-api/core/controller"
	"calendar-api/core/errors"
	"calendar-api/core/utils"
	"calendar-api/modules/export/service"

	"github.com/labstack/echo/v4"
)

// ExportController handles calendar export HTTP requests
type ExportController struct {
	controller.BaseController
	ExportService service.ExportServiceInterface
}

func NewExportController(exportService service.ExportServiceInterface) *ExportController {
	return &ExportController{
		BaseController: controller.NewBaseController(),
		ExportService:  exportService,
	}
}

func (c *ExportController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims, nil
}

// ExportCalendar handles GET /export/calendar.ics
// @Summary Download the calendar as an iCalendar file
// @Description Render every event of the authenticated user as an .ics download
// @Tags Export
// @Security BearerAuth
// @Produce text/calendar
// @Success 200 {string} string "iCalendar payload"
// @Failure 401 {object} errors.AppError
// @Router /private/export/calendar.ics [get]
func (c *ExportController) ExportCalendar(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ExportService.ExportCalendar(ctx.Request().Context(), claims.UserID, claims.Name)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, result.Filename))
	return ctx.Blob(200, "text/calendar; charset=utf-8", result.Content)
}
