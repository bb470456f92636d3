package router

import (
	"calendar-api/core/middleware"
	"calendar-api/modules/export/controller"

	"github.com/labstack/echo/v4"
)

// ExportRouter handles export routes
type ExportRouter struct {
	ExportController *controller.ExportController
}

func NewExportRouter(exportController *controller.ExportController) *ExportRouter {
	return &ExportRouter{
		ExportController: exportController,
	}
}

// Setup registers export routes (all protected)
func (r *ExportRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	privateRoutes.GET("/export/calendar.ics", r.ExportController.ExportCalendar, mw.AuthMiddleware())
}
