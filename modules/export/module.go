package export

import (
	"calendar-api/core/database"
	"calendar-api/core/middleware"
	eventrepo "calendar-api/modules/event/repository"
	"calendar-api/modules/export/controller"
	"calendar-api/modules/export/router"
	"calendar-api/modules/export/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the export module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	svc := service.NewExportService(eventrepo.NewEventRepository(db))
	ctrl := controller.NewExportController(svc)
	rtr := router.NewExportRouter(ctrl)

	rtr.Setup(e, mw)
}
