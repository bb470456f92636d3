package transcript

import (
	"calendar-api/core/database"
	"calendar-api/core/middleware"
	"calendar-api/modules/event"
	"calendar-api/modules/transcript/controller"
	"calendar-api/modules/transcript/router"

	"github.com/labstack/echo/v4"
)

// Init initializes the transcript module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	ctrl := controller.NewTranscriptController(event.GetService(db))
	rtr := router.NewTranscriptRouter(ctrl)

	rtr.Setup(e, mw)
}
