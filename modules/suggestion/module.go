package suggestion

import (
	"calendar-api/core/database"
	"calendar-api/core/middleware"
	eventrepo "calendar-api/modules/event/repository"
	"calendar-api/modules/suggestion/controller"
	"calendar-api/modules/suggestion/router"
	"calendar-api/modules/suggestion/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the suggestion module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	svc := service.NewSuggestionService()
	ctrl := controller.NewSuggestionController(svc, eventrepo.NewEventRepository(db))
	rtr := router.NewSuggestionRouter(ctrl)

	rtr.Setup(e, mw)
}
