package router

import (
	"calendar-api/core/middleware"
	"calendar-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes (all protected)
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())

	eventRoutes.GET("", r.EventController.ListEvents)
	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.GET("/:id", r.EventController.GetEvent)
	eventRoutes.PUT("/:id", r.EventController.UpdateEvent)
	eventRoutes.DELETE("/:id", r.EventController.DeleteEvent)

	eventRoutes.POST("/:id/promote", r.EventController.PromoteAlternative)
}
