package event

import (
	"calendar-api/core/constants"
	"calendar-api/core/database"
	"calendar-api/core/middleware"
	"calendar-api/modules/event/controller"
	"calendar-api/modules/event/repository"
	"calendar-api/modules/event/router"
	"calendar-api/modules/event/service"
	"calendar-api/modules/event/worker"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}

// RegisterTasks attaches the module's background handlers to the asynq mux
func RegisterTasks(mux *asynq.ServeMux, db database.Database) {
	repo := repository.NewEventRepository(db)
	mux.Handle(constants.TaskSweepMissedEvents, worker.NewMissedSweepHandler(repo))
}

// GetService creates an EventService for use by other modules
func GetService(db database.Database) service.EventServiceInterface {
	return service.NewEventService(repository.NewEventRepository(db))
}
