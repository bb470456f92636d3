package auth

import (
	"calendar-api/core/cache"
	"calendar-api/core/database"
	"calendar-api/core/middleware"
	"calendar-api/modules/auth/controller"
	"calendar-api/modules/auth/repository"
	"calendar-api/modules/auth/router"
	"calendar-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module, registers routes and returns the auth
// middleware other modules guard their routes with
func Init(e *echo.Echo, db database.Database, c cache.Cache) *middleware.Middleware {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	mw := middleware.NewMiddleware(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)

	return mw
}
