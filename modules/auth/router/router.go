package router

import (
	"calendar-api/core/middleware"
	"calendar-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter handles authentication routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers authentication routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.POST("/register", r.AuthController.Register)
	authRoutes.POST("/login", r.AuthController.Login)
	authRoutes.GET("/google/login", r.AuthController.GoogleLogin)
	authRoutes.GET("/google/callback", r.AuthController.GoogleCallback)

	privateRoutes := v1.Group("/private")
	privateAuth := privateRoutes.Group("/auth", mw.AuthMiddleware())
	privateAuth.POST("/logout", r.AuthController.Logout)
}
