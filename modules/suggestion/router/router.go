package router

import (
	"calendar-api/core/middleware"
	"calendar-api/modules/suggestion/controller"

	"github.com/labstack/echo/v4"
)

// SuggestionRouter handles suggestion routes
type SuggestionRouter struct {
	SuggestionController *controller.SuggestionController
}

func NewSuggestionRouter(suggestionController *controller.SuggestionController) *SuggestionRouter {
	return &SuggestionRouter{
		SuggestionController: suggestionController,
	}
}

// Setup registers suggestion routes (all protected)
func (r *SuggestionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	privateRoutes.POST("/events/:id/alternatives", r.SuggestionController.GenerateAlternatives, mw.AuthMiddleware())
	privateRoutes.POST("/suggestions/smart", r.SuggestionController.SuggestSmart, mw.AuthMiddleware())
}
