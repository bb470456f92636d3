package router

import (
	"calendar-api/core/middleware"
	"calendar-api/modules/transcript/controller"

	"github.com/labstack/echo/v4"
)

// TranscriptRouter handles transcript routes
type TranscriptRouter struct {
	TranscriptController *controller.TranscriptController
}

func NewTranscriptRouter(transcriptController *controller.TranscriptController) *TranscriptRouter {
	return &TranscriptRouter{
		TranscriptController: transcriptController,
	}
}

// Setup registers transcript routes (all protected)
func (r *TranscriptRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	privateRoutes.POST("/transcripts/parse", r.TranscriptController.Parse, mw.AuthMiddleware())
	privateRoutes.POST("/transcripts/events", r.TranscriptController.CreateFromTranscript, mw.AuthMiddleware())
}
