package main

import (
	"calendar-api/core/logger"
	"calendar-api/core/server"

	_ "calendar-api/docs" // Swagger docs
)

// @title MyCalendar API
// @version 1.0
// @description API backend for the MyCalendar personal calendar application

// @contact.name API Support
// @contact.email support@mycalendar.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
