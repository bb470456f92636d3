package server

import (
	"fmt"

	"calendar-api/core/cache"
	"calendar-api/core/config"
	"calendar-api/core/database"
	"calendar-api/core/logger"
	"calendar-api/core/worker"
	"calendar-api/modules/auth"
	"calendar-api/modules/event"
	"calendar-api/modules/export"
	"calendar-api/modules/suggestion"
	"calendar-api/modules/transcript"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run wires every module and starts the HTTP server. It blocks until the
// server stops and returns the terminal error.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel, cfg.Server.Development)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	c, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	mw := auth.Init(e, db, c)
	event.Init(e, db, mw)
	suggestion.Init(e, db, mw)
	transcript.Init(e, db, mw)
	export.Init(e, db, mw)

	if cfg.Worker.Enabled {
		go func() {
			if err := worker.Run(cfg, func(mux *asynq.ServeMux) {
				event.RegisterTasks(mux, db)
			}); err != nil {
				logger.Error("Server:Worker", err)
			}
		}()
	}

	return e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
}
