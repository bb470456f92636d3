package worker

import (
	"calendar-api/core/config"
	"calendar-api/core/constants"
	"calendar-api/core/logger"

	"github.com/hibiken/asynq"
)

// RegisterFunc lets each module attach its task handlers to the mux
type RegisterFunc func(mux *asynq.ServeMux)

// Run starts the background task server and the periodic scheduler.
// It blocks until the server stops, so callers run it in a goroutine.
func Run(cfg *config.Config, register RegisterFunc) error {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	mux := asynq.NewServeMux()
	register(mux)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{})
	spec := cfg.Worker.MissedSweepSpec
	if spec == "" {
		spec = "@every 5m"
	}
	if _, err := scheduler.Register(spec, asynq.NewTask(constants.TaskSweepMissedEvents, nil)); err != nil {
		return err
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("Worker:Scheduler", err)
		}
	}()

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
	})
	logger.Info("background worker started")
	return srv.Run(mux)
}
