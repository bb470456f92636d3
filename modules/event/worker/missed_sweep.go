package worker

import (
	"context"
	"time"

	"calendar-api/core/constants"
	"calendar-api/core/logger"
	"calendar-api/modules/event/repository"

	"github.com/hibiken/asynq"
)

// MissedSweepHandler marks scheduled events whose window has passed as missed
type MissedSweepHandler struct {
	repo repository.EventRepositoryInterface
}

func NewMissedSweepHandler(repo repository.EventRepositoryInterface) *MissedSweepHandler {
	return &MissedSweepHandler{repo: repo}
}

// NewMissedSweepTask builds the periodic sweep task
func NewMissedSweepTask() *asynq.Task {
	return asynq.NewTask(constants.TaskSweepMissedEvents, nil)
}

// ProcessTask implements asynq.Handler
func (h *MissedSweepHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	count, err := h.repo.MarkMissedBefore(ctx, time.Now())
	if err != nil {
		logger.Error("MissedSweepHandler:ProcessTask", err)
		return err
	}

	if count > 0 {
		logger.Info("MissedSweepHandler:ProcessTask", "marked_missed", count)
	}
	return nil
}
