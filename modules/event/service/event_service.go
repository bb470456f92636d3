package service

import (
	"context"
	"time"

	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/core/utils"
	"calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"
	"calendar-api/modules/event/repository"

	"github.com/google/uuid"
)

// EventService handles calendar event business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	ListEvents(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]dto.EventResponse, *errors.AppError)
	GetEvent(ctx context.Context, userID uuid.UUID, id string) (*dto.EventResponse, *errors.AppError)
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, userID uuid.UUID, id string, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, userID uuid.UUID, id string) *errors.AppError
	PromoteAlternative(ctx context.Context, userID uuid.UUID, originalID string, req *dto.PromoteRequest) (*dto.EventResponse, *errors.AppError)
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// ListEvents returns the caller's events, optionally clipped to a window
func (s *EventService) ListEvents(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]dto.EventResponse, *errors.AppError) {
	var (
		events []entity.Event
		err    error
	)
	if from != nil && to != nil {
		events, err = s.repo.ListEventsInRange(ctx, userID, *from, *to)
	} else {
		events, err = s.repo.ListEvents(ctx, userID)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list events", err)
	}

	return dto.ToEventResponses(events), nil
}

func (s *EventService) GetEvent(ctx context.Context, userID uuid.UUID, id string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, userID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	return dto.ToEventResponse(event), nil
}

// CreateEvent persists a new event draft for the caller
func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	event, appErr := eventFromRequest(userID, req)
	if appErr != nil {
		return nil, appErr
	}
	event.ID = utils.GenerateID()

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create event", err)
	}

	logger.Info("EventService:CreateEvent", "event_id", created.ID, "user_id", userID.String())
	return dto.ToEventResponse(created), nil
}

// UpdateEvent replaces the whole record. An id owned by another user is
// indistinguishable from a missing one.
func (s *EventService) UpdateEvent(ctx context.Context, userID uuid.UUID, id string, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	event, appErr := eventFromRequest(userID, req)
	if appErr != nil {
		return nil, appErr
	}
	event.ID = id

	updated, err := s.repo.UpdateEvent(ctx, userID, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update event", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	return dto.ToEventResponse(updated), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, userID uuid.UUID, id string) *errors.AppError {
	deleted, err := s.repo.DeleteEvent(ctx, userID, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	return nil
}

// PromoteAlternative turns a selected alternative into a real scheduled event
// pointing back at the original, and cancels the original.
func (s *EventService) PromoteAlternative(ctx context.Context, userID uuid.UUID, originalID string, req *dto.PromoteRequest) (*dto.EventResponse, *errors.AppError) {
	original, err := s.repo.GetEventByID(ctx, userID, originalID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get event", err)
	}
	if original == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}

	start, parseErr := time.Parse(dto.WireTimeFormat, req.StartTime)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "startTime must be RFC3339", parseErr)
	}
	end, parseErr := time.Parse(dto.WireTimeFormat, req.EndTime)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "endTime must be RFC3339", parseErr)
	}

	promoted := &entity.Event{
		ID:              utils.GenerateID(),
		UserID:          userID.String(),
		Title:           req.Title,
		StartTime:       start,
		EndTime:         end,
		Category:        entity.EventCategory(req.Category),
		Status:          entity.StatusScheduled,
		IsAlternative:   true,
		OriginalEventID: &original.ID,
	}
	if req.Description != "" {
		promoted.Description = &req.Description
	}
	if req.Location != "" {
		promoted.Location = &req.Location
	}

	created, err := s.repo.CreateEvent(ctx, promoted)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create promoted event", err)
	}

	// The replaced event steps aside rather than disappearing
	original.Status = entity.StatusCancelled
	if _, err := s.repo.UpdateEvent(ctx, userID, original); err != nil {
		logger.Error("EventService:PromoteAlternative:CancelOriginal", err)
	}

	logger.Info("EventService:PromoteAlternative",
		"event_id", created.ID,
		"original_event_id", original.ID,
		"user_id", userID.String(),
	)
	return dto.ToEventResponse(created), nil
}

// eventFromRequest builds the entity; the validator has already checked
// required fields, formats and enum membership.
func eventFromRequest(userID uuid.UUID, req *dto.EventRequest) (*entity.Event, *errors.AppError) {
	start, err := time.Parse(dto.WireTimeFormat, req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "startTime must be RFC3339", err)
	}
	end, err := time.Parse(dto.WireTimeFormat, req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "endTime must be RFC3339", err)
	}

	status := entity.StatusScheduled
	if req.Status != "" {
		status = entity.EventStatus(req.Status)
	}

	event := &entity.Event{
		UserID:    userID.String(),
		Title:     req.Title,
		StartTime: start,
		EndTime:   end,
		Category:  entity.EventCategory(req.Category),
		Status:    status,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Location != "" {
		event.Location = &req.Location
	}
	if req.Color != "" {
		event.Color = &req.Color
	}

	return event, nil
}
