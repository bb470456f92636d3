package repository

import (
	"context"
	"database/sql"
	"time"

	"calendar-api/core/database"
	"calendar-api/core/logger"
	"calendar-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event table access. Every query is scoped by the
// owning user id; rows belonging to other users are simply not visible.
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	ListEvents(ctx context.Context, userID uuid.UUID) ([]entity.Event, error)
	ListEventsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Event, error)
	GetEventByID(ctx context.Context, userID uuid.UUID, id string) (*entity.Event, error)
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	UpdateEvent(ctx context.Context, userID uuid.UUID, event *entity.Event) (*entity.Event, error)
	DeleteEvent(ctx context.Context, userID uuid.UUID, id string) (bool, error)
	MarkMissedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

const eventColumns = `id, user_id, title, description, location, start_time, end_time,
	       category, status, color, is_alternative, original_event_id, created_at, updated_at`

func (r *EventRepository) ListEvents(ctx context.Context, userID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = $1
		ORDER BY start_time ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("EventRepository:ListEvents", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) ListEventsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID, from, to)
	if err != nil {
		logger.Error("EventRepository:ListEventsInRange", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, userID uuid.UUID, id string) (*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND user_id = $2
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (id, user_id, title, description, location, start_time, end_time,
		                    category, status, color, is_alternative, original_event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + eventColumns + `
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.ID, event.UserID, event.Title, event.Description, event.Location,
		event.StartTime, event.EndTime, event.Category, event.Status, event.Color,
		event.IsAlternative, event.OriginalEventID)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}

	return &created, nil
}

// UpdateEvent replaces the record. Returns nil when no row matched the id and
// owner, so foreign events surface as not found.
func (r *EventRepository) UpdateEvent(ctx context.Context, userID uuid.UUID, event *entity.Event) (*entity.Event, error) {
	query := `
		UPDATE events
		SET title = $3, description = $4, location = $5, start_time = $6, end_time = $7,
		    category = $8, status = $9, color = $10, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + eventColumns + `
	`

	var updated entity.Event
	err := r.DB.GetContext(ctx, &updated, query,
		event.ID, userID, event.Title, event.Description, event.Location,
		event.StartTime, event.EndTime, event.Category, event.Status, event.Color)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:UpdateEvent", err)
		return nil, err
	}

	return &updated, nil
}

// DeleteEvent reports whether a row was removed; a miss means the id does not
// exist or belongs to another user.
func (r *EventRepository) DeleteEvent(ctx context.Context, userID uuid.UUID, id string) (bool, error) {
	query := `DELETE FROM events WHERE id = $1 AND user_id = $2 RETURNING id`

	var deleted string
	err := r.DB.GetContext(ctx, &deleted, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("EventRepository:DeleteEvent", err)
		return false, err
	}

	return true, nil
}

// MarkMissedBefore flips scheduled events whose window has passed to missed
func (r *EventRepository) MarkMissedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
		UPDATE events
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND end_time < $3
		RETURNING id
	`

	var ids []string
	err := r.DB.SelectContext(ctx, &ids, query, entity.StatusMissed, entity.StatusScheduled, cutoff)
	if err != nil {
		logger.Error("EventRepository:MarkMissedBefore", err)
		return 0, err
	}

	return len(ids), nil
}
