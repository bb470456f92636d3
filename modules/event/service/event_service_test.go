package service

import (
	"context"
	"testing"
	"time"

	"calendar-api/core/errors"
	"calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo keeps events in a map and enforces ownership the way the
// SQL predicates do: a foreign id behaves exactly like a missing one.
type fakeEventRepo struct {
	events map[string]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*entity.Event)}
}

func (f *fakeEventRepo) ListEvents(_ context.Context, userID uuid.UUID) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range f.events {
		if e.UserID == userID.String() {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListEventsInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range f.events {
		if e.UserID == userID.String() && e.StartTime.Before(to) && e.EndTime.After(from) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, userID uuid.UUID, id string) (*entity.Event, error) {
	e, ok := f.events[id]
	if !ok || e.UserID != userID.String() {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	copied := *event
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.events[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (f *fakeEventRepo) UpdateEvent(_ context.Context, userID uuid.UUID, event *entity.Event) (*entity.Event, error) {
	existing, ok := f.events[event.ID]
	if !ok || existing.UserID != userID.String() {
		return nil, nil
	}
	copied := *event
	copied.UserID = existing.UserID
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	f.events[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, userID uuid.UUID, id string) (bool, error) {
	e, ok := f.events[id]
	if !ok || e.UserID != userID.String() {
		return false, nil
	}
	delete(f.events, id)
	return true, nil
}

func (f *fakeEventRepo) MarkMissedBefore(_ context.Context, cutoff time.Time) (int, error) {
	n := 0
	for _, e := range f.events {
		if e.Status == entity.StatusScheduled && e.EndTime.Before(cutoff) {
			e.Status = entity.StatusMissed
			n++
		}
	}
	return n, nil
}

var (
	owner    = uuid.New()
	stranger = uuid.New()
)

func createTestEvent(t *testing.T, svc EventServiceInterface) *dto.EventResponse {
	t.Helper()
	created, appErr := svc.CreateEvent(context.Background(), owner, &dto.EventRequest{
		Title:     "Team standup",
		StartTime: "2026-06-25T15:00:00Z",
		EndTime:   "2026-06-25T16:00:00Z",
		Category:  "work",
	})
	require.Nil(t, appErr)
	return created
}

func TestCreateEventAssignsIDAndDefaults(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	created := createTestEvent(t, svc)

	assert.Len(t, created.ID, 9)
	assert.Equal(t, "scheduled", created.Status)
	assert.Equal(t, "2026-06-25T15:00:00Z", created.StartTime)
	assert.False(t, created.IsAlternative)
}

func TestGetEventForeignUserIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	created := createTestEvent(t, svc)

	_, appErr := svc.GetEvent(context.Background(), stranger, created.ID)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUpdateEventForeignUserIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	created := createTestEvent(t, svc)

	_, appErr := svc.UpdateEvent(context.Background(), stranger, created.ID, &dto.EventRequest{
		Title:     "Hijacked",
		StartTime: "2026-06-25T15:00:00Z",
		EndTime:   "2026-06-25T16:00:00Z",
		Category:  "work",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	// The record is untouched for its owner
	got, getErr := svc.GetEvent(context.Background(), owner, created.ID)
	require.Nil(t, getErr)
	assert.Equal(t, "Team standup", got.Title)
}

func TestDeleteEventForeignUserIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	created := createTestEvent(t, svc)

	appErr := svc.DeleteEvent(context.Background(), stranger, created.ID)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestDeleteEventMissingIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	appErr := svc.DeleteEvent(context.Background(), owner, "nosuchid1")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestListEventsWindowOverlap(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	createTestEvent(t, svc)

	// Window starting mid-event still includes it
	from := time.Date(2026, 6, 25, 15, 30, 0, 0, time.UTC)
	to := time.Date(2026, 6, 25, 17, 0, 0, 0, time.UTC)
	events, appErr := svc.ListEvents(context.Background(), owner, &from, &to)
	require.Nil(t, appErr)
	assert.Len(t, events, 1)

	// Window strictly after the event excludes it
	from = time.Date(2026, 6, 25, 16, 0, 0, 0, time.UTC)
	to = time.Date(2026, 6, 25, 17, 0, 0, 0, time.UTC)
	events, appErr = svc.ListEvents(context.Background(), owner, &from, &to)
	require.Nil(t, appErr)
	assert.Empty(t, events)
}

func TestPromoteAlternative(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	original := createTestEvent(t, svc)

	promoted, appErr := svc.PromoteAlternative(context.Background(), owner, original.ID, &dto.PromoteRequest{
		Title:      "Home workout",
		StartTime:  "2026-06-25T15:00:00Z",
		EndTime:    "2026-06-25T16:00:00Z",
		Category:   "health",
		Confidence: 0.9,
	})

	require.Nil(t, appErr)
	assert.True(t, promoted.IsAlternative)
	assert.Equal(t, original.ID, promoted.OriginalEventID)
	assert.Equal(t, "scheduled", promoted.Status)
	assert.NotEqual(t, original.ID, promoted.ID)

	// Promoting cancels the replaced event
	got, getErr := svc.GetEvent(context.Background(), owner, original.ID)
	require.Nil(t, getErr)
	assert.Equal(t, "cancelled", got.Status)
}

func TestPromoteAlternativeForeignOriginalIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	original := createTestEvent(t, svc)

	_, appErr := svc.PromoteAlternative(context.Background(), stranger, original.ID, &dto.PromoteRequest{
		Title:     "Home workout",
		StartTime: "2026-06-25T15:00:00Z",
		EndTime:   "2026-06-25T16:00:00Z",
		Category:  "health",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestMarkMissedSweep(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	created := createTestEvent(t, svc)

	n, err := repo.MarkMissedBefore(context.Background(), time.Date(2026, 6, 26, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, getErr := svc.GetEvent(context.Background(), owner, created.ID)
	require.Nil(t, getErr)
	assert.Equal(t, "missed", got.Status)
}
