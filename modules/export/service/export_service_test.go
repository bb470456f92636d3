package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"calendar-api/modules/event/entity"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []entity.Event
}

func (f *fakeEventRepo) ListEvents(_ context.Context, _ uuid.UUID) ([]entity.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListEventsInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]entity.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, _ uuid.UUID, _ string) (*entity.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, e *entity.Event) (*entity.Event, error) {
	return e, nil
}

func (f *fakeEventRepo) UpdateEvent(_ context.Context, _ uuid.UUID, e *entity.Event) (*entity.Event, error) {
	return e, nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, nil
}

func (f *fakeEventRepo) MarkMissedBefore(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

type fakeUploader struct {
	calls  int
	bucket string
	key    string
}

func (f *fakeUploader) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.bucket = *params.Bucket
	f.key = *params.Key
	return &s3.PutObjectOutput{}, nil
}

func strPtr(s string) *string { return &s }

func sampleEvents() []entity.Event {
	return []entity.Event{
		{
			ID:        "abc123def",
			UserID:    "user-1",
			Title:     "Team standup",
			Location:  strPtr("Room 4"),
			StartTime: time.Date(2026, 6, 25, 15, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 6, 25, 16, 0, 0, 0, time.UTC),
			Category:  entity.CategoryWork,
			Status:    entity.StatusScheduled,
			CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "xyz789ghi",
			UserID:    "user-1",
			Title:     "Old plans",
			StartTime: time.Date(2026, 6, 26, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 6, 26, 11, 0, 0, 0, time.UTC),
			Category:  entity.CategoryPersonal,
			Status:    entity.StatusCancelled,
			CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportCalendarRendersICS(t *testing.T) {
	svc := NewExportServiceWithUploader(&fakeEventRepo{events: sampleEvents()}, nil, "")

	result, appErr := svc.ExportCalendar(context.Background(), uuid.New(), "Jane Doe")

	require.Nil(t, appErr)
	assert.Equal(t, "jane-doe-calendar.ics", result.Filename)

	content := string(result.Content)
	assert.Contains(t, content, "BEGIN:VCALENDAR")
	assert.Contains(t, content, "END:VCALENDAR")
	assert.Contains(t, content, "SUMMARY:Team standup")
	assert.Contains(t, content, "LOCATION:Room 4")
	assert.Contains(t, content, "UID:abc123def")
	assert.Contains(t, content, "STATUS:CANCELLED")
	assert.Equal(t, 2, strings.Count(content, "BEGIN:VEVENT"))
}

func TestExportCalendarUploadsWhenConfigured(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewExportServiceWithUploader(&fakeEventRepo{events: sampleEvents()}, uploader, "calendar-backups")
	userID := uuid.New()

	result, appErr := svc.ExportCalendar(context.Background(), userID, "Jane Doe")

	require.Nil(t, appErr)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, "calendar-backups", uploader.bucket)
	assert.Equal(t, "exports/"+userID.String()+"/"+result.Filename, uploader.key)
}

func TestExportCalendarEmpty(t *testing.T) {
	svc := NewExportServiceWithUploader(&fakeEventRepo{}, nil, "")

	result, appErr := svc.ExportCalendar(context.Background(), uuid.New(), "Jane Doe")

	require.Nil(t, appErr)
	assert.Contains(t, string(result.Content), "BEGIN:VCALENDAR")
	assert.NotContains(t, string(result.Content), "BEGIN:VEVENT")
}
