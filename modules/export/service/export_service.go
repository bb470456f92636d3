package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"calendar-api/core/config"
	"calendar-api/core/errors"
	"calendar-api/core/logger"
	"calendar-api/modules/event/entity"
	"calendar-api/modules/event/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const calendarProdID = "-//MyCalendar//Calendar Export//EN"

// ExportResult is a rendered calendar ready to stream to the client
type ExportResult struct {
	Filename string
	Content  []byte
}

// ObjectUploader stores a rendered export durably. Satisfied by the S3 client.
type ObjectUploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type ExportService struct {
	eventRepo repository.EventRepositoryInterface
	uploader  ObjectUploader
	bucket    string
}

type ExportServiceInterface interface {
	ExportCalendar(ctx context.Context, userID uuid.UUID, userName string) (*ExportResult, *errors.AppError)
}

func NewExportService(eventRepo repository.EventRepositoryInterface) ExportServiceInterface {
	svc := &ExportService{eventRepo: eventRepo}

	cfg := config.Get()
	if cfg.AWS.ExportBucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			logger.Error("ExportService:NewExportService", err)
		} else {
			svc.uploader = s3.NewFromConfig(awsCfg)
			svc.bucket = cfg.AWS.ExportBucket
		}
	}

	return svc
}

// NewExportServiceWithUploader is used by tests to inject a fake uploader
func NewExportServiceWithUploader(eventRepo repository.EventRepositoryInterface, uploader ObjectUploader, bucket string) ExportServiceInterface {
	return &ExportService{eventRepo: eventRepo, uploader: uploader, bucket: bucket}
}

// ExportCalendar renders all of the user's events as an iCalendar file.
// When a backup bucket is configured the rendered file is also uploaded,
// but upload failures never fail the download.
func (s *ExportService) ExportCalendar(ctx context.Context, userID uuid.UUID, userName string) (*ExportResult, *errors.AppError) {
	events, err := s.eventRepo.ListEvents(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list events", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProdID)

	for i := range events {
		addEvent(cal, &events[i])
	}

	content := []byte(cal.Serialize())
	filename := fmt.Sprintf("%s-calendar.ics", slug.Make(userName))

	if s.uploader != nil {
		key := fmt.Sprintf("exports/%s/%s", userID, filename)
		_, upErr := s.uploader.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(content),
			ContentType: aws.String("text/calendar"),
		})
		if upErr != nil {
			logger.Error("ExportService:ExportCalendar", upErr)
		}
	}

	return &ExportResult{Filename: filename, Content: content}, nil
}

func addEvent(cal *ics.Calendar, e *entity.Event) {
	ev := cal.AddEvent(e.ID)
	ev.SetCreatedTime(e.CreatedAt)
	ev.SetDtStampTime(time.Now())
	ev.SetStartAt(e.StartTime.UTC())
	ev.SetEndAt(e.EndTime.UTC())
	ev.SetSummary(e.Title)
	if e.Description != nil {
		ev.SetDescription(*e.Description)
	}
	if e.Location != nil {
		ev.SetLocation(*e.Location)
	}
	if e.Status == entity.StatusCancelled {
		ev.SetStatus(ics.ObjectStatusCancelled)
	} else {
		ev.SetStatus(ics.ObjectStatusConfirmed)
	}
}
