package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"calendar-api/core/errors"
)

// Draft is a best-effort event extracted from one utterance
type Draft struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

// Source yields one utterance to parse. Over HTTP the request body is the
// source; other capabilities (a speech recognizer, a message queue) can
// satisfy the same contract.
type Source interface {
	Utterance(ctx context.Context) (string, error)
}

// StringSource adapts an already-captured utterance
type StringSource string

func (s StringSource) Utterance(_ context.Context) (string, error) {
	return string(s), nil
}

// Lexical patterns, matching the grammar "<title> on <Month> <Day> at <time>".
// This is pattern matching, not language understanding: relative dates,
// ranges and anything else out of grammar fail cleanly instead of guessing.
var (
	titleRe = regexp.MustCompile(`(?i)^(.*?) (on|for) `)
	dateRe  = regexp.MustCompile(`(?i)on ([A-Za-z]+ \d{1,2})`)
	timeRe  = regexp.MustCompile(`(?i)at (\d{1,2})(?::(\d{2}))? ?(am|pm)?`)
)

var dateLayouts = []string{"January 2 2006", "Jan 2 2006"}

// Parse extracts a one-hour event draft from a transcript. The clock argument
// supplies "now" for the date and time fallbacks.
func Parse(transcript string, now time.Time) (*Draft, *errors.AppError) {
	title := strings.TrimSpace(transcript)
	if m := titleRe.FindStringSubmatch(transcript); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if title == "" {
		return nil, errors.NewAppError(errors.ErrRecognitionFailed,
			"could not recognize event details, please try again", nil)
	}

	start := now
	if m := dateRe.FindStringSubmatch(transcript); m != nil {
		parsed, err := parseDate(m[1], now)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrRecognitionFailed,
				"could not recognize event details, please try again", err)
		}
		start = parsed
	}

	if m := timeRe.FindStringSubmatch(transcript); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if strings.EqualFold(m[3], "pm") && hour < 12 {
			hour += 12
		}
		start = time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, start.Location())
	}

	return &Draft{
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}, nil
}

// ParseFromSource reads one utterance from the source and parses it
func ParseFromSource(ctx context.Context, src Source, now time.Time) (*Draft, *errors.AppError) {
	utterance, err := src.Utterance(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrRecognitionFailed,
			"could not capture utterance", err)
	}
	return Parse(utterance, now)
}

// parseDate combines a "<Month> <Day>" fragment with the current year
func parseDate(fragment string, now time.Time) (time.Time, error) {
	candidate := fmt.Sprintf("%s %d", fragment, now.Year())
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, candidate, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date fragment %q", fragment)
}
