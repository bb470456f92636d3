package service

import (
	"context"
	"testing"
	"time"

	"calendar-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func TestParseFullUtterance(t *testing.T) {
	draft, err := Parse("Meeting with Bob on June 25 at 3pm", now)

	require.Nil(t, err)
	assert.Equal(t, "Meeting with Bob", draft.Title)
	assert.Equal(t, time.Date(2026, 6, 25, 15, 0, 0, 0, time.UTC), draft.StartTime)
	assert.Equal(t, time.Date(2026, 6, 25, 16, 0, 0, 0, time.UTC), draft.EndTime)
}

func TestParseForSplitsTitle(t *testing.T) {
	draft, err := Parse("Dentist appointment for next week", now)

	require.Nil(t, err)
	assert.Equal(t, "Dentist appointment", draft.Title)
}

func TestParseTitleOnly(t *testing.T) {
	draft, err := Parse("lunch", now)

	require.Nil(t, err)
	assert.Equal(t, "lunch", draft.Title)
	assert.Equal(t, now, draft.StartTime)
	assert.Equal(t, now.Add(time.Hour), draft.EndTime)
}

func TestParseMinutesAndMeridiem(t *testing.T) {
	draft, err := Parse("Standup on March 12 at 9:45 am", now)

	require.Nil(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 9, 45, 0, 0, time.UTC), draft.StartTime)
}

func TestParsePmAddsTwelveHours(t *testing.T) {
	draft, err := Parse("Review on April 2 at 11pm", now)

	require.Nil(t, err)
	assert.Equal(t, 23, draft.StartTime.Hour())
}

func TestParseTwelvePmStaysNoon(t *testing.T) {
	draft, err := Parse("Lunch on April 2 at 12pm", now)

	require.Nil(t, err)
	assert.Equal(t, 12, draft.StartTime.Hour())
}

func TestParseAbbreviatedMonth(t *testing.T) {
	draft, err := Parse("Call on Jun 25 at 3pm", now)

	require.Nil(t, err)
	assert.Equal(t, time.Month(6), draft.StartTime.Month())
	assert.Equal(t, 25, draft.StartTime.Day())
}

func TestParseDateWithoutTimeIsMidnight(t *testing.T) {
	draft, err := Parse("Conference on July 4", now)

	require.Nil(t, err)
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), draft.StartTime)
}

func TestParseUnknownMonthFails(t *testing.T) {
	_, err := Parse("Trip on Smarch 13 at 3pm", now)

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrRecognitionFailed, err.Code)
}

func TestParseEmptyTitleFails(t *testing.T) {
	_, err := Parse(" on June 25 at 3pm", now)

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrRecognitionFailed, err.Code)
}

func TestParseEmptyTranscriptFails(t *testing.T) {
	_, err := Parse("   ", now)

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrRecognitionFailed, err.Code)
}

func TestParseFromSource(t *testing.T) {
	draft, err := ParseFromSource(context.Background(), StringSource("Gym on May 1 at 6pm"), now)

	require.Nil(t, err)
	assert.Equal(t, "Gym", draft.Title)
	assert.Equal(t, 18, draft.StartTime.Hour())
}
