package validator

import (
	"testing"

	"calendar-api/modules/event/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *dto.EventRequest {
	return &dto.EventRequest{
		Title:     "Team standup",
		StartTime: "2026-06-25T15:00:00Z",
		EndTime:   "2026-06-25T16:00:00Z",
		Category:  "work",
	}
}


func TestValidateEventRequestAccepts(t *testing.T) {
	result := ValidateEventRequest(validRequest())
	assert.False(t, result.HasError())
}

func TestValidateEventRequestRequiredFields(t *testing.T) {
	result := ValidateEventRequest(&dto.EventRequest{})

	require.True(t, result.HasError())
	fields := make(map[string]bool)
	for _, e := range result.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["startTime"])
	assert.True(t, fields["endTime"])
	assert.True(t, fields["category"])
}

func TestValidateEventRequestEndBeforeStart(t *testing.T) {
	req := validRequest()
	req.StartTime = "2026-06-25T16:00:00Z"
	req.EndTime = "2026-06-25T15:00:00Z"

	result := ValidateEventRequest(req)

	require.True(t, result.HasError())
	assert.Equal(t, "endTime", result.Errors[0].Field)
	assert.Equal(t, "endTime must be after startTime", result.Errors[0].Message)
}

func TestValidateEventRequestEqualTimesRejected(t *testing.T) {
	req := validRequest()
	req.EndTime = req.StartTime

	result := ValidateEventRequest(req)

	require.True(t, result.HasError())
	assert.Equal(t, "endTime", result.Errors[0].Field)
}

func TestValidateEventRequestBadTimestamp(t *testing.T) {
	req := validRequest()
	req.StartTime = "June 25 at 3pm"

	result := ValidateEventRequest(req)

	require.True(t, result.HasError())
	assert.Equal(t, "startTime", result.Errors[0].Field)
}

func TestValidateEventRequestUnknownCategory(t *testing.T) {
	req := validRequest()
	req.Category = "meeting"

	result := ValidateEventRequest(req)

	require.True(t, result.HasError())
	assert.Equal(t, "category", result.Errors[0].Field)
}

func TestValidateEventRequestUnknownStatus(t *testing.T) {
	req := validRequest()
	req.Status = "done"

	result := ValidateEventRequest(req)

	require.True(t, result.HasError())
	assert.Equal(t, "status", result.Errors[0].Field)
}

func TestValidatePromoteRequestConfidenceBounds(t *testing.T) {
	req := &dto.PromoteRequest{
		Title:     "Home workout",
		StartTime: "2026-06-25T15:00:00Z",
		EndTime:   "2026-06-25T16:00:00Z",
		Category:  "health",
	}

	req.Confidence = 1.2
	assert.True(t, ValidatePromoteRequest(req).HasError())

	req.Confidence = -0.1
	assert.True(t, ValidatePromoteRequest(req).HasError())

	req.Confidence = 0.9
	assert.False(t, ValidatePromoteRequest(req).HasError())
}
