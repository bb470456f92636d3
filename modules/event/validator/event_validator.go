package validator

import (
	"time"

	"calendar-api/core/controller"
	"calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"
)

// ValidateEventRequest checks the create/update payload. Timestamps must be
// RFC3339 and endTime must be strictly after startTime; categories and
// statuses outside the enumerations are rejected, never coerced.
func ValidateEventRequest(req *dto.EventRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true}

	if req.Title == "" {
		result.AddError("title", "title is required")
	}

	var start, end time.Time
	var startOK, endOK bool

	if req.StartTime == "" {
		result.AddError("startTime", "startTime is required")
	} else if t, err := time.Parse(dto.WireTimeFormat, req.StartTime); err != nil {
		result.AddError("startTime", "startTime must be RFC3339")
	} else {
		start, startOK = t, true
	}

	if req.EndTime == "" {
		result.AddError("endTime", "endTime is required")
	} else if t, err := time.Parse(dto.WireTimeFormat, req.EndTime); err != nil {
		result.AddError("endTime", "endTime must be RFC3339")
	} else {
		end, endOK = t, true
	}

	if startOK && endOK && !end.After(start) {
		result.AddError("endTime", "endTime must be after startTime")
	}

	if req.Category == "" {
		result.AddError("category", "category is required")
	} else if !entity.EventCategory(req.Category).Valid() {
		result.AddError("category", "category is not a valid value")
	}

	if req.Status != "" && !entity.EventStatus(req.Status).Valid() {
		result.AddError("status", "status is not a valid value")
	}

	return result
}

// ValidatePromoteRequest checks the selected alternative payload
func ValidatePromoteRequest(req *dto.PromoteRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true}

	if req.Title == "" {
		result.AddError("title", "title is required")
	}

	var start, end time.Time
	var startOK, endOK bool

	if req.StartTime == "" {
		result.AddError("startTime", "startTime is required")
	} else if t, err := time.Parse(dto.WireTimeFormat, req.StartTime); err != nil {
		result.AddError("startTime", "startTime must be RFC3339")
	} else {
		start, startOK = t, true
	}

	if req.EndTime == "" {
		result.AddError("endTime", "endTime is required")
	} else if t, err := time.Parse(dto.WireTimeFormat, req.EndTime); err != nil {
		result.AddError("endTime", "endTime must be RFC3339")
	} else {
		end, endOK = t, true
	}

	if startOK && endOK && !end.After(start) {
		result.AddError("endTime", "endTime must be after startTime")
	}

	if req.Category == "" {
		result.AddError("category", "category is required")
	} else if !entity.EventCategory(req.Category).Valid() {
		result.AddError("category", "category is not a valid value")
	}

	if req.Confidence < 0 || req.Confidence > 1 {
		result.AddError("confidence", "confidence must be within [0,1]")
	}

	return result
}
