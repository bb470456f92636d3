package dto

import (
	"time"

	"calendar-api/modules/event/entity"
)

// WireTimeFormat is the single canonical datetime representation crossing the
// API boundary: RFC 3339 UTC at seconds precision. The field names are
// camelCase startTime/endTime only; no snake_case aliases are accepted.
const WireTimeFormat = time.RFC3339

// ===================== Request DTOs =====================

// EventRequest is the create/update payload. Update replaces the whole record.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"` // RFC3339
	EndTime     string `json:"endTime"`   // RFC3339
	Category    string `json:"category"`
	Status      string `json:"status"` // defaults to scheduled
	Color       string `json:"color"`
}

// PromoteRequest carries the selected alternative to turn into a real event
type PromoteRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	StartTime   string  `json:"startTime"` // RFC3339
	EndTime     string  `json:"endTime"`   // RFC3339
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

// ===================== Response DTOs =====================

// EventResponse is the persisted event wire shape
type EventResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Location        string `json:"location,omitempty"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Category        string `json:"category"`
	Status          string `json:"status"`
	Color           string `json:"color,omitempty"`
	IsAlternative   bool   `json:"isAlternative,omitempty"`
	OriginalEventID string `json:"originalEventId,omitempty"`
}

// ===================== Mapper Functions =====================

// FormatWireTime normalizes a timestamp to the canonical wire representation
func FormatWireTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(WireTimeFormat)
}

// ToEventResponse maps entity to DTO
func ToEventResponse(e *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Title:         e.Title,
		StartTime:     FormatWireTime(e.StartTime),
		EndTime:       FormatWireTime(e.EndTime),
		Category:      string(e.Category),
		Status:        string(e.Status),
		IsAlternative: e.IsAlternative,
	}

	if e.Description != nil {
		resp.Description = *e.Description
	}
	if e.Location != nil {
		resp.Location = *e.Location
	}
	if e.Color != nil {
		resp.Color = *e.Color
	}
	if e.OriginalEventID != nil {
		resp.OriginalEventID = *e.OriginalEventID
	}

	return resp
}

// ToEventResponses maps a slice of entities
func ToEventResponses(events []entity.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *ToEventResponse(&events[i]))
	}
	return result
}
