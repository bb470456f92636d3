package dto

import (
	eventdto "calendar-api/modules/event/dto"
	"calendar-api/modules/transcript/service"
)

// ParseRequest carries one spoken or typed utterance
type ParseRequest struct {
	Transcript string `json:"transcript"`
}

// DraftResponse is the extracted event draft, not yet persisted
type DraftResponse struct {
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func ToDraftResponse(d *service.Draft) *DraftResponse {
	return &DraftResponse{
		Title:     d.Title,
		StartTime: eventdto.FormatWireTime(d.StartTime),
		EndTime:   eventdto.FormatWireTime(d.EndTime),
	}
}
