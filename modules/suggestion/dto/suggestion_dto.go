package dto

// ===================== Request DTOs =====================

// SmartSuggestionRequest asks for preference-aware alternatives inside an
// explicit available-time window
type SmartSuggestionRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Preferences []string `json:"preferences"`
	StartTime   string   `json:"startTime"` // RFC3339 window start
	EndTime     string   `json:"endTime"`   // RFC3339 window end
}

// ===================== Response DTOs =====================

// AlternativeResponse is one scored candidate substitute. It is never
// persisted; promoting it goes through the event promote endpoint.
type AlternativeResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

// SuggestionResponse bundles ranked alternatives with aggregate reasoning
type SuggestionResponse struct {
	Alternatives []AlternativeResponse `json:"alternatives"`
	Reasoning    string                `json:"reasoning"`
	Confidence   float64               `json:"confidence"`
}
