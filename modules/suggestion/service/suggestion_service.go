package service

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"calendar-api/core/utils"
	eventdto "calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"
	"calendar-api/modules/suggestion/dto"
)

// Aggregate confidence constants for the two resolution methods
const (
	baselineConfidence = 0.85
	smartConfidence    = 0.92
	alternativeCount   = 3
)

// SuggestionService resolves alternatives from the static template table.
// Purely functional: no storage, no network, no failure path — an unknown
// category degrades to the fallback list.
type SuggestionService struct {
	// score produces the per-alternative confidence jitter in [0.7, 1.0).
	// It stands in for a real scoring model; swap it without touching the
	// resolution flow.
	score func() float64
}

// SuggestionServiceInterface defines the service contract
type SuggestionServiceInterface interface {
	GenerateAlternatives(event *entity.Event) *dto.SuggestionResponse
	SuggestSmart(req *dto.SmartSuggestionRequest, windowStart, windowEnd time.Time) *dto.SuggestionResponse
}

func NewSuggestionService() SuggestionServiceInterface {
	return &SuggestionService{
		score: defaultScore,
	}
}

// NewSuggestionServiceWithScorer allows tests and future scoring models to
// control the confidence draw
func NewSuggestionServiceWithScorer(score func() float64) SuggestionServiceInterface {
	return &SuggestionService{score: score}
}

func defaultScore() float64 {
	return 0.7 + rand.Float64()*0.3
}

// GenerateAlternatives returns exactly three candidates cycling the
// category's template list, each keeping the original event's time slot.
func (s *SuggestionService) GenerateAlternatives(event *entity.Event) *dto.SuggestionResponse {
	templates := templatesFor(event.Category)

	alternatives := make([]dto.AlternativeResponse, 0, alternativeCount)
	for i := 0; i < alternativeCount; i++ {
		template := templates[i%len(templates)]
		alternatives = append(alternatives, dto.AlternativeResponse{
			ID:          utils.GenerateID(),
			Title:       template.Title,
			Description: fmt.Sprintf("Alternative to: %s", event.Title),
			StartTime:   eventdto.FormatWireTime(event.StartTime),
			EndTime:     eventdto.FormatWireTime(event.EndTime),
			Category:    string(template.Category),
			Confidence:  s.score(),
			Reason:      template.Reason,
		})
	}

	return &dto.SuggestionResponse{
		Alternatives: alternatives,
		Reasoning: fmt.Sprintf(
			"Based on your %s event %q, I've suggested some alternatives that align with your interests and schedule.",
			event.Category, event.Title),
		Confidence: baselineConfidence,
	}
}

// SuggestSmart ranks the fixed personalized pool by its static confidence
// field and re-times the top three to the supplied window.
//
// The preference tags are accepted but not consulted when ranking; the
// original behavior is preserved deliberately.
func (s *SuggestionService) SuggestSmart(req *dto.SmartSuggestionRequest, windowStart, windowEnd time.Time) *dto.SuggestionResponse {
	ranked := make([]personalizedTemplate, len(personalizedTemplates))
	copy(ranked, personalizedTemplates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	if len(ranked) > alternativeCount {
		ranked = ranked[:alternativeCount]
	}

	alternatives := make([]dto.AlternativeResponse, 0, len(ranked))
	for _, template := range ranked {
		alternatives = append(alternatives, dto.AlternativeResponse{
			ID:          utils.GenerateID(),
			Title:       template.Title,
			Description: template.Description,
			StartTime:   eventdto.FormatWireTime(windowStart),
			EndTime:     eventdto.FormatWireTime(windowEnd),
			Category:    string(template.Category),
			Confidence:  template.Confidence,
			Reason:      template.Reason,
		})
	}

	return &dto.SuggestionResponse{
		Alternatives: alternatives,
		Reasoning:    "I've analyzed your preferences and the available time slot to suggest activities that match your interests and schedule.",
		Confidence:   smartConfidence,
	}
}
