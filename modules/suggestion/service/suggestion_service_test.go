package service

import (
	"testing"
	"time"

	"calendar-api/modules/event/dto"
	"calendar-api/modules/event/entity"
	suggestiondto "calendar-api/modules/suggestion/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(category entity.EventCategory) *entity.Event {
	return &entity.Event{
		ID:        "abc123def",
		UserID:    "user-1",
		Title:     "Team standup",
		StartTime: time.Date(2026, 6, 25, 15, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 25, 16, 0, 0, 0, time.UTC),
		Category:  category,
		Status:    entity.StatusScheduled,
	}
}

func TestGenerateAlternativesCount(t *testing.T) {
	svc := NewSuggestionService()

	for _, category := range entity.Categories() {
		result := svc.GenerateAlternatives(testEvent(category))
		assert.Len(t, result.Alternatives, 3, "category %s", category)
	}
}

func TestGenerateAlternativesUnknownCategoryFallsBack(t *testing.T) {
	svc := NewSuggestionService()

	result := svc.GenerateAlternatives(testEvent(entity.EventCategory("meeting")))

	require.Len(t, result.Alternatives, 3)
	assert.Equal(t, "Personal project time", result.Alternatives[0].Title)
	assert.Equal(t, "Relaxation time", result.Alternatives[1].Title)
	assert.Equal(t, "Creative exploration", result.Alternatives[2].Title)
}

func TestGenerateAlternativesKeepsTimeSlot(t *testing.T) {
	svc := NewSuggestionService()
	event := testEvent(entity.CategoryWork)

	result := svc.GenerateAlternatives(event)

	for _, alt := range result.Alternatives {
		assert.Equal(t, dto.FormatWireTime(event.StartTime), alt.StartTime)
		assert.Equal(t, dto.FormatWireTime(event.EndTime), alt.EndTime)
	}
}

func TestGenerateAlternativesConfidenceRange(t *testing.T) {
	svc := NewSuggestionService()

	for i := 0; i < 50; i++ {
		result := svc.GenerateAlternatives(testEvent(entity.CategoryHealth))
		for _, alt := range result.Alternatives {
			assert.GreaterOrEqual(t, alt.Confidence, 0.7)
			assert.Less(t, alt.Confidence, 1.0)
		}
	}
}

func TestGenerateAlternativesInjectedScorer(t *testing.T) {
	svc := NewSuggestionServiceWithScorer(func() float64 { return 0.75 })

	result := svc.GenerateAlternatives(testEvent(entity.CategoryWork))

	for _, alt := range result.Alternatives {
		assert.Equal(t, 0.75, alt.Confidence)
	}
	assert.Equal(t, 0.85, result.Confidence)
}

func TestGenerateAlternativesDescriptionAndReasoning(t *testing.T) {
	svc := NewSuggestionService()
	event := testEvent(entity.CategoryWork)

	result := svc.GenerateAlternatives(event)

	assert.Equal(t, "Alternative to: Team standup", result.Alternatives[0].Description)
	assert.Equal(t,
		`Based on your work event "Team standup", I've suggested some alternatives that align with your interests and schedule.`,
		result.Reasoning)
}

func TestSuggestSmartRanksByConfidence(t *testing.T) {
	svc := NewSuggestionService()
	windowStart := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 7, 1, 10, 30, 0, 0, time.UTC)

	result := svc.SuggestSmart(&suggestiondto.SmartSuggestionRequest{
		Preferences: []string{"fitness", "reading"},
	}, windowStart, windowEnd)

	require.Len(t, result.Alternatives, 3)
	assert.Equal(t, "Fitness workout", result.Alternatives[0].Title)
	assert.Equal(t, "Productivity boost", result.Alternatives[1].Title)
	assert.Equal(t, "Learning session", result.Alternatives[2].Title)
	assert.Equal(t, 0.92, result.Confidence)

	for _, alt := range result.Alternatives {
		assert.Equal(t, dto.FormatWireTime(windowStart), alt.StartTime)
		assert.Equal(t, dto.FormatWireTime(windowEnd), alt.EndTime)
	}
}

func TestSuggestSmartIgnoresPreferenceOrder(t *testing.T) {
	svc := NewSuggestionService()
	windowStart := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	a := svc.SuggestSmart(&suggestiondto.SmartSuggestionRequest{Preferences: []string{"social"}}, windowStart, windowEnd)
	b := svc.SuggestSmart(&suggestiondto.SmartSuggestionRequest{Preferences: nil}, windowStart, windowEnd)

	require.Len(t, a.Alternatives, 3)
	require.Len(t, b.Alternatives, 3)
	for i := range a.Alternatives {
		assert.Equal(t, a.Alternatives[i].Title, b.Alternatives[i].Title)
	}
}
