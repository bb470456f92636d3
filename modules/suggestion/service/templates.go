package service

import (
	"calendar-api/modules/event/entity"
)

// alternativeTemplate is one canned substitution for a category
type alternativeTemplate struct {
	Title    string
	Category entity.EventCategory
	Reason   string
}

// alternativeTemplates maps each category to its ordered substitution list.
// Unknown categories fall back to the "other" list.
var alternativeTemplates = map[entity.EventCategory][]alternativeTemplate{
	entity.CategoryWork: {
		{Title: "Remote work session", Category: entity.CategoryWork, Reason: "Flexible work arrangement"},
		{Title: "Focus time - deep work", Category: entity.CategoryWork, Reason: "Productive alternative"},
		{Title: "Professional development", Category: entity.CategoryEducation, Reason: "Skill building opportunity"},
	},
	entity.CategoryPersonal: {
		{Title: "Self-care time", Category: entity.CategoryHealth, Reason: "Wellness alternative"},
		{Title: "Hobby time", Category: entity.CategoryEntertainment, Reason: "Personal fulfillment"},
		{Title: "Home organization", Category: entity.CategoryPersonal, Reason: "Productive personal time"},
	},
	entity.CategoryHealth: {
		{Title: "Home workout", Category: entity.CategoryHealth, Reason: "Flexible fitness option"},
		{Title: "Meditation session", Category: entity.CategoryHealth, Reason: "Mental wellness"},
		{Title: "Healthy meal prep", Category: entity.CategoryHealth, Reason: "Nutrition focus"},
	},
	entity.CategorySocial: {
		{Title: "Video call with friends", Category: entity.CategorySocial, Reason: "Virtual social connection"},
		{Title: "Social media catch-up", Category: entity.CategorySocial, Reason: "Digital socializing"},
		{Title: "Plan future meetup", Category: entity.CategorySocial, Reason: "Social planning"},
	},
	entity.CategoryEducation: {
		{Title: "Online course session", Category: entity.CategoryEducation, Reason: "Digital learning"},
		{Title: "Reading time", Category: entity.CategoryEducation, Reason: "Self-directed learning"},
		{Title: "Research project", Category: entity.CategoryEducation, Reason: "Knowledge building"},
	},
	entity.CategoryEntertainment: {
		{Title: "Movie night at home", Category: entity.CategoryEntertainment, Reason: "Home entertainment"},
		{Title: "Gaming session", Category: entity.CategoryEntertainment, Reason: "Digital entertainment"},
		{Title: "Creative project", Category: entity.CategoryEntertainment, Reason: "Creative expression"},
	},
	entity.CategoryShopping: {
		{Title: "Online shopping", Category: entity.CategoryShopping, Reason: "Digital shopping"},
		{Title: "Budget planning", Category: entity.CategoryPersonal, Reason: "Financial management"},
		{Title: "Wishlist organization", Category: entity.CategoryShopping, Reason: "Shopping planning"},
	},
	entity.CategoryTravel: {
		{Title: "Virtual travel experience", Category: entity.CategoryEntertainment, Reason: "Digital exploration"},
		{Title: "Travel planning", Category: entity.CategoryTravel, Reason: "Future trip preparation"},
		{Title: "Local exploration", Category: entity.CategoryTravel, Reason: "Local adventure"},
	},
	entity.CategoryOther: {
		{Title: "Personal project time", Category: entity.CategoryPersonal, Reason: "Personal development"},
		{Title: "Relaxation time", Category: entity.CategoryHealth, Reason: "Stress relief"},
		{Title: "Creative exploration", Category: entity.CategoryEntertainment, Reason: "Creative outlet"},
	},
}

// templatesFor returns the category's template list, falling back to "other"
// for anything outside the mapping. Never fails.
func templatesFor(category entity.EventCategory) []alternativeTemplate {
	if templates, ok := alternativeTemplates[category]; ok {
		return templates
	}
	return alternativeTemplates[entity.CategoryOther]
}

// personalizedTemplate is one entry of the fixed smart-suggestion pool
type personalizedTemplate struct {
	Title       string
	Description string
	Category    entity.EventCategory
	Confidence  float64
	Reason      string
}

// personalizedTemplates is the fixed pool the smart method ranks by its
// static confidence field.
var personalizedTemplates = []personalizedTemplate{
	{Title: "Fitness workout", Description: "Stay active with a home workout", Category: entity.CategoryHealth, Confidence: 0.9, Reason: "Matches your fitness goals"},
	{Title: "Learning session", Description: "Dive into a new skill or topic", Category: entity.CategoryEducation, Confidence: 0.85, Reason: "Aligns with your learning interests"},
	{Title: "Creative project", Description: "Express yourself through art or writing", Category: entity.CategoryEntertainment, Confidence: 0.8, Reason: "Fits your creative side"},
	{Title: "Social connection", Description: "Reach out to friends or family", Category: entity.CategorySocial, Confidence: 0.75, Reason: "Maintains social connections"},
	{Title: "Productivity boost", Description: "Tackle important tasks efficiently", Category: entity.CategoryWork, Confidence: 0.88, Reason: "Maximizes your productivity"},
}
