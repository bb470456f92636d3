package entity

import (
	"time"
)

// EventCategory is the closed set of calendar categories
type EventCategory string

const (
	CategoryWork          EventCategory = "work"
	CategoryPersonal      EventCategory = "personal"
	CategoryHealth        EventCategory = "health"
	CategorySocial        EventCategory = "social"
	CategoryEducation     EventCategory = "education"
	CategoryEntertainment EventCategory = "entertainment"
	CategoryShopping      EventCategory = "shopping"
	CategoryTravel        EventCategory = "travel"
	CategoryOther         EventCategory = "other"
)

// Categories lists every valid category in display order
func Categories() []EventCategory {
	return []EventCategory{
		CategoryWork, CategoryPersonal, CategoryHealth, CategorySocial,
		CategoryEducation, CategoryEntertainment, CategoryShopping,
		CategoryTravel, CategoryOther,
	}
}

// Valid reports whether the category is one of the closed enumeration.
// Invalid values are rejected by the validator, never coerced.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategorySocial,
		CategoryEducation, CategoryEntertainment, CategoryShopping,
		CategoryTravel, CategoryOther:
		return true
	}
	return false
}

// EventStatus is the closed set of event lifecycle states
type EventStatus string

const (
	StatusScheduled   EventStatus = "scheduled"
	StatusCompleted   EventStatus = "completed"
	StatusMissed      EventStatus = "missed"
	StatusCancelled   EventStatus = "cancelled"
	StatusAlternative EventStatus = "alternative"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusMissed, StatusCancelled, StatusAlternative:
		return true
	}
	return false
}

// Event is a persisted, user-owned time-boxed calendar entry.
// Updates replace the whole record; there are no field mutators.
type Event struct {
	ID              string        `db:"id" json:"id"`
	UserID          string        `db:"user_id" json:"user_id"`
	Title           string        `db:"title" json:"title"`
	Description     *string       `db:"description" json:"description,omitempty"`
	Location        *string       `db:"location" json:"location,omitempty"`
	StartTime       time.Time     `db:"start_time" json:"start_time"`
	EndTime         time.Time     `db:"end_time" json:"end_time"`
	Category        EventCategory `db:"category" json:"category"`
	Status          EventStatus   `db:"status" json:"status"`
	Color           *string       `db:"color" json:"color,omitempty"`
	IsAlternative   bool          `db:"is_alternative" json:"is_alternative"`
	OriginalEventID *string       `db:"original_event_id" json:"original_event_id,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}
