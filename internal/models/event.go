package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank returns the sort ordinal for a priority: high sorts first.
// Unknown priorities rank with medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Event is a single calendar entry. An event belongs to exactly one
// calendar day; there are no multi-day spans.
type Event struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Date              string     `json:"date"`                 // YYYY-MM-DD format
	StartTime         string     `json:"start_time,omitempty"` // HH:MM format
	EndTime           string     `json:"end_time,omitempty"`   // HH:MM format
	Priority          Priority   `json:"priority"`
	CustomReminderMin *int       `json:"custom_reminder_min,omitempty"` // minutes before start
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// EventPatch is a partial update: nil fields are left untouched by the
// store's merge. StartTime/EndTime set to an empty string clear the field.
type EventPatch struct {
	Title             *string   `json:"title,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Date              *string   `json:"date,omitempty"`
	StartTime         *string   `json:"start_time,omitempty"`
	EndTime           *string   `json:"end_time,omitempty"`
	Priority          *Priority `json:"priority,omitempty"`
	CustomReminderMin *int      `json:"custom_reminder_min,omitempty"`
}
