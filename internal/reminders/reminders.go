// Package reminders derives the effective reminder lead time for events
// and feeds the upcoming-reminders panel.
package reminders

import (
	"time"

	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/query"
)

// Priority-based default lead times, in minutes before the event.
const (
	DefaultHighMin   = 60
	DefaultMediumMin = 30
	DefaultLowMin    = 10
)

// EffectiveLeadMin returns the reminder lead time for an event: a
// non-negative custom override wins, otherwise the priority default.
// Unrecognized priorities fall back to the medium default.
func EffectiveLeadMin(e models.Event) int {
	if e.CustomReminderMin != nil && *e.CustomReminderMin >= 0 {
		return *e.CustomReminderMin
	}
	switch e.Priority {
	case models.PriorityHigh:
		return DefaultHighMin
	case models.PriorityLow:
		return DefaultLowMin
	default:
		return DefaultMediumMin
	}
}

// Entry is an event annotated with its resolved lead time for the
// notification surface.
type Entry struct {
	Event   models.Event
	LeadMin int
}

// UpcomingEntries returns up to limit upcoming events (date on or after
// asOf), soonest first, each annotated with its effective lead time.
func UpcomingEntries(events []models.Event, asOf time.Time, limit int) []Entry {
	upcoming := query.Upcoming(events, asOf, limit)
	entries := make([]Entry, len(upcoming))
	for i, e := range upcoming {
		entries[i] = Entry{Event: e, LeadMin: EffectiveLeadMin(e)}
	}
	return entries
}
