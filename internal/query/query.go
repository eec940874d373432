// Package query implements the pure event transformation rules shared by
// the day, week, and month views, the task list, and the reminders panel:
// date-range filtering, grouping, and sort ordering.
package query

import (
	"sort"
	"time"

	"github.com/longtraan06/studyplanner/internal/calendar"
	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/utils"
)

// Less is the single total order used by every sort in this package:
//
//  1. date ascending (YYYY-MM-DD strings compare chronologically)
//  2. timed events before untimed events
//  3. among timed events, start time ascending (lexicographic HH:MM)
//  4. priority rank (high < medium < low)
//  5. creation timestamp
//  6. id
//
// The final id comparison makes the order total, so truncation ("first 2
// + N more") and test assertions are deterministic.
func Less(a, b models.Event) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	aTimed, bTimed := a.StartTime != "", b.StartTime != ""
	if aTimed != bTimed {
		return aTimed
	}
	if aTimed && a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

func sortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return Less(events[i], events[j])
	})
}

// Sorted returns a copy of events in the shared total order.
func Sorted(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)
	sortEvents(out)
	return out
}

// ForDay returns the events on the given calendar date, sorted: timed
// events first in start-time order, untimed events after, ties broken by
// priority rank.
func ForDay(events []models.Event, day time.Time) []models.Event {
	key := utils.FormatDate(day)
	out := []models.Event{}
	for _, e := range events {
		if e.Date == key {
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out
}

// ForWeek applies the ForDay filter and sort to each date of a week
// window, keyed by the YYYY-MM-DD date string.
func ForWeek(events []models.Event, weekDates []time.Time) map[string][]models.Event {
	out := make(map[string][]models.Event, len(weekDates))
	for _, d := range weekDates {
		out[utils.FormatDate(d)] = ForDay(events, d)
	}
	return out
}

// ForMonth groups events by date for a set of month-grid cells. Each
// group carries the same stable order as ForDay so that "first N events"
// truncation in month cells is deterministic.
func ForMonth(events []models.Event, cells []calendar.Cell) map[string][]models.Event {
	out := make(map[string][]models.Event, len(cells))
	for _, c := range cells {
		out[utils.FormatDate(c.Date)] = ForDay(events, c.Date)
	}
	return out
}

// ForRange returns events with start <= date <= end inclusive, sorted by
// date ascending, then by the shared total order within a date.
func ForRange(events []models.Event, start, end time.Time) []models.Event {
	from, to := utils.FormatDate(start), utils.FormatDate(end)
	out := []models.Event{}
	for _, e := range events {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out
}

// Upcoming returns up to limit events on or after asOf (date-only
// comparison), soonest first. A limit <= 0 means no truncation.
func Upcoming(events []models.Event, asOf time.Time, limit int) []models.Event {
	from := utils.FormatDate(asOf)
	out := []models.Event{}
	for _, e := range events {
		if e.Date >= from {
			out = append(out, e)
		}
	}
	sortEvents(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GroupByDateKey groups events by their YYYY-MM-DD date key, preserving
// the input's relative order within each group.
func GroupByDateKey(events []models.Event) map[string][]models.Event {
	out := make(map[string][]models.Event)
	for _, e := range events {
		out[e.Date] = append(out[e.Date], e)
	}
	return out
}

// SortedDateKeys returns the keys of a grouped mapping in ascending date
// order, for deterministic iteration.
func SortedDateKeys(groups map[string][]models.Event) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
