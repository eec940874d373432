// Package view holds the calendar session state: the anchor date and the
// active view mode, with the navigation transitions between them.
package view

import (
	"time"

	"github.com/longtraan06/studyplanner/internal/calendar"
)

type Mode string

const (
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Controller is the UI-session state machine: an anchor date and a view
// mode, mutated only through its transition methods. Consumers read
// Anchor/Mode and recompute their projections.
type Controller struct {
	Anchor time.Time
	Mode   Mode

	now func() time.Time // injectable for tests
}

// NewController starts a session at today's date in day mode.
func NewController() *Controller {
	c := &Controller{Mode: ModeDay, now: time.Now}
	c.Anchor = calendar.StartOfDay(c.now())
	return c
}

// Navigate shifts the anchor by one step in the active mode's unit:
// a day, a week, or a calendar month.
func (c *Controller) Navigate(dir Direction) {
	switch c.Mode {
	case ModeWeek:
		c.Anchor = calendar.ShiftWeek(c.Anchor, int(dir))
	case ModeMonth:
		c.Anchor = calendar.ShiftMonth(c.Anchor, int(dir))
	default:
		c.Anchor = calendar.ShiftDay(c.Anchor, int(dir))
	}
}

// JumpToToday resets the anchor to the current local date; the mode is
// unchanged.
func (c *Controller) JumpToToday() {
	c.Anchor = calendar.StartOfDay(c.now())
}

// SetMode switches the active view; the anchor is unchanged.
func (c *Controller) SetMode(m Mode) {
	c.Mode = m
}

// DrillIntoDay focuses a single date in day mode, as triggered by
// activating a week or month cell.
func (c *Controller) DrillIntoDay(date time.Time) {
	c.Anchor = calendar.StartOfDay(date)
	c.Mode = ModeDay
}
