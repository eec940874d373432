package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/longtraan06/studyplanner/internal/events"
	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/query"
	"github.com/longtraan06/studyplanner/internal/view"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateForm
	StateConfirmDelete
)

// tickMsg carries the once-per-second clock used to refresh the time
// display and the past/today predicates. It never mutates the store.
type tickMsg time.Time

type Model struct {
	store      *events.Store
	controller *view.Controller
	keys       KeyMap
	help       help.Model

	state         SessionState
	now           time.Time
	cursor        int // index into the anchor day's sorted agenda
	showReminders bool

	form       *huh.Form
	eventForm  *EventFormModel
	editingID  string
	deletingID string

	status      string
	statusIsErr bool

	width    int
	height   int
	quitting bool
}

func NewModel(store *events.Store) Model {
	return Model{
		store:         store,
		controller:    view.NewController(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		now:           time.Now(),
		showReminders: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// agenda returns the sorted events for the anchor date; every render
// recomputes it from the store, so the TUI never holds a stale copy.
func (m Model) agenda() []models.Event {
	return query.ForDay(m.store.List(), m.controller.Anchor)
}

func (m Model) selectedEvent() (models.Event, bool) {
	agenda := m.agenda()
	if len(agenda) == 0 || m.cursor < 0 || m.cursor >= len(agenda) {
		return models.Event{}, false
	}
	return agenda[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.agenda())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
