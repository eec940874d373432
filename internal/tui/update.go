package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/longtraan06/studyplanner/internal/events"
	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/utils"
	"github.com/longtraan06/studyplanner/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch m.state {
		case StateForm:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateCalendar(msg)
		}
	}

	if m.state == StateForm && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Day):
		m.controller.SetMode(view.ModeDay)
		m.setStatus("day view", false)

	case key.Matches(msg, m.keys.Week):
		m.controller.SetMode(view.ModeWeek)
		m.setStatus("week view", false)

	case key.Matches(msg, m.keys.Month):
		m.controller.SetMode(view.ModeMonth)
		m.setStatus("month view", false)

	case key.Matches(msg, m.keys.Prev):
		m.controller.Navigate(view.Prev)
		m.clampCursor()

	case key.Matches(msg, m.keys.Next):
		m.controller.Navigate(view.Next)
		m.clampCursor()

	case key.Matches(msg, m.keys.Today):
		m.controller.JumpToToday()
		m.clampCursor()

	case key.Matches(msg, m.keys.Enter):
		m.controller.DrillIntoDay(m.controller.Anchor)
		m.clampCursor()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.agenda())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Reminders):
		m.showReminders = !m.showReminders

	case key.Matches(msg, m.keys.Add):
		m.eventForm = &EventFormModel{
			Date:     utils.FormatDate(m.controller.Anchor),
			Priority: models.PriorityMedium,
		}
		m.editingID = ""
		m.form = NewEventForm(m.eventForm)
		m.state = StateForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		selected, ok := m.selectedEvent()
		if !ok {
			m.setStatus("no event selected", true)
			return m, nil
		}
		m.eventForm = formFromEvent(selected)
		m.editingID = selected.ID
		m.form = NewEventForm(m.eventForm)
		m.state = StateForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		selected, ok := m.selectedEvent()
		if !ok {
			m.setStatus("no event selected", true)
			return m, nil
		}
		m.deletingID = selected.ID
		m.state = StateConfirmDelete
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateCalendar
		m.form = nil
		m.setStatus("cancelled", false)
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = StateCalendar
		return m.submitForm()
	}
	if m.form.State == huh.StateAborted {
		m.state = StateCalendar
		m.form = nil
		m.setStatus("cancelled", false)
		return m, nil
	}

	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fields := eventFromForm(m.eventForm)
	m.form = nil
	m.eventForm = nil

	if m.editingID == "" {
		added, err := m.store.Add(fields)
		if err != nil {
			m.reportMutation("added "+added.Title, err)
			return m, nil
		}
		m.setStatus("added "+added.Title, false)
		m.clampCursor()
		return m, nil
	}

	patch := models.EventPatch{
		Title:       &fields.Title,
		Description: &fields.Description,
		Date:        &fields.Date,
		StartTime:   &fields.StartTime,
		EndTime:     &fields.EndTime,
		Priority:    &fields.Priority,
	}
	if fields.CustomReminderMin != nil {
		patch.CustomReminderMin = fields.CustomReminderMin
	}
	err := m.store.Update(m.editingID, patch)
	m.reportMutation("updated "+fields.Title, err)
	m.editingID = ""
	m.clampCursor()
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		err := m.store.Delete(m.deletingID)
		m.reportMutation("deleted event", err)
		m.deletingID = ""
		m.state = StateCalendar
		m.clampCursor()
	case "n", "N", "esc":
		m.deletingID = ""
		m.state = StateCalendar
		m.setStatus("cancelled", false)
	}
	return m, nil
}

// reportMutation surfaces persistence failures without rolling the
// in-memory mutation back: the collection stays usable for the session
// and the next successful save closes the gap.
func (m *Model) reportMutation(okMsg string, err error) {
	switch {
	case err == nil:
		m.setStatus(okMsg, false)
	case errors.Is(err, events.ErrPersistence):
		m.setStatus(fmt.Sprintf("%s (save failed, kept in memory: %v)", okMsg, err), true)
	default:
		m.setStatus(err.Error(), true)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusIsErr = isErr
}
