package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/longtraan06/studyplanner/internal/calendar"
	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/query"
	"github.com/longtraan06/studyplanner/internal/reminders"
	"github.com/longtraan06/studyplanner/internal/utils"
	"github.com/longtraan06/studyplanner/internal/view"
)

// monthCellEvents is the preview truncation in month cells: the first
// two events are shown, the rest are counted.
const monthCellEvents = 2

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateForm:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewCalendar()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewHeader() string {
	var tabs []string
	for _, mode := range []view.Mode{view.ModeDay, view.ModeWeek, view.ModeMonth} {
		if m.controller.Mode == mode {
			tabs = append(tabs, activeTabStyle.Render(string(mode)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(string(mode)))
		}
	}

	anchor := m.controller.Anchor
	var label string
	switch m.controller.Mode {
	case view.ModeWeek:
		week := calendar.WeekOf(anchor)
		label = fmt.Sprintf("%s - %s", utils.FormatDate(week[0]), utils.FormatDate(week[6]))
	case view.ModeMonth:
		label = fmt.Sprintf("%s %d", anchor.Month(), anchor.Year())
	default:
		label = fmt.Sprintf("%s (%s)", utils.FormatDate(anchor), anchor.Weekday())
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"  ",
		headerStyle.Render(label),
		"  ",
		clockStyle.Render(m.now.Format("15:04:05")),
	)
}

func (m Model) viewCalendar() string {
	var body string
	switch m.controller.Mode {
	case view.ModeWeek:
		body = m.viewWeek()
	case view.ModeMonth:
		body = m.viewMonth()
	default:
		body = m.viewDay()
	}

	if !m.showReminders {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.viewReminders())
}

func (m Model) viewDay() string {
	agenda := m.agenda()
	if len(agenda) == 0 {
		return statusStyle.Render("No events on this day. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, e := range agenda {
		line := fmt.Sprintf("%s %s", timeStyle.Render(eventTimeLabel(e)), renderTitle(e))
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewWeek() string {
	week := calendar.WeekOf(m.controller.Anchor)
	byDay := query.ForWeek(m.store.List(), week)

	colWidth := 18
	if m.width > 0 && m.width/7 > 10 {
		colWidth = m.width/7 - 2
	}
	col := lipgloss.NewStyle().Width(colWidth)

	var cols []string
	for _, d := range week {
		key := utils.FormatDate(d)
		head := fmt.Sprintf("%s %d", d.Weekday().String()[:3], d.Day())
		switch {
		case calendar.SameDay(d, m.now):
			head = todayStyle.Render(head)
		case calendar.SameDay(d, m.controller.Anchor):
			head = headerStyle.Render(head)
		default:
			head = clockStyle.Render(head)
		}

		var b strings.Builder
		b.WriteString(head + "\n")
		for _, e := range byDay[key] {
			b.WriteString(renderCompact(e, colWidth) + "\n")
		}
		cols = append(cols, col.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) viewMonth() string {
	grid := calendar.MonthGrid(m.controller.Anchor, m.now)
	byDay := query.ForMonth(m.store.List(), grid)

	cellWidth := 14
	if m.width > 0 && m.width/7 > 8 {
		cellWidth = m.width/7 - 2
	}
	cellStyle := lipgloss.NewStyle().Width(cellWidth).Height(monthCellEvents + 2)

	var rows []string
	for row := 0; row < calendar.MonthGridSize/calendar.WeekDays; row++ {
		var cells []string
		for colIdx := 0; colIdx < calendar.WeekDays; colIdx++ {
			cell := grid[row*calendar.WeekDays+colIdx]
			cells = append(cells, cellStyle.Render(m.renderMonthCell(cell, byDay, cellWidth)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderMonthCell(cell calendar.Cell, byDay map[string][]models.Event, width int) string {
	day := fmt.Sprintf("%2d", cell.Date.Day())
	switch {
	case cell.IsToday:
		day = todayStyle.Render(day)
	case !cell.InMonth:
		day = outMonthStyle.Render(day)
	case cell.IsPast:
		day = pastStyle.Render(day)
	}

	var b strings.Builder
	b.WriteString(day + "\n")

	events := byDay[utils.FormatDate(cell.Date)]
	for i, e := range events {
		if i == monthCellEvents {
			b.WriteString(statusStyle.Render(fmt.Sprintf("+%d more", len(events)-monthCellEvents)))
			break
		}
		b.WriteString(renderCompact(e, width) + "\n")
	}

	out := b.String()
	if calendar.SameDay(cell.Date, m.controller.Anchor) {
		out = anchorCellStyle.Render(out)
	}
	return out
}

func (m Model) viewReminders() string {
	entries := reminders.UpcomingEntries(m.store.List(), m.now, 5)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Upcoming") + "\n")
	if len(entries) == 0 {
		b.WriteString(statusStyle.Render("nothing scheduled"))
	}
	for _, en := range entries {
		b.WriteString(fmt.Sprintf("%s %s\n", clockStyle.Render(en.Event.Date), renderTitle(en.Event)))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  remind %d min before", en.LeadMin)) + "\n")
	}
	return panelStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	title := m.deletingID
	if e, ok := m.store.Get(m.deletingID); ok {
		title = e.Title
	}
	return fmt.Sprintf("%s\n\n%s",
		dangerStyle.Render(fmt.Sprintf("Delete %q?", title)),
		statusStyle.Render("y to confirm, n to cancel"))
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return dangerStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func eventTimeLabel(e models.Event) string {
	if e.StartTime == "" {
		return "all-day"
	}
	if e.EndTime != "" {
		return e.StartTime + "-" + e.EndTime
	}
	return e.StartTime
}

func renderTitle(e models.Event) string {
	switch e.Priority {
	case models.PriorityHigh:
		return priorityHighStyle.Render(e.Title)
	case models.PriorityLow:
		return priorityLowStyle.Render(e.Title)
	default:
		return eventStyle.Render(e.Title)
	}
}

func renderCompact(e models.Event, width int) string {
	label := e.Title
	if e.StartTime != "" {
		label = e.StartTime + " " + label
	}
	if width > 3 && len(label) > width {
		label = label[:width-1] + "…"
	}
	return renderTitle(models.Event{Title: label, Priority: e.Priority})
}
