package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/utils"
)

type EventFormModel struct {
	Title       string
	Description string
	Date        string
	Start       string
	End         string
	Priority    models.Priority
	Reminder    string
}

// NewEventForm builds the add/edit form. Field-level validation mirrors
// the store's rules so invalid events never reach it from the TUI.
func NewEventForm(fm *EventFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := utils.ParseDate(s); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Description("Leave empty for an all-day event").
				Value(&fm.Start).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("End time (HH:MM)").
				Value(&fm.End).
				Validate(validateOptionalTime),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("High", models.PriorityHigh),
					huh.NewOption("Medium", models.PriorityMedium),
					huh.NewOption("Low", models.PriorityLow),
				).
				Value(&fm.Priority),
			huh.NewInput().
				Title("Reminder (minutes)").
				Description("Leave empty for the priority default").
				Value(&fm.Reminder).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("reminder must be a non-negative number of minutes")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Value(&fm.Description).
				Lines(3),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateOptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := utils.ParseTime(s); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

// formFromEvent seeds the form model for editing.
func formFromEvent(e models.Event) *EventFormModel {
	fm := &EventFormModel{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Start:       e.StartTime,
		End:         e.EndTime,
		Priority:    e.Priority,
	}
	if e.CustomReminderMin != nil {
		fm.Reminder = strconv.Itoa(*e.CustomReminderMin)
	}
	return fm
}

// eventFromForm converts a completed form back into event fields.
func eventFromForm(fm *EventFormModel) models.Event {
	e := models.Event{
		Title:       strings.TrimSpace(fm.Title),
		Description: fm.Description,
		Date:        strings.TrimSpace(fm.Date),
		StartTime:   strings.TrimSpace(fm.Start),
		EndTime:     strings.TrimSpace(fm.End),
		Priority:    fm.Priority,
	}
	if r := strings.TrimSpace(fm.Reminder); r != "" {
		if min, err := strconv.Atoi(r); err == nil && min >= 0 {
			e.CustomReminderMin = &min
		}
	}
	return e
}
