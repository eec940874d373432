package cli

import (
	"fmt"

	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/utils"
)

type AddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Date        string `short:"d" help:"Event date (YYYY-MM-DD). Defaults to today."`
	Start       string `short:"s" help:"Start time (HH:MM)."`
	End         string `short:"e" help:"End time (HH:MM)."`
	Description string `short:"D" help:"Event description."`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Reminder    *int   `short:"r" help:"Custom reminder lead time in minutes."`
}

func (c *AddCmd) Validate() error {
	if c.Date != "" {
		if _, err := utils.ParseDate(c.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.Start != "" {
		if _, err := utils.ParseTime(c.Start); err != nil {
			return fmt.Errorf("invalid start time format (expected HH:MM): %w", err)
		}
	}
	if c.End != "" {
		if _, err := utils.ParseTime(c.End); err != nil {
			return fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
		}
	}
	if !models.Priority(c.Priority).IsValid() {
		return fmt.Errorf("priority must be one of low, medium, high")
	}
	if c.Reminder != nil && *c.Reminder < 0 {
		return fmt.Errorf("reminder must be a non-negative number of minutes")
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	event, err := ctx.Store.Add(models.Event{
		Title:             c.Title,
		Description:       c.Description,
		Date:              date,
		StartTime:         c.Start,
		EndTime:           c.End,
		Priority:          models.Priority(c.Priority),
		CustomReminderMin: c.Reminder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added event %s (%s)\n", event.Title, event.ID)
	return nil
}
