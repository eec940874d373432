package cli

import (
	"fmt"

	"github.com/longtraan06/studyplanner/internal/models"
)

type EditCmd struct {
	ID          string  `arg:"" help:"Event id."`
	Title       *string `help:"New title."`
	Date        *string `short:"d" help:"New date (YYYY-MM-DD)."`
	Start       *string `short:"s" help:"New start time (HH:MM). Pass an empty string to clear."`
	End         *string `short:"e" help:"New end time (HH:MM). Pass an empty string to clear."`
	Description *string `short:"D" help:"New description."`
	Priority    *string `short:"p" help:"New priority (low|medium|high)."`
	Reminder    *int    `short:"r" help:"New custom reminder lead time in minutes."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.Get(c.ID); !ok {
		// Benign miss per the store contract, but the CLI can be honest
		// about it.
		fmt.Printf("No event with id %s\n", c.ID)
		return nil
	}

	patch := models.EventPatch{
		Title:             c.Title,
		Description:       c.Description,
		Date:              c.Date,
		StartTime:         c.Start,
		EndTime:           c.End,
		CustomReminderMin: c.Reminder,
	}
	if c.Priority != nil {
		p := models.Priority(*c.Priority)
		patch.Priority = &p
	}

	if err := ctx.Store.Update(c.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated event %s\n", c.ID)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Event id."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Delete(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted event %s\n", c.ID)
	return nil
}
