package cli

import (
	"fmt"
	"time"

	"github.com/longtraan06/studyplanner/internal/calendar"
	"github.com/longtraan06/studyplanner/internal/query"
	"github.com/longtraan06/studyplanner/internal/reminders"
	"github.com/longtraan06/studyplanner/internal/utils"
)

// parseAnchor resolves an optional date argument, defaulting to today.
func parseAnchor(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return calendar.StartOfDay(time.Now()), nil
	}
	d, err := utils.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return d, nil
}

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(ctx *Context) error {
	anchor, err := parseAnchor(c.Date)
	if err != nil {
		return err
	}

	day := query.ForDay(ctx.Store.List(), anchor)
	fmt.Printf("%s (%s)\n", utils.FormatDate(anchor), anchor.Weekday())
	if len(day) == 0 {
		fmt.Println("  no events")
		return nil
	}
	for _, e := range day {
		fmt.Printf("  %s\n", FormatEventLine(e))
	}
	return nil
}

type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the week to show (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	anchor, err := parseAnchor(c.Date)
	if err != nil {
		return err
	}

	week := calendar.WeekOf(anchor)
	byDay := query.ForWeek(ctx.Store.List(), week)
	for _, d := range week {
		key := utils.FormatDate(d)
		fmt.Printf("%s %s\n", d.Weekday().String()[:3], key)
		for _, e := range byDay[key] {
			fmt.Printf("  %s\n", FormatEventLine(e))
		}
	}
	return nil
}

type MonthCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the month to show (YYYY-MM-DD). Defaults to today."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	anchor, err := parseAnchor(c.Date)
	if err != nil {
		return err
	}

	grid := calendar.MonthGrid(anchor, time.Now())
	byDay := query.ForMonth(ctx.Store.List(), grid)
	fmt.Printf("%s %d\n", anchor.Month(), anchor.Year())
	for _, cell := range grid {
		if !cell.InMonth {
			continue
		}
		events := byDay[utils.FormatDate(cell.Date)]
		if len(events) == 0 {
			continue
		}
		fmt.Printf("%s\n", utils.FormatDate(cell.Date))
		for _, e := range events {
			fmt.Printf("  %s\n", FormatEventLine(e))
		}
	}
	return nil
}

type UpcomingCmd struct {
	Limit int `short:"n" help:"Maximum number of events to show." default:"5"`
}

func (c *UpcomingCmd) Run(ctx *Context) error {
	entries := reminders.UpcomingEntries(ctx.Store.List(), time.Now(), c.Limit)
	if len(entries) == 0 {
		fmt.Println("No upcoming events.")
		return nil
	}
	for _, en := range entries {
		fmt.Printf("%s  %s (remind %d min before)\n", en.Event.Date, FormatEventLine(en.Event), en.LeadMin)
	}
	return nil
}
