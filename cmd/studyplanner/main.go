package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/longtraan06/studyplanner/internal/cli"
	"github.com/longtraan06/studyplanner/internal/constants"
	"github.com/longtraan06/studyplanner/internal/errors"
	"github.com/longtraan06/studyplanner/internal/events"
	"github.com/longtraan06/studyplanner/internal/logger"
	"github.com/longtraan06/studyplanner/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db suffix selects the SQLite backend, anything else stores a JSON event collection." type:"path" default:"~/.config/studyplanner/studyplanner-events.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize studyplanner storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Add      cli.AddCmd      `cmd:"" help:"Add a new event."`
	Edit     cli.EditCmd     `cmd:"" help:"Edit an existing event."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete an event."`
	List     cli.ListCmd     `cmd:"" help:"List events grouped by date."`
	Day      cli.DayCmd      `cmd:"" help:"Show the events of a day."`
	Week     cli.WeekCmd     `cmd:"" help:"Show a Sunday-to-Saturday week."`
	Month    cli.MonthCmd    `cmd:"" help:"Show a month overview."`
	Upcoming cli.UpcomingCmd `cmd:"" help:"Show upcoming events with reminder lead times."`
	Export   cli.ExportCmd   `cmd:"" help:"Export the event collection as an iCalendar file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Study-planning calendar with day, week, and month views"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		provider = storage.NewSQLiteStore(CLI.Config)
	} else {
		provider = storage.NewJSONStore(CLI.Config)
	}

	if err := provider.Init(); err != nil {
		errors.Fatal(err)
	}
	defer provider.Close()

	store := events.NewStore(provider)
	if err := store.Load(); err != nil {
		errors.Fatal(err)
	}

	err := ctx.Run(&cli.Context{Store: store, Provider: provider})
	if err != nil {
		errors.Fatal(err)
	}
}
