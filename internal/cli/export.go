package cli

import (
	"fmt"
	"os"

	"github.com/longtraan06/studyplanner/internal/ical"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output file. Defaults to stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	cal, err := ical.Build(ctx.Store.List())
	if err != nil {
		return fmt.Errorf("failed to build calendar: %w", err)
	}

	serialized := cal.Serialize()
	if c.Out == "" {
		fmt.Print(serialized)
		return nil
	}

	if err := os.WriteFile(c.Out, []byte(serialized), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}
	fmt.Printf("Exported %d events to %s\n", ctx.Store.Len(), c.Out)
	return nil
}
