package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/longtraan06/studyplanner/internal/tui"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	fmt.Printf("Initialized storage at %s\n", ctx.Provider.GetConfigPath())
	return nil
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
