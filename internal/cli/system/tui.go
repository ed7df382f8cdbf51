package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/tui"
)

// TuiCmd launches the interactive dashboard.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	m, err := tui.NewModel(ctx.Store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
