package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicehand/nicehand/internal/tui"
)

// TrackCmd opens the interactive tracker interface
type TrackCmd struct {
	Token string `help:"OAuth bearer token enabling Drive auto-backup"`
}

func (c *TrackCmd) Run(cli *CLI) error {
	logger := cli.logger()
	a, err := cli.openApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if c.Token != "" {
		a.SetDriveToken(c.Token)
	}

	model := tui.NewModel(a, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
