// Package cli provides the command-line interface for taskpad.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/knakagawa/taskpad/internal/app"
	"github.com/knakagawa/taskpad/internal/tui"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskpad.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskpad",
		Short: "Terminal task-list editor",
		Long: `taskpad is a small task-list editor for the terminal.
Running it without arguments opens the interactive list; the
subcommands drive the same task list non-interactively. Tasks persist
in a JSON file in your data directory.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newDoneCommand(c),
		newRemoveCommand(c),
		newClearCommand(c),
		newImportCommand(c),
	)

	return root
}

// launchTUI runs the interactive list until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
