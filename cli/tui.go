// ABOUTME: Interactive TUI subcommand
// ABOUTME: Launches the full-screen dashboard when attached to a terminal
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/harperreed/gigdesk/tui"
)

func newTUICommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("tui needs an interactive terminal; try \"gigdesk dashboard\"")
			}
			return tui.Run(app.store)
		},
	}
}
