// ABOUTME: Visualization CLI commands
// ABOUTME: Generates graphviz DOT for the project board and the deal pipeline
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/viz"
)

func newVizCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Generate graphviz graphs",
	}

	var output string
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	write := func(cmd *cobra.Command, dot string) error {
		if output != "" {
			if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			app.log.WithField("file", output).Info("graph written")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), dot)
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "board",
			Short: "Project board: columns in order with their cards",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dot, err := viz.NewGraphGenerator(app.store).GenerateBoardGraph()
				if err != nil {
					return err
				}
				return write(cmd, dot)
			},
		},
		&cobra.Command{
			Use:   "pipeline",
			Short: "Deal pipeline: stages in flow order with their clients",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dot, err := viz.NewGraphGenerator(app.store).GeneratePipelineGraph()
				if err != nil {
					return err
				}
				return write(cmd, dot)
			},
		},
	)
	return cmd
}
