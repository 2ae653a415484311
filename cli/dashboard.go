// ABOUTME: Dashboard and CRM summary commands
// ABOUTME: Prints the ASCII dashboard and the pipeline, profit and expense overview
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/viz"
)

func newDashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show bids, pipeline, profit and active projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := viz.GenerateDashboard(app.store.Snapshot(), app.now())
			fmt.Fprint(cmd.OutOrStdout(), viz.RenderDashboard(d))
			return nil
		},
	}
}

func newCRMCommand(app *App) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "crm",
		Short: "Show the deal pipeline, profit and recent expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.store.Snapshot()
			pipeline := viz.ComputePipeline(snap.Clients)
			rollup := viz.ComputeExpenseRollup(snap.Expenses, pipeline.WonDealsValue, "")
			out := cmd.OutOrStdout()

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STAGE\tCLIENTS\tREVENUE")
			fmt.Fprintln(w, "-----\t-------\t-------")
			for _, s := range pipeline.Stages {
				fmt.Fprintf(w, "%s\t%d\t%s\n", s.Label, s.Count, viz.FormatMoney(s.Revenue))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nPipeline value:   %s\n", viz.FormatMoney(pipeline.PipelineValue))
			fmt.Fprintf(out, "Won deals:        %s\n", viz.FormatMoney(pipeline.WonDealsValue))
			fmt.Fprintf(out, "Active deals:     %d of %d clients\n", pipeline.ActiveDeals, pipeline.TotalClients)
			fmt.Fprintf(out, "Conversion:       %s per engaged client\n", viz.FormatMoney(float64(pipeline.ConversionMetric)))
			fmt.Fprintf(out, "Avg deal value:   %s\n", viz.FormatMoney(float64(pipeline.AvgDealValue)))
			fmt.Fprintf(out, "Lead to close:    %d%%\n", pipeline.LeadToClose)

			fmt.Fprintf(out, "\nExpenses:         %s\n", viz.FormatMoney(rollup.TotalExpenses))
			fmt.Fprintf(out, "Profit:           %s (%d%% margin)\n", viz.FormatMoney(rollup.TotalProfit), rollup.ProfitMargin)

			expenses := viz.RecentExpenses(snap.Expenses, recent)
			if len(expenses) == 0 {
				fmt.Fprintln(out, "\nNo expenses recorded")
				return nil
			}

			fmt.Fprintln(out, "\nRecent expenses:")
			w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range expenses {
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", e.Date.Format("2006-01-02"), e.Category.Label(), viz.FormatMoney(e.Amount), e.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 3, "Number of recent expenses to show")
	return cmd
}
