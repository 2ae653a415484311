// ABOUTME: List commands for every collection
// ABOUTME: Filters records and prints them as lipgloss tables
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/viz"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func printTable(out io.Writer, noun string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintf(out, "No %s found\n", noun)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "\nTotal: %d %s\n", len(rows), noun)
}

func newListCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bids, clients, projects, developers, snippets, templates or expenses",
	}
	cmd.AddCommand(
		newListBidsCommand(app),
		newListClientsCommand(app),
		newListProjectsCommand(app),
		newListDevelopersCommand(app),
		newListSnippetsCommand(app),
		newListTemplatesCommand(app),
		newListExpensesCommand(app),
	)
	return cmd
}

func newListBidsCommand(app *App) *cobra.Command {
	var wonOnly bool

	cmd := &cobra.Command{
		Use:   "bids",
		Short: "List bids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, b := range app.store.Snapshot().Bids {
				if wonOnly && !b.Won {
					continue
				}
				won := ""
				if b.Won {
					won = "✓"
				}
				rows = append(rows, []string{b.ID, b.ClientName, viz.FormatMoney(b.Amount), b.Date.Format("2006-01-02"), won})
			}
			printTable(cmd.OutOrStdout(), "bid(s)", []string{"ID", "CLIENT", "AMOUNT", "DATE", "WON"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wonOnly, "won", false, "Only won bids")
	return cmd
}

func newListClientsCommand(app *App) *cobra.Command {
	var query, stage string

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List clients, optionally filtered by name/email or deal stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stage != "" && !models.DealStage(stage).Valid() {
				return fmt.Errorf("invalid --stage %q (want one of %s)", stage, joinEnum(models.DealStages))
			}

			var rows [][]string
			for _, c := range viz.FilterClients(app.store.Snapshot().Clients, query) {
				if stage != "" && c.DealStage != models.DealStage(stage) {
					continue
				}
				rows = append(rows, []string{c.ID, c.Name, c.Email, c.DealStage.Label(), viz.FormatMoney(c.Revenue)})
			}
			printTable(cmd.OutOrStdout(), "client(s)", []string{"ID", "NAME", "EMAIL", "STAGE", "REVENUE"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Match name or email")
	cmd.Flags().StringVar(&stage, "stage", "", "Deal stage ("+joinEnum(models.DealStages)+")")
	return cmd
}

func newListProjectsCommand(app *App) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects in board order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if column != "" && !models.KanbanColumn(column).Valid() {
				return fmt.Errorf("invalid --column %q (want one of %s)", column, joinEnum(models.KanbanColumns))
			}

			now := app.now()
			var rows [][]string
			for _, group := range viz.GroupByColumn(app.store.Snapshot().Projects) {
				if column != "" && group.Column != models.KanbanColumn(column) {
					continue
				}
				for _, p := range group.Projects {
					rows = append(rows, []string{
						p.ID,
						p.Title,
						p.ClientName,
						group.Label,
						viz.RelativeDeadline(p.Deadline, now),
						viz.FormatMoney(p.Revenue),
					})
				}
			}
			printTable(cmd.OutOrStdout(), "project(s)", []string{"ID", "TITLE", "CLIENT", "COLUMN", "DUE", "REVENUE"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Board column ("+joinEnum(models.KanbanColumns)+")")
	return cmd
}

func newListDevelopersCommand(app *App) *cobra.Command {
	var role, availability string

	cmd := &cobra.Command{
		Use:   "developers",
		Short: "List the contractor roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if availability != "" && !models.Availability(availability).Valid() {
				return fmt.Errorf("invalid --availability %q (want one of %s)", availability, joinEnum(models.Availabilities))
			}

			var rows [][]string
			for _, d := range viz.FilterDevelopers(app.store.Snapshot().Developers, role) {
				if availability != "" && d.Availability != models.Availability(availability) {
					continue
				}
				rows = append(rows, []string{d.ID, d.Name, d.Role, viz.FormatMoney(d.HourlyRate) + "/h", d.Availability.Label()})
			}
			printTable(cmd.OutOrStdout(), "developer(s)", []string{"ID", "NAME", "ROLE", "RATE", "AVAILABILITY"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role filter, e.g. \"Full Stack\" or \"UI/UX\"")
	cmd.Flags().StringVar(&availability, "availability", "", "Availability ("+joinEnum(models.Availabilities)+")")
	return cmd
}

func newListSnippetsCommand(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "snippets",
		Short: "List reusable text snippets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && category != "all" && !models.SnippetCategory(category).Valid() {
				return fmt.Errorf("invalid --category %q (want one of %s)", category, joinEnum(models.SnippetCategories))
			}

			var rows [][]string
			for _, s := range viz.FilterSnippets(app.store.Snapshot().Snippets, category) {
				rows = append(rows, []string{s.ID, s.Title, s.Category.Label(), truncate(strings.Join(strings.Fields(s.Content), " "), 48)})
			}
			printTable(cmd.OutOrStdout(), "snippet(s)", []string{"ID", "TITLE", "CATEGORY", "CONTENT"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Snippet category ("+joinEnum(models.SnippetCategories)+")")
	return cmd
}

func newListTemplatesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List proposal templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, t := range app.store.Snapshot().Templates {
				rows = append(rows, []string{t.ID, string(t.Category), t.Name})
			}
			printTable(cmd.OutOrStdout(), "template(s)", []string{"ID", "CATEGORY", "NAME"}, rows)
			return nil
		},
	}
}

func newListExpensesCommand(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.store.Snapshot()

			var rows [][]string
			for _, e := range viz.RecentExpenses(snap.Expenses, len(snap.Expenses)) {
				if projectID != "" && e.ProjectID != projectID {
					continue
				}
				rows = append(rows, []string{e.ID, e.Date.Format("2006-01-02"), e.Category.Label(), viz.FormatMoney(e.Amount), e.Description, e.ProjectTitle})
			}
			printTable(cmd.OutOrStdout(), "expense(s)", []string{"ID", "DATE", "CATEGORY", "AMOUNT", "DESCRIPTION", "PROJECT"}, rows)
			if len(rows) > 0 {
				rollup := viz.ComputeExpenseRollup(snap.Expenses, 0, projectID)
				fmt.Fprintf(cmd.OutOrStdout(), "Spent: %s\n", viz.FormatMoney(rollup.TotalExpenses))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Only expenses for this project ID")
	return cmd
}

func joinEnum[K ~string](values []K) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
