// ABOUTME: Add commands for bids, clients, projects, developers, snippets and expenses
// ABOUTME: Validates flags the way the forms do before handing records to the store
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/viz"
)

const dateLayout = "2006-01-02"

// parseDay reads a YYYY-MM-DD flag in the local zone of def; empty yields def.
func parseDay(flag, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, def.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", flag, value)
	}
	return t, nil
}

func requireFlag(flag, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%s is required", flag)
	}
	return nil
}

func newAddCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bid, client, project, developer, snippet or expense",
	}
	cmd.AddCommand(
		newAddBidCommand(app),
		newAddClientCommand(app),
		newAddProjectCommand(app),
		newAddDeveloperCommand(app),
		newAddSnippetCommand(app),
		newAddExpenseCommand(app),
	)
	return cmd
}

func newAddBidCommand(app *App) *cobra.Command {
	var client, date string
	var amount float64
	var won bool

	cmd := &cobra.Command{
		Use:   "bid",
		Short: "Record a bid sent to a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("client", client); err != nil {
				return err
			}
			when, err := parseDay("date", date, app.now())
			if err != nil {
				return err
			}

			bid := app.store.AddBid(models.Bid{
				ClientName: strings.TrimSpace(client),
				Amount:     amount,
				Date:       when,
				Won:        won,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Bid created: %s (ID: %s)\n", bid.ClientName, bid.ID)
			fmt.Fprintf(out, "  Amount: %s\n", viz.FormatMoney(bid.Amount))
			if bid.Won {
				fmt.Fprintln(out, "  Won")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Bid amount in dollars")
	cmd.Flags().BoolVar(&won, "won", false, "Mark the bid as won")
	cmd.Flags().StringVar(&date, "date", "", "Bid date YYYY-MM-DD (default now)")
	return cmd
}

func newAddClientCommand(app *App) *cobra.Command {
	var name, email, phone, stage, notes string
	var revenue float64

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Add a client to the pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("name", name); err != nil {
				return err
			}
			if !models.DealStage(stage).Valid() {
				return fmt.Errorf("invalid --stage %q (want one of %s)", stage, joinEnum(models.DealStages))
			}

			client := app.store.AddClient(models.Client{
				Name:      strings.TrimSpace(name),
				Email:     email,
				Phone:     phone,
				DealStage: models.DealStage(stage),
				Revenue:   revenue,
				Notes:     notes,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Client created: %s (ID: %s)\n", client.Name, client.ID)
			fmt.Fprintf(out, "  Stage: %s\n", client.DealStage.Label())
			if client.Email != "" {
				fmt.Fprintf(out, "  Email: %s\n", client.Email)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&stage, "stage", string(models.StageLead), "Deal stage ("+joinEnum(models.DealStages)+")")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "Revenue in dollars")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func newAddProjectCommand(app *App) *cobra.Command {
	var title, clientID, deadline, column, notes string
	var revenue float64

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Add a project card to the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("title", title); err != nil {
				return err
			}
			if !models.KanbanColumn(column).Valid() {
				return fmt.Errorf("invalid --column %q (want one of %s)", column, joinEnum(models.KanbanColumns))
			}
			now := app.now()
			due, err := parseDay("deadline", deadline, now.Add(7*24*time.Hour))
			if err != nil {
				return err
			}

			// The client reference is weak: an unknown id is kept with no name.
			clientName := ""
			if c, ok := app.store.Client(clientID); ok {
				clientName = c.Name
			}

			project := app.store.AddProject(models.Project{
				Title:      strings.TrimSpace(title),
				ClientID:   clientID,
				ClientName: clientName,
				Deadline:   due,
				Revenue:    revenue,
				Notes:      notes,
				Column:     models.KanbanColumn(column),
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Project created: %s (ID: %s)\n", project.Title, project.ID)
			fmt.Fprintf(out, "  Column: %s\n", project.Column.Label())
			fmt.Fprintf(out, "  Due: %s (%s)\n", project.Deadline.Format(dateLayout), viz.RelativeDeadline(project.Deadline, now))
			if clientName != "" {
				fmt.Fprintf(out, "  Client: %s\n", clientName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title (required)")
	cmd.Flags().StringVar(&clientID, "client", "", "Client ID")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline YYYY-MM-DD (default one week out)")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "Project revenue in dollars")
	cmd.Flags().StringVar(&column, "column", string(models.ColumnTodo), "Board column ("+joinEnum(models.KanbanColumns)+")")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func newAddDeveloperCommand(app *App) *cobra.Command {
	var name, role, link, notes, availability string
	var rate float64

	cmd := &cobra.Command{
		Use:   "developer",
		Short: "Add a contractor to the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("name", name); err != nil {
				return err
			}
			if !models.Availability(availability).Valid() {
				return fmt.Errorf("invalid --availability %q (want one of %s)", availability, joinEnum(models.Availabilities))
			}

			dev := app.store.AddDeveloper(models.Developer{
				Name:         strings.TrimSpace(name),
				Role:         role,
				HourlyRate:   rate,
				ProfileLink:  link,
				Notes:        notes,
				Availability: models.Availability(availability),
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Developer added: %s (ID: %s)\n", dev.Name, dev.ID)
			if dev.Role != "" {
				fmt.Fprintf(out, "  Role: %s\n", dev.Role)
			}
			fmt.Fprintf(out, "  Rate: %s/h, %s\n", viz.FormatMoney(dev.HourlyRate), strings.ToLower(dev.Availability.Label()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Developer name (required)")
	cmd.Flags().StringVar(&role, "role", "", "Role, e.g. \"Backend Developer\"")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate in dollars")
	cmd.Flags().StringVar(&link, "link", "", "Profile link")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&availability, "availability", string(models.AvailabilityAvailable), "Availability ("+joinEnum(models.Availabilities)+")")
	return cmd
}

func newAddSnippetCommand(app *App) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Save a reusable text snippet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("title", title); err != nil {
				return err
			}
			if !models.SnippetCategory(category).Valid() {
				return fmt.Errorf("invalid --category %q (want one of %s)", category, joinEnum(models.SnippetCategories))
			}

			snippet := app.store.AddSnippet(models.Snippet{
				Title:    strings.TrimSpace(title),
				Content:  content,
				Category: models.SnippetCategory(category),
			})

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Snippet saved: %s (ID: %s)\n", snippet.Title, snippet.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Snippet title (required)")
	cmd.Flags().StringVar(&content, "content", "", "Snippet text")
	cmd.Flags().StringVar(&category, "category", string(models.SnippetQuickReplies), "Category ("+joinEnum(models.SnippetCategories)+")")
	return cmd
}

func newAddExpenseCommand(app *App) *cobra.Command {
	var description, category, projectID, date string
	var amount float64

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record a business expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("description", description); err != nil {
				return err
			}
			if amount <= 0 {
				return fmt.Errorf("--amount must be greater than zero")
			}
			if !models.ExpenseCategory(category).Valid() {
				return fmt.Errorf("invalid --category %q (want one of %s)", category, joinEnum(models.ExpenseCategories))
			}
			when, err := parseDay("date", date, app.now())
			if err != nil {
				return err
			}

			projectTitle := ""
			if p, ok := app.store.Project(projectID); ok {
				projectTitle = p.Title
			}

			expense := app.store.AddExpense(models.Expense{
				Amount:       amount,
				Category:     models.ExpenseCategory(category),
				Description:  strings.TrimSpace(description),
				Date:         when,
				ProjectID:    projectID,
				ProjectTitle: projectTitle,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Expense recorded: %s (ID: %s)\n", expense.Description, expense.ID)
			fmt.Fprintf(out, "  %s, %s\n", viz.FormatMoney(expense.Amount), expense.Category.Label())
			if projectTitle != "" {
				fmt.Fprintf(out, "  Project: %s\n", projectTitle)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "What the money was spent on (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount in dollars (required, > 0)")
	cmd.Flags().StringVar(&category, "category", string(models.ExpenseOther), "Category ("+joinEnum(models.ExpenseCategories)+")")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&date, "date", "", "Expense date YYYY-MM-DD (default now)")
	return cmd
}
