// ABOUTME: MCP server subcommand
// ABOUTME: Registers tools, resources and prompts over the store and serves them on stdio
package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/handlers"
	"github.com/harperreed/gigdesk/store"
)

func newMCPCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the dashboard as an MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.log.Info("Starting gigdesk MCP server...")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return NewMCPServer(app.store).Run(ctx, &mcp.StdioTransport{})
		},
	}
}

// NewMCPServer builds the MCP server with every tool, resource and prompt registered.
func NewMCPServer(s *store.Store) *mcp.Server {
	// Create handlers
	bidHandlers := handlers.NewBidHandlers(s)
	clientHandlers := handlers.NewClientHandlers(s)
	projectHandlers := handlers.NewProjectHandlers(s)
	developerHandlers := handlers.NewDeveloperHandlers(s)
	snippetHandlers := handlers.NewSnippetHandlers(s)
	expenseHandlers := handlers.NewExpenseHandlers(s)
	dashboardHandlers := handlers.NewDashboardHandlers(s)
	resourceHandlers := handlers.NewResourceHandlers(s)
	promptHandlers := handlers.NewPromptHandlers(s)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gigdesk",
		Version: Version,
	}, nil)

	// Bids
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_bid",
		Description: "Record a bid sent to a client",
	}, bidHandlers.AddBid)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_bid",
		Description: "Update a bid, e.g. to mark it won",
	}, bidHandlers.UpdateBid)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_bid",
		Description: "Delete a bid",
	}, bidHandlers.DeleteBid)

	// Clients
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_client",
		Description: "Add a client to the deal pipeline",
	}, clientHandlers.AddClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_client",
		Description: "Update a client's details or deal stage",
	}, clientHandlers.UpdateClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_client",
		Description: "Delete a client. Projects keep their copied client name",
	}, clientHandlers.DeleteClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_clients",
		Description: "Search clients by name or email, optionally within one deal stage",
	}, clientHandlers.FindClients)

	// Projects
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_project",
		Description: "Add a project card to the kanban board",
	}, projectHandlers.AddProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_project",
		Description: "Update a project's details",
	}, projectHandlers.UpdateProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_project",
		Description: "Move a project to another board column",
	}, projectHandlers.MoveProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project",
	}, projectHandlers.DeleteProject)

	// Developers
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_developer",
		Description: "Add a contractor to the roster",
	}, developerHandlers.AddDeveloper)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_developer",
		Description: "Update a contractor's details or availability",
	}, developerHandlers.UpdateDeveloper)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_developer",
		Description: "Remove a contractor from the roster",
	}, developerHandlers.DeleteDeveloper)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_developers",
		Description: "Filter the roster by role and availability",
	}, developerHandlers.FindDevelopers)

	// Snippets
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_snippet",
		Description: "Save a reusable text snippet",
	}, snippetHandlers.AddSnippet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_snippet",
		Description: "Update a snippet",
	}, snippetHandlers.UpdateSnippet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_snippet",
		Description: "Delete a snippet",
	}, snippetHandlers.DeleteSnippet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_snippets",
		Description: "List snippets, optionally within one category",
	}, snippetHandlers.FindSnippets)

	// Expenses
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_expense",
		Description: "Record a business expense, optionally against a project",
	}, expenseHandlers.AddExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_expense",
		Description: "Update an expense",
	}, expenseHandlers.UpdateExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_expense",
		Description: "Delete an expense",
	}, expenseHandlers.DeleteExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "expense_report",
		Description: "Total expenses by category with profit against won deals, optionally for one project",
	}, expenseHandlers.ExpenseReport)

	// Dashboard
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_profile",
		Description: "Update the user's display name or avatar",
	}, dashboardHandlers.UpdateProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_snapshot",
		Description: "Return every collection as it currently stands",
	}, dashboardHandlers.GetSnapshot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Return bid statistics, the deal pipeline, profit and active projects",
	}, dashboardHandlers.GetDashboard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the proposal templates",
	}, dashboardHandlers.ListTemplates)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_proposal",
		Description: "Draft a proposal for a job description from a template category",
	}, dashboardHandlers.GenerateProposal)

	// Resources
	for _, r := range resourceHandlers.Resources() {
		server.AddResource(r, resourceHandlers.ReadResource)
	}

	// Prompts
	for _, p := range promptHandlers.Prompts() {
		server.AddPrompt(p, promptHandlers.GetPrompt)
	}

	return server
}
