// ABOUTME: Commands that change existing records
// ABOUTME: Moves projects, marks bids won, deletes records and edits the profile
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/gigdesk/handlers"
	"github.com/harperreed/gigdesk/models"
)

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, handlers.ErrNotFound)
}

func newMoveProjectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move-project <project-id> <column>",
		Short: "Move a project card to another board column",
		Long:  "Move a project card to another board column. Columns: " + joinEnum(models.KanbanColumns) + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, column := args[0], models.KanbanColumn(args[1])
			if !column.Valid() {
				return fmt.Errorf("invalid column %q (want one of %s)", args[1], joinEnum(models.KanbanColumns))
			}
			if !app.store.MoveProject(id, column) {
				return notFound("project", id)
			}

			p, _ := app.store.Project(id)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Moved %s to %s\n", p.Title, column.Label())
			return nil
		},
	}
}

func newMarkWonCommand(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "won <bid-id>",
		Short: "Mark a bid as won",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			won := !undo
			if !app.store.UpdateBid(args[0], models.BidPatch{Won: &won}) {
				return notFound("bid", args[0])
			}
			if won {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Bid %s marked won\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Bid %s marked open\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the bid as not won")
	return cmd
}

// deleters maps a collection name, singular or plural, to its store delete.
func deleters(app *App) map[string]func(id string) bool {
	return map[string]func(id string) bool{
		"bid":       app.store.DeleteBid,
		"client":    app.store.DeleteClient,
		"project":   app.store.DeleteProject,
		"developer": app.store.DeleteDeveloper,
		"snippet":   app.store.DeleteSnippet,
		"expense":   app.store.DeleteExpense,
	}
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <bid|client|project|developer|snippet|expense> <id>",
		Short: "Delete a record. References to it are left as they are",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := strings.TrimSuffix(strings.ToLower(args[0]), "s")
			del, ok := deleters(app)[kind]
			if !ok {
				return fmt.Errorf("unknown collection %q", args[0])
			}
			if !del(args[1]) {
				return notFound(kind, args[1])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s: %s\n", kind, args[1])
			return nil
		},
	}
}

func newProfileCommand(app *App) *cobra.Command {
	var name string
	var avatar int

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the profile name and avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch models.UserProfilePatch
			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(name) == "" {
					return fmt.Errorf("--name cannot be empty")
				}
				name = strings.TrimSpace(name)
				patch.Name = &name
			}
			if cmd.Flags().Changed("avatar") {
				if avatar < 0 {
					return fmt.Errorf("--avatar must not be negative")
				}
				patch.AvatarIndex = &avatar
			}

			profile := app.store.Snapshot().UserProfile
			if patch.Name != nil || patch.AvatarIndex != nil {
				profile = app.store.UpdateUserProfile(patch)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Name:   %s\nAvatar: %d\n", profile.Name, profile.AvatarIndex)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&avatar, "avatar", 0, "Avatar index")
	return cmd
}
