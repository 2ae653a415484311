// ABOUTME: Proposal generation and clipboard commands
// ABOUTME: Builds a proposal from a template category and a job description, and copies text to the clipboard
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/proposals"
)

func newProposeCommand(app *App) *cobra.Command {
	var category string
	var copyText, asJSON bool

	cmd := &cobra.Command{
		Use:   "propose [job description]",
		Short: "Draft a proposal for a job description",
		Long: `Draft a proposal from the template for --category, opening with the
keywords found in the job description. The description is read from the
arguments, or from stdin when it is piped in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !models.TemplateCategory(category).Valid() {
				return fmt.Errorf("invalid --category %q (want one of %s)", category, joinEnum(models.TemplateCategories))
			}

			description := strings.Join(args, " ")
			if description == "" {
				piped, err := readPiped(cmd.InOrStdin())
				if err != nil {
					return err
				}
				description = piped
			}

			p, err := proposals.Generate(app.store.Snapshot().Templates, models.TemplateCategory(category), description)
			if errors.Is(err, proposals.ErrEmptyDescription) {
				return fmt.Errorf("a job description is required: pass it as arguments or on stdin")
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(p); err != nil {
					return err
				}
			} else {
				if p.TemplateName != "" {
					fmt.Fprintf(out, "Template: %s\n", p.TemplateName)
				}
				if len(p.Keywords) > 0 {
					fmt.Fprintf(out, "Keywords: %s\n", strings.Join(p.Keywords, ", "))
				}
				fmt.Fprintf(out, "\n%s\n", p.Text)
			}

			if copyText {
				if err := app.writeClipboard(p.Text); err != nil {
					app.log.WithError(err).Warn("failed to copy proposal to clipboard")
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "✓ Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(models.TemplateDesign), "Template category ("+joinEnum(models.TemplateCategories)+")")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the proposal text to the clipboard")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the proposal as JSON")
	return cmd
}

func newCopySnippetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy-snippet <snippet-id>",
		Short: "Copy a snippet's content to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, ok := app.store.Snippet(args[0])
			if !ok {
				return notFound("snippet", args[0])
			}
			if err := app.writeClipboard(snippet.Content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Copied %s to clipboard\n", snippet.Title)
			return nil
		},
	}
}

func (a *App) writeClipboard(text string) error {
	if a.copy != nil {
		return a.copy(text)
	}
	return clipboard.WriteAll(text)
}

// readPiped reads all of in unless it is an interactive terminal.
func readPiped(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return string(data), nil
}
