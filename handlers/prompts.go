// ABOUTME: MCP prompt handlers for reusable freelance workflow templates
// ABOUTME: Provides pipeline review, follow-up and proposal drafting prompts
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/proposals"
	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PromptHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewPromptHandlers(s *store.Store) *PromptHandlers {
	return &PromptHandlers{store: s, now: time.Now}
}

// Prompts lists the prompts served by GetPrompt.
func (h *PromptHandlers) Prompts() []*mcp.Prompt {
	return []*mcp.Prompt{
		{
			Name:        "pipeline-review",
			Description: "Review the deal pipeline and suggest next steps per stage",
		},
		{
			Name:        "follow-up-suggestions",
			Description: "Suggest follow-ups for clients with open proposals or negotiations",
		},
		{
			Name:        "proposal-draft",
			Description: "Draft a tailored proposal for a job posting",
			Arguments: []*mcp.PromptArgument{
				{Name: "category", Description: "Template category", Required: true},
				{Name: "job_description", Description: "The job posting", Required: true},
			},
		},
	}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	switch request.Params.Name {
	case "pipeline-review":
		return h.getPipelineReviewPrompt()
	case "follow-up-suggestions":
		return h.getFollowUpSuggestionsPrompt()
	case "proposal-draft":
		return h.getProposalDraftPrompt(request.Params.Arguments)
	default:
		return nil, fmt.Errorf("unknown prompt: %s", request.Params.Name)
	}
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

func (h *PromptHandlers) getPipelineReviewPrompt() (*mcp.GetPromptResult, error) {
	snap := h.store.Snapshot()
	p := viz.ComputePipeline(snap.Clients)

	var promptText strings.Builder
	promptText.WriteString("Review my freelance deal pipeline and suggest concrete next steps for each stage.\n\n")
	for _, s := range p.Stages {
		promptText.WriteString(fmt.Sprintf("## %s (%d, %s)\n", s.Label, s.Count, viz.FormatMoney(s.Revenue)))
		for _, c := range snap.Clients {
			if c.DealStage == s.Stage {
				promptText.WriteString(fmt.Sprintf("- %s: %s\n", c.Name, c.Notes))
			}
		}
	}
	promptText.WriteString(fmt.Sprintf("\nPipeline value %s across %d active deals.\n",
		viz.FormatMoney(p.PipelineValue), p.ActiveDeals))

	return userPrompt("Deal pipeline review", promptText.String()), nil
}

func (h *PromptHandlers) getFollowUpSuggestionsPrompt() (*mcp.GetPromptResult, error) {
	snap := h.store.Snapshot()

	var promptText strings.Builder
	promptText.WriteString("Suggest a short follow-up message for each of these clients.\n\n")
	for _, c := range snap.Clients {
		if c.DealStage != models.StageProposalSent && c.DealStage != models.StageNegotiation {
			continue
		}
		promptText.WriteString(fmt.Sprintf("- %s (%s): %s\n", c.Name, c.DealStage.Label(), c.Notes))
	}

	followUps := viz.FilterSnippets(snap.Snippets, string(models.SnippetFollowUps))
	if len(followUps) > 0 {
		promptText.WriteString("\nMatch the tone of my saved follow-ups:\n")
		for _, s := range followUps {
			promptText.WriteString(fmt.Sprintf("> %s\n", s.Content))
		}
	}

	return userPrompt("Follow-up suggestions", promptText.String()), nil
}

func (h *PromptHandlers) getProposalDraftPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	category := models.TemplateCategory(args["category"])
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category: %s", args["category"])
	}

	p, err := proposals.Generate(h.store.Snapshot().Templates, category, args["job_description"])
	if err != nil {
		return nil, fmt.Errorf("job_description is required: %w", err)
	}

	var promptText strings.Builder
	promptText.WriteString("Polish this proposal for the job below. Keep it under 150 words.\n\n")
	promptText.WriteString("Job posting:\n")
	promptText.WriteString(args["job_description"])
	promptText.WriteString("\n\nDraft:\n")
	promptText.WriteString(p.Text)
	if len(p.Keywords) > 0 {
		promptText.WriteString("\n\nKeywords to emphasise: ")
		promptText.WriteString(strings.Join(p.Keywords, ", "))
	}

	return userPrompt(fmt.Sprintf("Proposal draft (%s)", category.Label()), promptText.String()), nil
}
