// ABOUTME: Snippet MCP tool handlers
// ABOUTME: Implements add_snippet, update_snippet, delete_snippet and find_snippets tools
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type SnippetHandlers struct {
	store *store.Store
}

func NewSnippetHandlers(s *store.Store) *SnippetHandlers {
	return &SnippetHandlers{store: s}
}

func validSnippetCategory(c string) error {
	if !models.SnippetCategory(c).Valid() {
		return fmt.Errorf("invalid category: %s (valid: %v)", c, models.SnippetCategories)
	}
	return nil
}

type AddSnippetInput struct {
	Title    string `json:"title" jsonschema:"Snippet title (required)"`
	Content  string `json:"content" jsonschema:"Snippet text (required)"`
	Category string `json:"category" jsonschema:"intros, follow_ups, delivery, portfolio or quick_replies (required)"`
}

func (h *SnippetHandlers) AddSnippet(_ context.Context, request *mcp.CallToolRequest, input AddSnippetInput) (*mcp.CallToolResult, SnippetOutput, error) {
	if input.Title == "" {
		return nil, SnippetOutput{}, fmt.Errorf("title is required")
	}
	if input.Content == "" {
		return nil, SnippetOutput{}, fmt.Errorf("content is required")
	}
	if err := validSnippetCategory(input.Category); err != nil {
		return nil, SnippetOutput{}, err
	}

	snippet := h.store.AddSnippet(models.Snippet{
		Title:    input.Title,
		Content:  input.Content,
		Category: models.SnippetCategory(input.Category),
	})
	return nil, snippetToOutput(snippet), nil
}

type UpdateSnippetInput struct {
	ID       string  `json:"id" jsonschema:"Snippet ID (required)"`
	Title    *string `json:"title,omitempty" jsonschema:"Updated title"`
	Content  *string `json:"content,omitempty" jsonschema:"Updated text"`
	Category *string `json:"category,omitempty" jsonschema:"Updated category"`
}

func (h *SnippetHandlers) UpdateSnippet(_ context.Context, request *mcp.CallToolRequest, input UpdateSnippetInput) (*mcp.CallToolResult, SnippetOutput, error) {
	if input.ID == "" {
		return nil, SnippetOutput{}, fmt.Errorf("id is required")
	}
	if err := requireNonEmpty("title", input.Title); err != nil {
		return nil, SnippetOutput{}, err
	}
	if err := requireNonEmpty("content", input.Content); err != nil {
		return nil, SnippetOutput{}, err
	}

	patch := models.SnippetPatch{Title: input.Title, Content: input.Content}
	if input.Category != nil {
		if err := validSnippetCategory(*input.Category); err != nil {
			return nil, SnippetOutput{}, err
		}
		c := models.SnippetCategory(*input.Category)
		patch.Category = &c
	}

	if !h.store.UpdateSnippet(input.ID, patch) {
		return nil, SnippetOutput{}, notFound("snippet", input.ID)
	}
	snippet, ok := h.store.Snippet(input.ID)
	if !ok {
		return nil, SnippetOutput{}, notFound("snippet", input.ID)
	}
	return nil, snippetToOutput(snippet), nil
}

func (h *SnippetHandlers) DeleteSnippet(_ context.Context, request *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	if !h.store.DeleteSnippet(input.ID) {
		return nil, DeleteOutput{}, notFound("snippet", input.ID)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

type FindSnippetsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Snippet category, or all"`
}

type FindSnippetsOutput struct {
	Snippets []SnippetOutput `json:"snippets"`
}

func (h *SnippetHandlers) FindSnippets(_ context.Context, request *mcp.CallToolRequest, input FindSnippetsInput) (*mcp.CallToolResult, FindSnippetsOutput, error) {
	snippets := viz.FilterSnippets(h.store.Snapshot().Snippets, input.Category)
	return nil, FindSnippetsOutput{Snippets: convert(snippets, snippetToOutput)}, nil
}
