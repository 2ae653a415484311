// ABOUTME: Tests for MCP resources and prompts
// ABOUTME: Reads gigdesk:// URIs and renders each prompt template
package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readResource(t *testing.T, h *ResourceHandlers, uri string) (*mcp.ReadResourceResult, error) {
	t.Helper()
	return h.ReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
}

func TestReadCollectionResources(t *testing.T) {
	h := NewResourceHandlers(setupTestStore(t))

	for _, r := range h.Resources() {
		result, err := readResource(t, h, r.URI)
		require.NoError(t, err, r.URI)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, r.URI, result.Contents[0].URI)
		assert.NotEmpty(t, result.Contents[0].Text, r.URI)
	}

	result, err := readResource(t, h, "gigdesk://clients")
	require.NoError(t, err)
	var clients []ClientOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &clients))
	assert.Len(t, clients, 5)
}

func TestReadDashboardResource(t *testing.T) {
	h := NewResourceHandlers(setupTestStore(t))
	h.now = clock

	result, err := readResource(t, h, "gigdesk://dashboard")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "60% win rate")
}

func TestReadResourceErrors(t *testing.T) {
	h := NewResourceHandlers(setupTestStore(t))

	_, err := readResource(t, h, "crm://contacts")
	assert.Error(t, err)

	_, err = readResource(t, h, "gigdesk://invoices")
	assert.Error(t, err)
}

func getPrompt(t *testing.T, h *PromptHandlers, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	t.Helper()
	return h.GetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Name: name, Arguments: args},
	})
}

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, result.Messages, 1)
	text, ok := result.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestPipelineReviewPrompt(t *testing.T) {
	result, err := getPrompt(t, NewPromptHandlers(setupTestStore(t)), "pipeline-review", nil)
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "## Won Deals (2, $13,700)")
	assert.Contains(t, text, "Lisa Anderson")
}

func TestFollowUpSuggestionsPrompt(t *testing.T) {
	result, err := getPrompt(t, NewPromptHandlers(setupTestStore(t)), "follow-up-suggestions", nil)
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "Michael Chen")
	assert.Contains(t, text, "Emma Williams")
	assert.NotContains(t, text, "David Brown")
	assert.Contains(t, text, "follow up on my proposal")
}

func TestProposalDraftPrompt(t *testing.T) {
	h := NewPromptHandlers(setupTestStore(t))

	result, err := getPrompt(t, h, "proposal-draft", map[string]string{
		"category":        "admin",
		"job_description": "Inbox management and calendar scheduling",
	})
	require.NoError(t, err)
	text := promptText(t, result)
	assert.Contains(t, text, "virtual assistant")
	assert.Contains(t, text, "inbox")

	_, err = getPrompt(t, h, "proposal-draft", map[string]string{"category": "admin"})
	assert.Error(t, err)

	_, err = getPrompt(t, h, "unknown", nil)
	assert.Error(t, err)
}
