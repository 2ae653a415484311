// ABOUTME: MCP resource handlers for exposing dashboard data
// ABOUTME: Provides read-only access to collections and derived views via gigdesk:// URIs
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const resourceScheme = "gigdesk://"

type ResourceHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewResourceHandlers(s *store.Store) *ResourceHandlers {
	return &ResourceHandlers{store: s, now: time.Now}
}

// Resources lists the fixed resources served by ReadResource.
func (h *ResourceHandlers) Resources() []*mcp.Resource {
	var out []*mcp.Resource
	for _, c := range store.Collections {
		out = append(out, &mcp.Resource{
			URI:      resourceScheme + string(c),
			Name:     string(c),
			MIMEType: "application/json",
		})
	}
	out = append(out,
		&mcp.Resource{URI: resourceScheme + "dashboard", Name: "dashboard", MIMEType: "text/plain"},
		&mcp.Resource{URI: resourceScheme + "board", Name: "board", MIMEType: "application/json"},
	)
	return out
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", resourceScheme)
	}

	snap := h.store.Snapshot()
	name := strings.TrimPrefix(uri, resourceScheme)

	switch name {
	case "dashboard":
		return textResource(uri, "text/plain", viz.RenderDashboard(viz.GenerateDashboard(snap, h.now()))), nil
	case "board":
		return jsonResource(uri, viz.GroupByColumn(snap.Projects))
	}

	out := snapshotToOutput(snap)
	switch store.Collection(name) {
	case store.CollectionBids:
		return jsonResource(uri, out.Bids)
	case store.CollectionClients:
		return jsonResource(uri, out.Clients)
	case store.CollectionProjects:
		return jsonResource(uri, out.Projects)
	case store.CollectionDevelopers:
		return jsonResource(uri, out.Developers)
	case store.CollectionSnippets:
		return jsonResource(uri, out.Snippets)
	case store.CollectionTemplates:
		return jsonResource(uri, out.Templates)
	case store.CollectionExpenses:
		return jsonResource(uri, out.Expenses)
	case store.CollectionUserProfile:
		return jsonResource(uri, out.UserProfile)
	}
	return nil, fmt.Errorf("unknown resource: %s", name)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}
	return textResource(uri, "application/json", string(data)), nil
}

func textResource(uri, mime, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: mime,
			Text:     text,
		},
	}}
}
