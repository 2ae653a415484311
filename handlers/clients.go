// ABOUTME: Client MCP tool handlers
// ABOUTME: Implements add_client, update_client, delete_client and find_clients tools
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ClientHandlers struct {
	store *store.Store
}

func NewClientHandlers(s *store.Store) *ClientHandlers {
	return &ClientHandlers{store: s}
}

func validStage(stage string) error {
	if !models.DealStage(stage).Valid() {
		return fmt.Errorf("invalid deal_stage: %s (valid: %v)", stage, models.DealStages)
	}
	return nil
}

type AddClientInput struct {
	Name      string  `json:"name" jsonschema:"Client name (required)"`
	Email     string  `json:"email,omitempty" jsonschema:"Email address"`
	Phone     string  `json:"phone,omitempty" jsonschema:"Phone number"`
	DealStage string  `json:"deal_stage,omitempty" jsonschema:"Deal stage: lead, proposal_sent, negotiation, won or lost (default lead)"`
	Revenue   float64 `json:"revenue,omitempty" jsonschema:"Revenue attributed to the client in dollars"`
	Notes     string  `json:"notes,omitempty" jsonschema:"Free-form notes"`
	Avatar    *string `json:"avatar,omitempty" jsonschema:"Avatar image reference"`
}

func (h *ClientHandlers) AddClient(_ context.Context, request *mcp.CallToolRequest, input AddClientInput) (*mcp.CallToolResult, ClientOutput, error) {
	if input.Name == "" {
		return nil, ClientOutput{}, fmt.Errorf("name is required")
	}

	stage := models.StageLead
	if input.DealStage != "" {
		if err := validStage(input.DealStage); err != nil {
			return nil, ClientOutput{}, err
		}
		stage = models.DealStage(input.DealStage)
	}

	client := h.store.AddClient(models.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		DealStage: stage,
		Revenue:   input.Revenue,
		Notes:     input.Notes,
		Avatar:    input.Avatar,
	})
	return nil, clientToOutput(client), nil
}

type UpdateClientInput struct {
	ID        string   `json:"id" jsonschema:"Client ID (required)"`
	Name      *string  `json:"name,omitempty" jsonschema:"Updated name"`
	Email     *string  `json:"email,omitempty" jsonschema:"Updated email"`
	Phone     *string  `json:"phone,omitempty" jsonschema:"Updated phone"`
	DealStage *string  `json:"deal_stage,omitempty" jsonschema:"Updated deal stage"`
	Revenue   *float64 `json:"revenue,omitempty" jsonschema:"Updated revenue in dollars"`
	Notes     *string  `json:"notes,omitempty" jsonschema:"Updated notes"`
	Avatar    *string  `json:"avatar,omitempty" jsonschema:"Updated avatar reference"`
}

func (h *ClientHandlers) UpdateClient(_ context.Context, request *mcp.CallToolRequest, input UpdateClientInput) (*mcp.CallToolResult, ClientOutput, error) {
	if input.ID == "" {
		return nil, ClientOutput{}, fmt.Errorf("id is required")
	}
	if err := requireNonEmpty("name", input.Name); err != nil {
		return nil, ClientOutput{}, err
	}

	patch := models.ClientPatch{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Revenue: input.Revenue,
		Notes:   input.Notes,
		Avatar:  input.Avatar,
	}
	if input.DealStage != nil {
		if err := validStage(*input.DealStage); err != nil {
			return nil, ClientOutput{}, err
		}
		stage := models.DealStage(*input.DealStage)
		patch.DealStage = &stage
	}

	if !h.store.UpdateClient(input.ID, patch) {
		return nil, ClientOutput{}, notFound("client", input.ID)
	}
	client, ok := h.store.Client(input.ID)
	if !ok {
		return nil, ClientOutput{}, notFound("client", input.ID)
	}
	return nil, clientToOutput(client), nil
}

func (h *ClientHandlers) DeleteClient(_ context.Context, request *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	if !h.store.DeleteClient(input.ID) {
		return nil, DeleteOutput{}, notFound("client", input.ID)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

type FindClientsInput struct {
	Query     string `json:"query,omitempty" jsonschema:"Search query (matches name and email)"`
	DealStage string `json:"deal_stage,omitempty" jsonschema:"Only clients in this deal stage"`
}

type FindClientsOutput struct {
	Clients []ClientOutput `json:"clients"`
}

func (h *ClientHandlers) FindClients(_ context.Context, request *mcp.CallToolRequest, input FindClientsInput) (*mcp.CallToolResult, FindClientsOutput, error) {
	if input.DealStage != "" {
		if err := validStage(input.DealStage); err != nil {
			return nil, FindClientsOutput{}, err
		}
	}

	result := []ClientOutput{}
	for _, c := range viz.FilterClients(h.store.Snapshot().Clients, input.Query) {
		if input.DealStage != "" && string(c.DealStage) != input.DealStage {
			continue
		}
		result = append(result, clientToOutput(c))
	}
	return nil, FindClientsOutput{Clients: result}, nil
}
