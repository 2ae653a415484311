// ABOUTME: Project MCP tool handlers
// ABOUTME: Implements add_project, update_project, move_project and delete_project tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultDeadline = 7 * 24 * time.Hour

type ProjectHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewProjectHandlers(s *store.Store) *ProjectHandlers {
	return &ProjectHandlers{store: s, now: time.Now}
}

func validColumn(column string) error {
	if !models.KanbanColumn(column).Valid() {
		return fmt.Errorf("invalid column: %s (valid: %v)", column, models.KanbanColumns)
	}
	return nil
}

type AddProjectInput struct {
	Title      string  `json:"title" jsonschema:"Project title (required)"`
	ClientID   string  `json:"client_id,omitempty" jsonschema:"ID of the client the project is for"`
	ClientName string  `json:"client_name,omitempty" jsonschema:"Client name (defaults to the named client's current name)"`
	Deadline   string  `json:"deadline,omitempty" jsonschema:"Deadline, ISO 8601 or YYYY-MM-DD (default one week from now)"`
	Revenue    float64 `json:"revenue,omitempty" jsonschema:"Project revenue in dollars"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Free-form notes"`
	Column     string  `json:"column,omitempty" jsonschema:"Board column: todo, in_progress, waiting, revisions, ready or completed (default todo)"`
}

func (h *ProjectHandlers) AddProject(_ context.Context, request *mcp.CallToolRequest, input AddProjectInput) (*mcp.CallToolResult, ProjectOutput, error) {
	if input.Title == "" {
		return nil, ProjectOutput{}, fmt.Errorf("title is required")
	}

	column := models.ColumnTodo
	if input.Column != "" {
		if err := validColumn(input.Column); err != nil {
			return nil, ProjectOutput{}, err
		}
		column = models.KanbanColumn(input.Column)
	}

	now := h.now()
	deadline, err := parseDate("deadline", input.Deadline, now.Add(defaultDeadline))
	if err != nil {
		return nil, ProjectOutput{}, err
	}

	// The client name is copied now and never follows later renames.
	clientName := input.ClientName
	if clientName == "" && input.ClientID != "" {
		if c, ok := h.store.Client(input.ClientID); ok {
			clientName = c.Name
		}
	}

	project := h.store.AddProject(models.Project{
		Title:      input.Title,
		ClientID:   input.ClientID,
		ClientName: clientName,
		Deadline:   deadline,
		Revenue:    input.Revenue,
		Notes:      input.Notes,
		Column:     column,
	})
	return nil, projectToOutput(project), nil
}

type UpdateProjectInput struct {
	ID         string   `json:"id" jsonschema:"Project ID (required)"`
	Title      *string  `json:"title,omitempty" jsonschema:"Updated title"`
	ClientID   *string  `json:"client_id,omitempty" jsonschema:"Updated client ID"`
	ClientName *string  `json:"client_name,omitempty" jsonschema:"Updated client name"`
	Deadline   *string  `json:"deadline,omitempty" jsonschema:"Updated deadline, ISO 8601 or YYYY-MM-DD"`
	Revenue    *float64 `json:"revenue,omitempty" jsonschema:"Updated revenue in dollars"`
	Notes      *string  `json:"notes,omitempty" jsonschema:"Updated notes"`
	Column     *string  `json:"column,omitempty" jsonschema:"Updated board column"`
}

func (h *ProjectHandlers) UpdateProject(_ context.Context, request *mcp.CallToolRequest, input UpdateProjectInput) (*mcp.CallToolResult, ProjectOutput, error) {
	if input.ID == "" {
		return nil, ProjectOutput{}, fmt.Errorf("id is required")
	}
	if err := requireNonEmpty("title", input.Title); err != nil {
		return nil, ProjectOutput{}, err
	}
	deadline, err := parseDatePtr("deadline", input.Deadline, h.now())
	if err != nil {
		return nil, ProjectOutput{}, err
	}

	patch := models.ProjectPatch{
		Title:      input.Title,
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Deadline:   deadline,
		Revenue:    input.Revenue,
		Notes:      input.Notes,
	}
	if input.Column != nil {
		if err := validColumn(*input.Column); err != nil {
			return nil, ProjectOutput{}, err
		}
		column := models.KanbanColumn(*input.Column)
		patch.Column = &column
	}

	if !h.store.UpdateProject(input.ID, patch) {
		return nil, ProjectOutput{}, notFound("project", input.ID)
	}
	return h.output(input.ID)
}

type MoveProjectInput struct {
	ID     string `json:"id" jsonschema:"Project ID (required)"`
	Column string `json:"column" jsonschema:"Target column (required)"`
}

func (h *ProjectHandlers) MoveProject(_ context.Context, request *mcp.CallToolRequest, input MoveProjectInput) (*mcp.CallToolResult, ProjectOutput, error) {
	if input.ID == "" {
		return nil, ProjectOutput{}, fmt.Errorf("id is required")
	}
	if err := validColumn(input.Column); err != nil {
		return nil, ProjectOutput{}, err
	}

	if !h.store.MoveProject(input.ID, models.KanbanColumn(input.Column)) {
		return nil, ProjectOutput{}, notFound("project", input.ID)
	}
	return h.output(input.ID)
}

func (h *ProjectHandlers) DeleteProject(_ context.Context, request *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	if !h.store.DeleteProject(input.ID) {
		return nil, DeleteOutput{}, notFound("project", input.ID)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

func (h *ProjectHandlers) output(id string) (*mcp.CallToolResult, ProjectOutput, error) {
	project, ok := h.store.Project(id)
	if !ok {
		return nil, ProjectOutput{}, notFound("project", id)
	}
	return nil, projectToOutput(project), nil
}
