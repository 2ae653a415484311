// ABOUTME: Developer MCP tool handlers
// ABOUTME: Implements add_developer, update_developer, delete_developer and find_developers tools
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type DeveloperHandlers struct {
	store *store.Store
}

func NewDeveloperHandlers(s *store.Store) *DeveloperHandlers {
	return &DeveloperHandlers{store: s}
}

func validAvailability(a string) error {
	if !models.Availability(a).Valid() {
		return fmt.Errorf("invalid availability: %s (valid: %v)", a, models.Availabilities)
	}
	return nil
}

type AddDeveloperInput struct {
	Name         string  `json:"name" jsonschema:"Developer name (required)"`
	Role         string  `json:"role,omitempty" jsonschema:"Role, e.g. Backend Developer"`
	HourlyRate   float64 `json:"hourly_rate,omitempty" jsonschema:"Hourly rate in dollars"`
	ProfileLink  string  `json:"profile_link,omitempty" jsonschema:"Portfolio or profile URL"`
	Notes        string  `json:"notes,omitempty" jsonschema:"Free-form notes"`
	Availability string  `json:"availability,omitempty" jsonschema:"available, busy or unavailable (default available)"`
	Avatar       *int    `json:"avatar,omitempty" jsonschema:"Avatar index"`
}

func (h *DeveloperHandlers) AddDeveloper(_ context.Context, request *mcp.CallToolRequest, input AddDeveloperInput) (*mcp.CallToolResult, DeveloperOutput, error) {
	if input.Name == "" {
		return nil, DeveloperOutput{}, fmt.Errorf("name is required")
	}

	availability := models.AvailabilityAvailable
	if input.Availability != "" {
		if err := validAvailability(input.Availability); err != nil {
			return nil, DeveloperOutput{}, err
		}
		availability = models.Availability(input.Availability)
	}

	dev := h.store.AddDeveloper(models.Developer{
		Name:         input.Name,
		Role:         input.Role,
		HourlyRate:   input.HourlyRate,
		ProfileLink:  input.ProfileLink,
		Notes:        input.Notes,
		Availability: availability,
		Avatar:       input.Avatar,
	})
	return nil, developerToOutput(dev), nil
}

type UpdateDeveloperInput struct {
	ID           string   `json:"id" jsonschema:"Developer ID (required)"`
	Name         *string  `json:"name,omitempty" jsonschema:"Updated name"`
	Role         *string  `json:"role,omitempty" jsonschema:"Updated role"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty" jsonschema:"Updated hourly rate"`
	ProfileLink  *string  `json:"profile_link,omitempty" jsonschema:"Updated profile URL"`
	Notes        *string  `json:"notes,omitempty" jsonschema:"Updated notes"`
	Availability *string  `json:"availability,omitempty" jsonschema:"Updated availability"`
	Avatar       *int     `json:"avatar,omitempty" jsonschema:"Updated avatar index"`
}

func (h *DeveloperHandlers) UpdateDeveloper(_ context.Context, request *mcp.CallToolRequest, input UpdateDeveloperInput) (*mcp.CallToolResult, DeveloperOutput, error) {
	if input.ID == "" {
		return nil, DeveloperOutput{}, fmt.Errorf("id is required")
	}
	if err := requireNonEmpty("name", input.Name); err != nil {
		return nil, DeveloperOutput{}, err
	}

	patch := models.DeveloperPatch{
		Name:        input.Name,
		Role:        input.Role,
		HourlyRate:  input.HourlyRate,
		ProfileLink: input.ProfileLink,
		Notes:       input.Notes,
		Avatar:      input.Avatar,
	}
	if input.Availability != nil {
		if err := validAvailability(*input.Availability); err != nil {
			return nil, DeveloperOutput{}, err
		}
		a := models.Availability(*input.Availability)
		patch.Availability = &a
	}

	if !h.store.UpdateDeveloper(input.ID, patch) {
		return nil, DeveloperOutput{}, notFound("developer", input.ID)
	}
	dev, ok := h.store.Developer(input.ID)
	if !ok {
		return nil, DeveloperOutput{}, notFound("developer", input.ID)
	}
	return nil, developerToOutput(dev), nil
}

func (h *DeveloperHandlers) DeleteDeveloper(_ context.Context, request *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	if !h.store.DeleteDeveloper(input.ID) {
		return nil, DeleteOutput{}, notFound("developer", input.ID)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

type FindDevelopersInput struct {
	Role         string `json:"role,omitempty" jsonschema:"Role substring, or All"`
	Availability string `json:"availability,omitempty" jsonschema:"Only developers with this availability"`
}

type FindDevelopersOutput struct {
	Developers []DeveloperOutput `json:"developers"`
}

func (h *DeveloperHandlers) FindDevelopers(_ context.Context, request *mcp.CallToolRequest, input FindDevelopersInput) (*mcp.CallToolResult, FindDevelopersOutput, error) {
	if input.Availability != "" {
		if err := validAvailability(input.Availability); err != nil {
			return nil, FindDevelopersOutput{}, err
		}
	}

	result := []DeveloperOutput{}
	for _, d := range viz.FilterDevelopers(h.store.Snapshot().Developers, input.Role) {
		if input.Availability != "" && string(d.Availability) != input.Availability {
			continue
		}
		result = append(result, developerToOutput(d))
	}
	return nil, FindDevelopersOutput{Developers: result}, nil
}
