// ABOUTME: Dashboard, profile and proposal MCP tool handlers
// ABOUTME: Implements update_profile, get_snapshot, get_dashboard, list_templates and generate_proposal tools
package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/proposals"
	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type DashboardHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewDashboardHandlers(s *store.Store) *DashboardHandlers {
	return &DashboardHandlers{store: s, now: time.Now}
}

type UpdateProfileInput struct {
	Name        *string `json:"name,omitempty" jsonschema:"Display name"`
	AvatarIndex *int    `json:"avatar_index,omitempty" jsonschema:"Avatar index"`
}

func (h *DashboardHandlers) UpdateProfile(_ context.Context, request *mcp.CallToolRequest, input UpdateProfileInput) (*mcp.CallToolResult, models.UserProfile, error) {
	if err := requireNonEmpty("name", input.Name); err != nil {
		return nil, models.UserProfile{}, err
	}
	if input.AvatarIndex != nil && *input.AvatarIndex < 0 {
		return nil, models.UserProfile{}, fmt.Errorf("avatar_index cannot be negative")
	}

	profile := h.store.UpdateUserProfile(models.UserProfilePatch{
		Name:        input.Name,
		AvatarIndex: input.AvatarIndex,
	})
	return nil, profile, nil
}

type SnapshotInput struct{}

type SnapshotOutput struct {
	Version     uint64             `json:"version"`
	Bids        []BidOutput        `json:"bids"`
	Clients     []ClientOutput     `json:"clients"`
	Projects    []ProjectOutput    `json:"projects"`
	Developers  []DeveloperOutput  `json:"developers"`
	Snippets    []SnippetOutput    `json:"snippets"`
	Templates   []TemplateOutput   `json:"templates"`
	Expenses    []ExpenseOutput    `json:"expenses"`
	UserProfile models.UserProfile `json:"user_profile"`
}

func snapshotToOutput(snap store.Snapshot) SnapshotOutput {
	return SnapshotOutput{
		Version:     snap.Version,
		Bids:        convert(snap.Bids, bidToOutput),
		Clients:     convert(snap.Clients, clientToOutput),
		Projects:    convert(snap.Projects, projectToOutput),
		Developers:  convert(snap.Developers, developerToOutput),
		Snippets:    convert(snap.Snippets, snippetToOutput),
		Templates:   convert(snap.Templates, templateToOutput),
		Expenses:    convert(snap.Expenses, expenseToOutput),
		UserProfile: snap.UserProfile,
	}
}

func (h *DashboardHandlers) GetSnapshot(_ context.Context, request *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, SnapshotOutput, error) {
	return nil, snapshotToOutput(h.store.Snapshot()), nil
}

type StageOutput struct {
	Stage   string  `json:"stage"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DashboardOutput struct {
	BidsToday        int                `json:"bids_today"`
	BidsThisMonth    int                `json:"bids_this_month"`
	BidsAllTime      int                `json:"bids_all_time"`
	WinRate          int                `json:"win_rate"`
	MonthlyRevenue   float64            `json:"monthly_revenue"`
	AllTimeRevenue   float64            `json:"all_time_revenue"`
	Stages           []StageOutput      `json:"stages"`
	PipelineValue    float64            `json:"pipeline_value"`
	WonDealsValue    float64            `json:"won_deals_value"`
	ActiveDeals      int                `json:"active_deals"`
	ConversionMetric int                `json:"conversion_metric"`
	TotalExpenses    float64            `json:"total_expenses"`
	TotalProfit      float64            `json:"total_profit"`
	ProfitMargin     int                `json:"profit_margin"`
	ActiveProjects   []ProjectOutput    `json:"active_projects"`
	CompletedCount   int                `json:"completed_projects"`
	Profile          models.UserProfile `json:"profile"`
	Rendered         string             `json:"rendered"`
}

type DashboardInput struct{}

func (h *DashboardHandlers) GetDashboard(_ context.Context, request *mcp.CallToolRequest, input DashboardInput) (*mcp.CallToolResult, DashboardOutput, error) {
	d := viz.GenerateDashboard(h.store.Snapshot(), h.now())

	out := DashboardOutput{
		BidsToday:        d.Bids.Today,
		BidsThisMonth:    d.Bids.ThisMonth,
		BidsAllTime:      d.Bids.AllTime,
		WinRate:          d.Bids.WinRate,
		MonthlyRevenue:   d.Bids.MonthlyRevenue,
		AllTimeRevenue:   d.Bids.AllTimeRevenue,
		PipelineValue:    d.Pipeline.PipelineValue,
		WonDealsValue:    d.Pipeline.WonDealsValue,
		ActiveDeals:      d.Pipeline.ActiveDeals,
		ConversionMetric: d.Pipeline.ConversionMetric,
		TotalExpenses:    d.Expenses.TotalExpenses,
		TotalProfit:      d.Expenses.TotalProfit,
		ProfitMargin:     d.Expenses.ProfitMargin,
		ActiveProjects:   convert(d.ActiveProjects, projectToOutput),
		CompletedCount:   d.Projects.Completed,
		Profile:          d.Profile,
		Rendered:         viz.RenderDashboard(d),
	}
	for _, s := range d.Pipeline.Stages {
		out.Stages = append(out.Stages, StageOutput{Stage: string(s.Stage), Count: s.Count, Revenue: s.Revenue})
	}
	return nil, out, nil
}

type ListTemplatesInput struct{}

type ListTemplatesOutput struct {
	Templates []TemplateOutput `json:"templates"`
}

func (h *DashboardHandlers) ListTemplates(_ context.Context, request *mcp.CallToolRequest, input ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
	return nil, ListTemplatesOutput{Templates: convert(h.store.Snapshot().Templates, templateToOutput)}, nil
}

type GenerateProposalInput struct {
	Category       string `json:"category" jsonschema:"Template category: design, admin, real_estate, bpo or tutoring (required)"`
	JobDescription string `json:"job_description" jsonschema:"The job posting to answer (required)"`
}

func (h *DashboardHandlers) GenerateProposal(_ context.Context, request *mcp.CallToolRequest, input GenerateProposalInput) (*mcp.CallToolResult, proposals.Proposal, error) {
	category := models.TemplateCategory(input.Category)
	if !category.Valid() {
		return nil, proposals.Proposal{}, fmt.Errorf("invalid category: %s (valid: %v)", input.Category, models.TemplateCategories)
	}

	p, err := proposals.Generate(h.store.Snapshot().Templates, category, input.JobDescription)
	if errors.Is(err, proposals.ErrEmptyDescription) {
		return nil, proposals.Proposal{}, fmt.Errorf("job_description is required: %w", err)
	}
	if err != nil {
		return nil, proposals.Proposal{}, fmt.Errorf("failed to generate proposal: %w", err)
	}
	return nil, p, nil
}
