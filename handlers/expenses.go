// ABOUTME: Expense MCP tool handlers
// ABOUTME: Implements add_expense, update_expense, delete_expense and expense_report tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/harperreed/gigdesk/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ExpenseHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewExpenseHandlers(s *store.Store) *ExpenseHandlers {
	return &ExpenseHandlers{store: s, now: time.Now}
}

func validExpenseCategory(c string) error {
	if !models.ExpenseCategory(c).Valid() {
		return fmt.Errorf("invalid category: %s (valid: %v)", c, models.ExpenseCategories)
	}
	return nil
}

type AddExpenseInput struct {
	Amount      float64 `json:"amount" jsonschema:"Amount in dollars (required, positive)"`
	Category    string  `json:"category,omitempty" jsonschema:"tools, software, outsourcing, marketing, equipment or other (default other)"`
	Description string  `json:"description" jsonschema:"What the money was spent on (required)"`
	Date        string  `json:"date,omitempty" jsonschema:"Date of the expense, ISO 8601 or YYYY-MM-DD (default now)"`
	ProjectID   string  `json:"project_id,omitempty" jsonschema:"Project the expense belongs to"`
}

func (h *ExpenseHandlers) AddExpense(_ context.Context, request *mcp.CallToolRequest, input AddExpenseInput) (*mcp.CallToolResult, ExpenseOutput, error) {
	if input.Amount <= 0 {
		return nil, ExpenseOutput{}, fmt.Errorf("amount must be positive")
	}
	if input.Description == "" {
		return nil, ExpenseOutput{}, fmt.Errorf("description is required")
	}

	category := models.ExpenseOther
	if input.Category != "" {
		if err := validExpenseCategory(input.Category); err != nil {
			return nil, ExpenseOutput{}, err
		}
		category = models.ExpenseCategory(input.Category)
	}

	date, err := parseDate("date", input.Date, h.now())
	if err != nil {
		return nil, ExpenseOutput{}, err
	}

	expense := models.Expense{
		Amount:      input.Amount,
		Category:    category,
		Description: input.Description,
		Date:        date,
		ProjectID:   input.ProjectID,
	}
	if input.ProjectID != "" {
		if p, ok := h.store.Project(input.ProjectID); ok {
			expense.ProjectTitle = p.Title
		}
	}

	return nil, expenseToOutput(h.store.AddExpense(expense)), nil
}

type UpdateExpenseInput struct {
	ID          string   `json:"id" jsonschema:"Expense ID (required)"`
	Amount      *float64 `json:"amount,omitempty" jsonschema:"Updated amount"`
	Category    *string  `json:"category,omitempty" jsonschema:"Updated category"`
	Description *string  `json:"description,omitempty" jsonschema:"Updated description"`
	Date        *string  `json:"date,omitempty" jsonschema:"Updated date"`
}

func (h *ExpenseHandlers) UpdateExpense(_ context.Context, request *mcp.CallToolRequest, input UpdateExpenseInput) (*mcp.CallToolResult, ExpenseOutput, error) {
	if input.ID == "" {
		return nil, ExpenseOutput{}, fmt.Errorf("id is required")
	}
	if input.Amount != nil && *input.Amount <= 0 {
		return nil, ExpenseOutput{}, fmt.Errorf("amount must be positive")
	}
	if err := requireNonEmpty("description", input.Description); err != nil {
		return nil, ExpenseOutput{}, err
	}
	date, err := parseDatePtr("date", input.Date, h.now())
	if err != nil {
		return nil, ExpenseOutput{}, err
	}

	patch := models.ExpensePatch{Amount: input.Amount, Description: input.Description, Date: date}
	if input.Category != nil {
		if err := validExpenseCategory(*input.Category); err != nil {
			return nil, ExpenseOutput{}, err
		}
		c := models.ExpenseCategory(*input.Category)
		patch.Category = &c
	}

	if !h.store.UpdateExpense(input.ID, patch) {
		return nil, ExpenseOutput{}, notFound("expense", input.ID)
	}
	for _, e := range h.store.Snapshot().Expenses {
		if e.ID == input.ID {
			return nil, expenseToOutput(e), nil
		}
	}
	return nil, ExpenseOutput{}, notFound("expense", input.ID)
}

func (h *ExpenseHandlers) DeleteExpense(_ context.Context, request *mcp.CallToolRequest, input IDInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	if !h.store.DeleteExpense(input.ID) {
		return nil, DeleteOutput{}, notFound("expense", input.ID)
	}
	return nil, DeleteOutput{ID: input.ID, Deleted: true}, nil
}

type ExpenseReportInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"Limit the report to one project"`
	Recent    int    `json:"recent,omitempty" jsonschema:"Number of recent expenses to include (default 5)"`
}

type CategoryTotalOutput struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type ExpenseReportOutput struct {
	WonDealsValue  float64               `json:"won_deals_value"`
	TotalExpenses  float64               `json:"total_expenses"`
	TotalProfit    float64               `json:"total_profit"`
	ProfitMargin   int                   `json:"profit_margin"`
	ByCategory     []CategoryTotalOutput `json:"by_category"`
	RecentExpenses []ExpenseOutput       `json:"recent_expenses"`
}

func (h *ExpenseHandlers) ExpenseReport(_ context.Context, request *mcp.CallToolRequest, input ExpenseReportInput) (*mcp.CallToolResult, ExpenseReportOutput, error) {
	recent := input.Recent
	if recent == 0 {
		recent = 5
	}

	snap := h.store.Snapshot()
	won := viz.ComputePipeline(snap.Clients).WonDealsValue
	rollup := viz.ComputeExpenseRollup(snap.Expenses, won, input.ProjectID)

	out := ExpenseReportOutput{
		WonDealsValue:  won,
		TotalExpenses:  rollup.TotalExpenses,
		TotalProfit:    rollup.TotalProfit,
		ProfitMargin:   rollup.ProfitMargin,
		RecentExpenses: convert(viz.RecentExpenses(snap.Expenses, recent), expenseToOutput),
	}
	for _, c := range rollup.ByCategory {
		out.ByCategory = append(out.ByCategory, CategoryTotalOutput{Category: string(c.Category), Amount: c.Amount})
	}
	return nil, out, nil
}
