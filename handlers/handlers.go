// ABOUTME: Shared helpers for the MCP tool handlers
// ABOUTME: Sentinel errors, date parsing and record-to-output conversion
package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/gigdesk/models"
)

// ErrNotFound reports an id that matches no record. The store is left unchanged.
var ErrNotFound = errors.New("not found")

const dateOnly = "2006-01-02"

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// parseDate accepts RFC3339 or a plain date; empty input yields def.
func parseDate(field, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateOnly, value, def.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format (use ISO 8601/RFC3339 or YYYY-MM-DD): %w", field, err)
	}
	return t, nil
}

func parseDatePtr(field string, value *string, now time.Time) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

func requireNonEmpty(field string, value *string) error {
	if value != nil && *value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	return nil
}

type BidOutput struct {
	ID         string  `json:"id"`
	ClientName string  `json:"client_name"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Won        bool    `json:"won"`
}

func bidToOutput(b models.Bid) BidOutput {
	return BidOutput{
		ID:         b.ID,
		ClientName: b.ClientName,
		Amount:     b.Amount,
		Date:       formatDate(b.Date),
		Won:        b.Won,
	}
}

type ClientOutput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	DealStage string  `json:"deal_stage"`
	Revenue   float64 `json:"revenue"`
	Notes     string  `json:"notes,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

func clientToOutput(c models.Client) ClientOutput {
	return ClientOutput{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		DealStage: string(c.DealStage),
		Revenue:   c.Revenue,
		Notes:     c.Notes,
		Avatar:    c.Avatar,
	}
}

type ProjectOutput struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ClientID   string  `json:"client_id,omitempty"`
	ClientName string  `json:"client_name,omitempty"`
	Deadline   string  `json:"deadline"`
	Revenue    float64 `json:"revenue"`
	Notes      string  `json:"notes,omitempty"`
	Column     string  `json:"column"`
}

func projectToOutput(p models.Project) ProjectOutput {
	return ProjectOutput{
		ID:         p.ID,
		Title:      p.Title,
		ClientID:   p.ClientID,
		ClientName: p.ClientName,
		Deadline:   formatDate(p.Deadline),
		Revenue:    p.Revenue,
		Notes:      p.Notes,
		Column:     string(p.Column),
	}
}

type DeveloperOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	HourlyRate   float64 `json:"hourly_rate"`
	ProfileLink  string  `json:"profile_link,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Availability string  `json:"availability"`
	Avatar       *int    `json:"avatar,omitempty"`
}

func developerToOutput(d models.Developer) DeveloperOutput {
	return DeveloperOutput{
		ID:           d.ID,
		Name:         d.Name,
		Role:         d.Role,
		HourlyRate:   d.HourlyRate,
		ProfileLink:  d.ProfileLink,
		Notes:        d.Notes,
		Availability: string(d.Availability),
		Avatar:       d.Avatar,
	}
}

type SnippetOutput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func snippetToOutput(s models.Snippet) SnippetOutput {
	return SnippetOutput{ID: s.ID, Title: s.Title, Content: s.Content, Category: string(s.Category)}
}

type TemplateOutput struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Template string `json:"template"`
}

func templateToOutput(t models.ProposalTemplate) TemplateOutput {
	return TemplateOutput{ID: t.ID, Category: string(t.Category), Name: t.Name, Template: t.Template}
}

type ExpenseOutput struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	ProjectID    string  `json:"project_id,omitempty"`
	ProjectTitle string  `json:"project_title,omitempty"`
}

func expenseToOutput(e models.Expense) ExpenseOutput {
	return ExpenseOutput{
		ID:           e.ID,
		Amount:       e.Amount,
		Category:     string(e.Category),
		Description:  e.Description,
		Date:         formatDate(e.Date),
		ProjectID:    e.ProjectID,
		ProjectTitle: e.ProjectTitle,
	}
}

// DeleteOutput confirms a removal.
type DeleteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// IDInput names a single record.
type IDInput struct {
	ID string `json:"id" jsonschema:"Record ID (required)"`
}

func convert[T, O any](list []T, fn func(T) O) []O {
	out := make([]O, len(list))
	for i, v := range list {
		out[i] = fn(v)
	}
	return out
}
