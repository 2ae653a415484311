// ABOUTME: Pure aggregate computations over store collections
// ABOUTME: Bid statistics, deal-stage pipeline, expense and profit rollups, recency and filters
package viz

import (
	"math"
	"strings"
	"time"

	"github.com/harperreed/gigdesk/models"
)

type BidStats struct {
	Today          int
	ThisMonth      int
	AllTime        int
	Won            int
	WinRate        int
	MonthlyRevenue float64
	AllTimeRevenue float64
}

// ComputeBidStats partitions bids by the local calendar day and month of now.
func ComputeBidStats(bids []models.Bid, now time.Time) BidStats {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := BidStats{AllTime: len(bids)}
	for _, b := range bids {
		inMonth := !b.Date.Before(firstOfMonth)
		if !b.Date.Before(startOfDay) {
			stats.Today++
		}
		if inMonth {
			stats.ThisMonth++
		}
		if b.Won {
			stats.Won++
			stats.AllTimeRevenue += b.Amount
			if inMonth {
				stats.MonthlyRevenue += b.Amount
			}
		}
	}
	stats.WinRate = percent(float64(stats.Won), float64(stats.AllTime))
	return stats
}

type StageSummary struct {
	Stage   models.DealStage
	Label   string
	Count   int
	Revenue float64
}

type Pipeline struct {
	Stages        []StageSummary
	PipelineValue float64
	WonDealsValue float64
	ActiveDeals   int
	TotalClients  int
	// ConversionMetric divides the won revenue by the number of non-lead
	// clients. It is a currency-per-client figure, not a percentage, and is
	// kept as the dashboard has always shown it.
	ConversionMetric int
	AvgDealValue     int
	LeadToClose      int
}

// ComputePipeline summarises clients by deal stage in pipeline order.
func ComputePipeline(clients []models.Client) Pipeline {
	p := Pipeline{TotalClients: len(clients)}

	byStage := make(map[models.DealStage]*StageSummary, len(models.DealStages))
	for _, stage := range models.DealStages {
		p.Stages = append(p.Stages, StageSummary{Stage: stage, Label: stage.Label()})
	}
	for i := range p.Stages {
		byStage[p.Stages[i].Stage] = &p.Stages[i]
	}

	nonLead := 0
	for _, c := range clients {
		if s, ok := byStage[c.DealStage]; ok {
			s.Count++
			s.Revenue += c.Revenue
		}
		switch c.DealStage {
		case models.StageWon:
			p.WonDealsValue += c.Revenue
			p.PipelineValue += c.Revenue
		case models.StageNegotiation:
			p.PipelineValue += c.Revenue
		}
		if c.DealStage != models.StageLead && c.DealStage != models.StageLost {
			p.ActiveDeals++
		}
		if c.DealStage != models.StageLead {
			nonLead++
		}
	}

	p.ConversionMetric = percent(p.WonDealsValue, float64(nonLead))
	p.AvgDealValue = ratio(p.PipelineValue, float64(p.ActiveDeals))
	p.LeadToClose = percent(float64(p.ActiveDeals), float64(p.TotalClients))
	return p
}

// Stage returns the summary for stage, or a zero summary for an unknown stage.
func (p Pipeline) Stage(stage models.DealStage) StageSummary {
	for _, s := range p.Stages {
		if s.Stage == stage {
			return s
		}
	}
	return StageSummary{Stage: stage, Label: stage.Label()}
}

type CategoryTotal struct {
	Category models.ExpenseCategory
	Label    string
	Amount   float64
}

type ExpenseRollup struct {
	TotalExpenses float64
	TotalProfit   float64
	ProfitMargin  int
	ByCategory    []CategoryTotal
}

// ComputeExpenseRollup totals expenses, scoped to projectID when it is not
// empty, and derives profit against the won deal value.
func ComputeExpenseRollup(expenses []models.Expense, wonDealsValue float64, projectID string) ExpenseRollup {
	var r ExpenseRollup
	byCategory := make(map[models.ExpenseCategory]float64)
	for _, e := range expenses {
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		r.TotalExpenses += e.Amount
		byCategory[e.Category] += e.Amount
	}
	for _, c := range models.ExpenseCategories {
		r.ByCategory = append(r.ByCategory, CategoryTotal{Category: c, Label: c.Label(), Amount: byCategory[c]})
	}

	r.TotalProfit = wonDealsValue - r.TotalExpenses
	r.ProfitMargin = percent(r.TotalProfit, wonDealsValue)
	return r
}

// RecentExpenses returns the last n expenses, most recently added first.
func RecentExpenses(expenses []models.Expense, n int) []models.Expense {
	return lastN(expenses, n)
}

// RecentProjects returns the last n projects, most recently added first.
func RecentProjects(projects []models.Project, n int) []models.Project {
	return lastN(projects, n)
}

func lastN[T any](list []T, n int) []T {
	if n > len(list) {
		n = len(list)
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := len(list) - 1; i >= len(list)-n; i-- {
		out = append(out, list[i])
	}
	return out
}

// ActiveProjects returns the first n projects not yet completed, in insertion order.
func ActiveProjects(projects []models.Project, n int) []models.Project {
	var out []models.Project
	for _, p := range projects {
		if len(out) >= n {
			break
		}
		if p.Column != models.ColumnCompleted {
			out = append(out, p)
		}
	}
	return out
}

type ProjectCounts struct {
	Active    int
	Completed int
}

func CountProjects(projects []models.Project) ProjectCounts {
	var c ProjectCounts
	for _, p := range projects {
		if p.Column == models.ColumnCompleted {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

type ColumnGroup struct {
	Column   models.KanbanColumn
	Label    string
	Projects []models.Project
}

// GroupByColumn lays projects out on the kanban board, columns left to right.
func GroupByColumn(projects []models.Project) []ColumnGroup {
	groups := make([]ColumnGroup, len(models.KanbanColumns))
	index := make(map[models.KanbanColumn]int, len(models.KanbanColumns))
	for i, col := range models.KanbanColumns {
		groups[i] = ColumnGroup{Column: col, Label: col.Label()}
		index[col] = i
	}
	for _, p := range projects {
		if i, ok := index[p.Column]; ok {
			groups[i].Projects = append(groups[i].Projects, p)
		}
	}
	return groups
}

// FilterClients matches query against name or email, case-insensitively.
func FilterClients(clients []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}
	var out []models.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out
}

// RoleFilters are the role filters offered for the team list, in display order.
var RoleFilters = []string{"All", "Full Stack", "UI/UX", "Backend", "Mobile"}

// FilterDevelopers keeps developers whose role contains role. "All" or blank keeps everyone.
func FilterDevelopers(devs []models.Developer, role string) []models.Developer {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == "" || r == "all" {
		return devs
	}
	var out []models.Developer
	for _, d := range devs {
		if strings.Contains(strings.ToLower(d.Role), r) {
			out = append(out, d)
		}
	}
	return out
}

// FilterSnippets keeps snippets in category. "all" or blank keeps everything.
func FilterSnippets(snippets []models.Snippet, category string) []models.Snippet {
	if category == "" || strings.EqualFold(category, "all") {
		return snippets
	}
	var out []models.Snippet
	for _, s := range snippets {
		if string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out
}

// percent is round(100*num/den), or 0 when den is 0.
func percent(num, den float64) int {
	return ratio(100*num, den)
}

// ratio is round(num/den), or 0 when den is 0. Halves round up, matching the
// dashboard's historical figures for negative values too.
func ratio(num, den float64) int {
	if den == 0 {
		return 0
	}
	return int(math.Floor(num/den + 0.5))
}
