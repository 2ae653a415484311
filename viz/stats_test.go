// ABOUTME: Tests for the dashboard aggregate computations
// ABOUTME: Covers bid stats, pipeline, expense rollups, recency and filters
package viz

import (
	"testing"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func seededSnapshot(t *testing.T) store.Snapshot {
	t.Helper()
	return store.New(store.WithClock(func() time.Time { return fixedNow })).Snapshot()
}

func TestComputeBidStatsSeed(t *testing.T) {
	stats := ComputeBidStats(seededSnapshot(t).Bids, fixedNow)

	assert.Equal(t, BidStats{
		Today:          2,
		ThisMonth:      5,
		AllTime:        5,
		Won:            3,
		WinRate:        60,
		MonthlyRevenue: 2000,
		AllTimeRevenue: 2000,
	}, stats)
}

func TestComputeBidStatsCalendarBoundaries(t *testing.T) {
	bids := []models.Bid{
		{Amount: 100, Won: true, Date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{Amount: 200, Won: true, Date: time.Date(2026, 10, 14, 23, 59, 59, 0, time.UTC)},
		{Amount: 400, Won: true, Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 800, Won: true, Date: time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)},
		{Amount: 1600, Won: false, Date: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
	}

	stats := ComputeBidStats(bids, fixedNow)

	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 4, stats.ThisMonth)
	assert.Equal(t, 700.0, stats.MonthlyRevenue)
	assert.Equal(t, 1500.0, stats.AllTimeRevenue)
	assert.Equal(t, 80, stats.WinRate)
}

func TestComputeBidStatsEmpty(t *testing.T) {
	assert.Equal(t, BidStats{}, ComputeBidStats(nil, fixedNow))
}

func TestWinRateRoundsHalfUp(t *testing.T) {
	bids := make([]models.Bid, 8)
	bids[0].Won = true
	// 100/8 = 12.5
	assert.Equal(t, 13, ComputeBidStats(bids, fixedNow).WinRate)

	bids = make([]models.Bid, 3)
	bids[0].Won = true
	// 100/3 = 33.33
	assert.Equal(t, 33, ComputeBidStats(bids, fixedNow).WinRate)
}

func TestComputePipelineSeed(t *testing.T) {
	p := ComputePipeline(seededSnapshot(t).Clients)

	counts := map[models.DealStage]int{}
	for _, s := range p.Stages {
		counts[s.Stage] = s.Count
	}
	assert.Equal(t, map[models.DealStage]int{
		models.StageLead:         1,
		models.StageProposalSent: 1,
		models.StageNegotiation:  1,
		models.StageWon:          2,
		models.StageLost:         0,
	}, counts)

	assert.Equal(t, 13700.0, p.WonDealsValue)
	assert.Equal(t, 13700.0, p.PipelineValue)
	assert.Equal(t, 4, p.ActiveDeals)
	assert.Equal(t, 5, p.TotalClients)
	assert.Equal(t, 342500, p.ConversionMetric)
	assert.Equal(t, 3425, p.AvgDealValue)
	assert.Equal(t, 80, p.LeadToClose)
	assert.Equal(t, 13700.0, p.Stage(models.StageWon).Revenue)
}

func TestComputePipelineStageOrder(t *testing.T) {
	p := ComputePipeline(nil)

	require.Len(t, p.Stages, len(models.DealStages))
	for i, s := range p.Stages {
		assert.Equal(t, models.DealStages[i], s.Stage)
		assert.Equal(t, models.DealStages[i].Label(), s.Label)
	}
	assert.Equal(t, 0, p.ConversionMetric)
	assert.Equal(t, 0, p.AvgDealValue)
	assert.Equal(t, 0, p.LeadToClose)
}

func TestComputePipelineOnlyLeads(t *testing.T) {
	p := ComputePipeline([]models.Client{
		{DealStage: models.StageLead, Revenue: 100},
		{DealStage: models.StageLead},
	})

	assert.Equal(t, 0, p.ConversionMetric)
	assert.Equal(t, 0, p.ActiveDeals)
	assert.Equal(t, 0.0, p.PipelineValue)
	assert.Equal(t, 100.0, p.Stage(models.StageLead).Revenue)
}

func TestComputePipelineLostIsNotActive(t *testing.T) {
	p := ComputePipeline([]models.Client{
		{DealStage: models.StageLost, Revenue: 900},
		{DealStage: models.StageNegotiation, Revenue: 300},
	})

	assert.Equal(t, 1, p.ActiveDeals)
	assert.Equal(t, 300.0, p.PipelineValue)
	assert.Equal(t, 0.0, p.WonDealsValue)
	assert.Equal(t, 50, p.LeadToClose)
}

func TestComputeExpenseRollup(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 200, Category: models.ExpenseTools, ProjectID: "1"},
		{Amount: 50, Category: models.ExpenseMarketing},
		{Amount: 250, Category: models.ExpenseTools, ProjectID: "2"},
	}

	r := ComputeExpenseRollup(expenses, 1000, "")
	assert.Equal(t, 500.0, r.TotalExpenses)
	assert.Equal(t, 500.0, r.TotalProfit)
	assert.Equal(t, 50, r.ProfitMargin)

	require.Len(t, r.ByCategory, len(models.ExpenseCategories))
	byCat := map[models.ExpenseCategory]float64{}
	for _, c := range r.ByCategory {
		byCat[c.Category] = c.Amount
	}
	assert.Equal(t, 450.0, byCat[models.ExpenseTools])
	assert.Equal(t, 50.0, byCat[models.ExpenseMarketing])
	assert.Equal(t, 0.0, byCat[models.ExpenseOther])

	scoped := ComputeExpenseRollup(expenses, 1000, "1")
	assert.Equal(t, 200.0, scoped.TotalExpenses)
	assert.Equal(t, 80, scoped.ProfitMargin)
}

func TestComputeExpenseRollupNoRevenue(t *testing.T) {
	r := ComputeExpenseRollup([]models.Expense{{Amount: 40}}, 0, "")

	assert.Equal(t, -40.0, r.TotalProfit)
	assert.Equal(t, 0, r.ProfitMargin)
}

func TestComputeExpenseRollupNegativeMargin(t *testing.T) {
	r := ComputeExpenseRollup([]models.Expense{{Amount: 1500}}, 1000, "")

	assert.Equal(t, -500.0, r.TotalProfit)
	assert.Equal(t, -50, r.ProfitMargin)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	expenses := []models.Expense{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, []models.Expense{{ID: "c"}, {ID: "b"}}, RecentExpenses(expenses, 2))
	assert.Len(t, RecentExpenses(expenses, 10), 3)
	assert.Empty(t, RecentExpenses(expenses, 0))
	assert.Empty(t, RecentExpenses(nil, 5))

	projects := []models.Project{{ID: "1"}, {ID: "2"}}
	assert.Equal(t, []models.Project{{ID: "2"}, {ID: "1"}}, RecentProjects(projects, 5))
}

func TestActiveProjectsSkipsCompleted(t *testing.T) {
	projects := seededSnapshot(t).Projects

	active := ActiveProjects(projects, 3)
	require.Len(t, active, 3)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "2", active[1].ID)
	assert.Equal(t, "3", active[2].ID)

	all := ActiveProjects(projects, 100)
	assert.Len(t, all, 5)
	for _, p := range all {
		assert.NotEqual(t, models.ColumnCompleted, p.Column)
	}

	assert.Equal(t, ProjectCounts{Active: 5, Completed: 1}, CountProjects(projects))
}

func TestGroupByColumn(t *testing.T) {
	groups := GroupByColumn(seededSnapshot(t).Projects)

	require.Len(t, groups, len(models.KanbanColumns))
	sizes := map[models.KanbanColumn]int{}
	for i, g := range groups {
		assert.Equal(t, models.KanbanColumns[i], g.Column)
		sizes[g.Column] = len(g.Projects)
	}
	assert.Equal(t, 2, sizes[models.ColumnTodo])
	assert.Equal(t, 1, sizes[models.ColumnInProgress])
	assert.Equal(t, 1, sizes[models.ColumnWaiting])
	assert.Equal(t, 1, sizes[models.ColumnRevisions])
	assert.Equal(t, 1, sizes[models.ColumnCompleted])

	assert.Equal(t, "3", groups[0].Projects[0].ID)
	assert.Equal(t, "5", groups[0].Projects[1].ID)
}

func TestFilterClients(t *testing.T) {
	clients := seededSnapshot(t).Clients

	assert.Len(t, FilterClients(clients, ""), 5)
	assert.Len(t, FilterClients(clients, "   "), 5)

	byName := FilterClients(clients, "sarah")
	require.Len(t, byName, 1)
	assert.Equal(t, "Sarah Johnson", byName[0].Name)

	byEmail := FilterClients(clients, "DESIGNSTUDIO")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Michael Chen", byEmail[0].Name)

	assert.Empty(t, FilterClients(clients, "nobody"))
}

func TestFilterDevelopers(t *testing.T) {
	devs := seededSnapshot(t).Developers

	assert.Len(t, FilterDevelopers(devs, "All"), 4)
	assert.Len(t, FilterDevelopers(devs, ""), 4)
	assert.Len(t, FilterDevelopers(devs, "developer"), 3)

	designers := FilterDevelopers(devs, "Designer")
	require.Len(t, designers, 1)
	assert.Equal(t, "Jordan Kim", designers[0].Name)
}

func TestFilterSnippets(t *testing.T) {
	snippets := seededSnapshot(t).Snippets

	assert.Len(t, FilterSnippets(snippets, "all"), len(snippets))
	assert.Len(t, FilterSnippets(snippets, ""), len(snippets))

	intros := FilterSnippets(snippets, string(models.SnippetIntros))
	assert.Len(t, intros, 2)
	for _, s := range intros {
		assert.Equal(t, models.SnippetIntros, s.Category)
	}
	assert.Empty(t, FilterSnippets(snippets, "unknown"))
}
