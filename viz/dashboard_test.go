// ABOUTME: Tests for dashboard generation, rendering and graph output
// ABOUTME: Uses the seeded store anchored on a fixed clock
package viz

import (
	"testing"
	"time"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDashboard(t *testing.T) {
	d := GenerateDashboard(seededSnapshot(t), fixedNow)

	assert.Equal(t, "Freelancer", d.Profile.Name)
	assert.Equal(t, 60, d.Bids.WinRate)
	assert.Equal(t, 13700.0, d.Pipeline.WonDealsValue)
	assert.Equal(t, 13700.0, d.Expenses.TotalProfit)
	assert.Equal(t, 100, d.Expenses.ProfitMargin)
	assert.Equal(t, ProjectCounts{Active: 5, Completed: 1}, d.Projects)
	assert.Len(t, d.ActiveProjects, 3)
	assert.Empty(t, d.RecentExpenses)
	assert.Equal(t, 2, d.AvailableDevelopers)
	assert.Equal(t, 4, d.Developers)
}

func TestGenerateDashboardTracksMutations(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return fixedNow }))
	s.AddExpense(models.Expense{Amount: 1370, Category: models.ExpenseSoftware, Description: "Figma"})

	d := GenerateDashboard(s.Snapshot(), fixedNow)

	assert.Equal(t, 1370.0, d.Expenses.TotalExpenses)
	assert.Equal(t, 90, d.Expenses.ProfitMargin)
	require.Len(t, d.RecentExpenses, 1)
	assert.Equal(t, "Figma", d.RecentExpenses[0].Description)
}

func TestRenderDashboard(t *testing.T) {
	out := RenderDashboard(GenerateDashboard(seededSnapshot(t), fixedNow))

	assert.Contains(t, out, "GIGDESK · Freelancer")
	assert.Contains(t, out, "60% win rate")
	assert.Contains(t, out, "$13,700")
	assert.Contains(t, out, "Proposals Sent")
	assert.Contains(t, out, "Website Redesign")
	assert.Contains(t, out, "due 1 week")
	assert.NotContains(t, out, "RECENT EXPENSES")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$1,234.5", FormatMoney(1234.5))
	assert.Equal(t, "-$40", FormatMoney(-40))
}

func TestRelativeDeadline(t *testing.T) {
	assert.Equal(t, "3 days", RelativeDeadline(fixedNow.Add(3*24*time.Hour), fixedNow))
	assert.Equal(t, "2 days overdue", RelativeDeadline(fixedNow.Add(-2*24*time.Hour), fixedNow))
	assert.Equal(t, "today", RelativeDeadline(fixedNow.Add(3*time.Hour), fixedNow))
}

func TestGenerateBoardGraph(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return fixedNow }))
	dot, err := NewGraphGenerator(s).GenerateBoardGraph()
	require.NoError(t, err)

	assert.Contains(t, dot, "digraph")
	assert.Contains(t, dot, "Website Redesign")
	assert.Contains(t, dot, "In Progress")
}

func TestGeneratePipelineGraph(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return fixedNow }))
	dot, err := NewGraphGenerator(s).GeneratePipelineGraph()
	require.NoError(t, err)

	assert.Contains(t, dot, "Negotiation")
	assert.Contains(t, dot, "Sarah Johnson")
}
