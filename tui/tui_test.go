// ABOUTME: Tests for the TUI model
// ABOUTME: Drives key presses through Update and checks store changes and rendered views
package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/store"
)

var fixedNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s := store.New(store.WithClock(func() time.Time { return fixedNow }))
	m := NewModel(s)
	m.now = func() time.Time { return fixedNow }
	m.width, m.height = 160, 40
	return m, s
}

var namedKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
}

// press feeds keys to the model. Anything that is not a named key is typed as runes.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if kt, ok := namedKeys[k]; ok {
			msg = tea.KeyMsg{Type: kt}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func gotoTab(t *testing.T, m Model, tab Tab) Model {
	t.Helper()
	for m.tab != tab {
		m = press(t, m, "tab")
	}
	return m
}

func TestDashboardIsDefaultView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "GIGDESK · Freelancer")
	assert.Contains(t, view, "PIPELINE OVERVIEW")
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "tab")
	assert.Equal(t, TabBids, m.tab)

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, TabExpenses, m.tab)
	assert.Contains(t, m.View(), "Nothing here yet")
}

func TestClientSearch(t *testing.T) {
	m, _ := newTestModel(t)
	m = gotoTab(t, m, TabClients)

	m = press(t, m, "/")
	require.True(t, m.searching)
	m = press(t, m, "sarah", "enter")

	assert.False(t, m.searching)
	assert.Equal(t, "sarah", m.searchQuery)

	var names []string
	for _, c := range m.visibleClients() {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Sarah Johnson"}, names); diff != "" {
		t.Errorf("visible clients mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, m.View(), "Michael Chen")
}

func TestAdvanceDealStageWraps(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabClients)

	m = press(t, m, "s")
	c, ok := s.Client("1")
	require.True(t, ok)
	assert.Equal(t, models.StageLost, c.DealStage)
	assert.Contains(t, m.statusMessage, "Lost Deals")

	press(t, m, "s")
	c, _ = s.Client("1")
	assert.Equal(t, models.StageLead, c.DealStage)
}

func TestBoardMovesProjectAndFollowsCard(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabBoard)

	require.Equal(t, "3", m.getSelectedID())

	m = press(t, m, "]")
	p, _ := s.Project("3")
	assert.Equal(t, models.ColumnInProgress, p.Column)
	assert.Equal(t, 1, m.boardColumn)
	assert.Equal(t, "3", m.getSelectedID())

	m = press(t, m, "[", "[")
	p, _ = s.Project("3")
	assert.Equal(t, models.ColumnTodo, p.Column)
	assert.Equal(t, 0, m.boardColumn)
}

func TestBoardRendersColumns(t *testing.T) {
	m, _ := newTestModel(t)
	m = gotoTab(t, m, TabBoard)

	view := m.View()
	for _, col := range models.KanbanColumns {
		assert.Contains(t, view, col.Label())
	}
	assert.Contains(t, view, "Admin Dashboard")
}

func TestDeveloperFilters(t *testing.T) {
	m, _ := newTestModel(t)
	m = gotoTab(t, m, TabDevelopers)
	assert.Len(t, m.visibleDevelopers(), 4)

	m = press(t, m, "f")
	assert.Len(t, m.visibleDevelopers(), 1)
	assert.Contains(t, m.View(), "Role: Full Stack")

	m = press(t, m, "f", "f", "f", "f")
	assert.Len(t, m.visibleDevelopers(), 4)
}

func TestCycleAvailability(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabDevelopers)

	press(t, m, "a")
	d, _ := s.Developer(m.getSelectedID())
	assert.Equal(t, models.AvailabilityBusy, d.Availability)
}

func TestSnippetCategoryFilter(t *testing.T) {
	m, _ := newTestModel(t)
	m = gotoTab(t, m, TabSnippets)

	m = press(t, m, "f")
	assert.Equal(t, string(models.SnippetIntros), m.snippetFilter())
	assert.Len(t, m.visibleSnippets(), 2)
}

func TestToggleWon(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabBids)

	press(t, m, "down", "w")
	assert.True(t, s.Snapshot().Bids[1].Won)
}

func TestNewClientForm(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabClients)

	m = press(t, m, "n")
	require.Equal(t, ViewEdit, m.viewMode)
	require.Len(t, m.formInputs, 6)

	m = press(t, m, "Ada Lovelace", "tab", "ada@example.com", "enter")
	require.NoError(t, m.err)
	assert.Equal(t, ViewList, m.viewMode)
	assert.Equal(t, "Saved client", m.statusMessage)

	clients := s.Snapshot().Clients
	require.Len(t, clients, 6)
	added := clients[5]
	assert.Equal(t, "Ada Lovelace", added.Name)
	assert.Equal(t, "ada@example.com", added.Email)
	assert.Equal(t, models.StageLead, added.DealStage)
}

func TestQuickAddBidFromDashboard(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, "n")
	require.Equal(t, formBid, m.form)
	press(t, m, "Acme", "tab", "$1,250", "tab", "y", "enter")

	bids := s.Snapshot().Bids
	require.Len(t, bids, 6)
	assert.Equal(t, models.Bid{ID: bids[5].ID, ClientName: "Acme", Amount: 1250, Date: fixedNow, Won: true}, bids[5])
}

func TestFormValidation(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabClients)

	m = press(t, m, "n", "enter")
	assert.Error(t, m.err)
	assert.Equal(t, ViewEdit, m.viewMode)
	assert.Contains(t, m.View(), "name is required")
	assert.Len(t, s.Snapshot().Clients, 5)

	m = gotoTab(t, press(t, m, "esc"), TabBoard)
	m = press(t, m, "n", "Landing page", "tab", "tab", "tab", "tab", "doing", "enter")
	assert.EqualError(t, m.err, `unknown column "doing"`)
	assert.Len(t, s.Snapshot().Projects, 6)
}

func TestEditExistingProject(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabBoard)

	m = press(t, m, "e")
	require.Equal(t, "Admin Dashboard", m.formInputs[0].Value())
	require.Equal(t, "todo", m.formInputs[4].Value())

	m.formInputs[4].SetValue("ready")
	m = press(t, m, "enter")
	require.NoError(t, m.err)

	p, _ := s.Project("3")
	assert.Equal(t, models.ColumnReady, p.Column)
	assert.Equal(t, fixedNow.Add(14*24*time.Hour).Format("2006-01-02"), p.Deadline.Format("2006-01-02"))
}

func TestEditKeepsCopiedNamesOfDeletedRecords(t *testing.T) {
	m, s := newTestModel(t)
	require.True(t, s.DeleteClient("1"))

	m = gotoTab(t, m, TabBoard)
	m = press(t, m, "e")
	require.Equal(t, "1", m.formInputs[1].Value())
	m = press(t, m, "enter")
	require.NoError(t, m.err)

	p, _ := s.Project("3")
	assert.Equal(t, "1", p.ClientID)
	assert.Equal(t, "Sarah Johnson", p.ClientName)

	e := s.AddExpense(models.Expense{Amount: 40, Category: models.ExpenseSoftware, Description: "Fonts", Date: fixedNow, ProjectID: "3", ProjectTitle: "Admin Dashboard"})
	require.True(t, s.DeleteProject("3"))
	m.refresh()

	m = gotoTab(t, m, TabExpenses)
	m = press(t, m, "e")
	require.Equal(t, "3", m.formInputs[3].Value())
	m.formInputs[1].SetValue("45")
	m = press(t, m, "enter")
	require.NoError(t, m.err)

	got, ok := s.Expense(e.ID)
	require.True(t, ok)
	assert.Equal(t, 45.0, got.Amount)
	assert.Equal(t, "Admin Dashboard", got.ProjectTitle)
}

func TestEditRelinksCopiedName(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabBoard)

	m = press(t, m, "e")
	m.formInputs[1].SetValue("3")
	m = press(t, m, "enter")
	require.NoError(t, m.err)

	p, _ := s.Project("3")
	assert.Equal(t, "3", p.ClientID)
	assert.Equal(t, "Emma Williams", p.ClientName)
}

func TestCopySnippet(t *testing.T) {
	m, s := newTestModel(t)
	var copied []string
	m.copy = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	m = gotoTab(t, m, TabSnippets)

	m = press(t, m, "c")
	first := s.Snapshot().Snippets[0]
	assert.Equal(t, []string{first.Content}, copied)
	assert.Equal(t, "Copied to clipboard", m.statusMessage)

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, "c")
	assert.EqualError(t, m.err, "failed to copy to clipboard: no clipboard")
	assert.Empty(t, m.statusMessage)
}

func TestEditProfile(t *testing.T) {
	m, s := newTestModel(t)

	m = press(t, m, "e")
	require.Equal(t, formProfile, m.form)
	assert.Equal(t, "Freelancer", m.formInputs[0].Value())

	m.formInputs[0].SetValue("Jamie")
	m.formInputs[1].SetValue("3")
	m = press(t, m, "enter")

	assert.Equal(t, models.UserProfile{Name: "Jamie", AvatarIndex: 3}, s.Snapshot().UserProfile)
	assert.Contains(t, m.View(), "GIGDESK · Jamie")
}

func TestDeleteConfirmation(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabBids)

	m = press(t, m, "d")
	require.Equal(t, ViewConfirmDelete, m.viewMode)
	assert.Contains(t, m.View(), "DELETE CONFIRMATION")
	assert.Contains(t, m.View(), "TechCorp")

	m = press(t, m, "n")
	assert.Equal(t, ViewList, m.viewMode)
	assert.Len(t, s.Snapshot().Bids, 5)

	m = press(t, m, "d", "y")
	assert.Len(t, s.Snapshot().Bids, 4)
	assert.True(t, strings.HasPrefix(m.statusMessage, "Deleted bid TechCorp"))
}

func TestDetailView(t *testing.T) {
	m, _ := newTestModel(t)
	m = gotoTab(t, m, TabClients)

	m = press(t, m, "enter")
	require.Equal(t, ViewDetail, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "CLIENT DETAIL")
	assert.Contains(t, view, "Sarah Johnson")
	assert.Contains(t, view, "Won Deals")

	m = press(t, m, "esc")
	assert.Equal(t, ViewList, m.viewMode)
}

func TestExternalChangesRefreshModel(t *testing.T) {
	m, s := newTestModel(t)
	m = gotoTab(t, m, TabClients)
	m = press(t, m, "down", "down", "down", "down")
	require.Equal(t, 4, m.selectedRow)

	s.DeleteClient("5")
	next, _ := m.Update(snapshotMsg{})
	m = next.(Model)

	assert.Len(t, m.snap.Clients, 4)
	assert.Equal(t, 3, m.selectedRow)
}

func TestRunSubscriptionSignalsUpdates(t *testing.T) {
	m, s := newTestModel(t)
	updates := make(chan struct{}, 1)
	m.updates = updates

	cmd := m.Init()
	require.NotNil(t, cmd)

	s.AddBid(models.Bid{ClientName: "Acme", Amount: 10})
	updates <- struct{}{}
	assert.Equal(t, snapshotMsg{}, cmd())
}

func TestGraphView(t *testing.T) {
	m, _ := newTestModel(t)
	m = gotoTab(t, m, TabBoard)

	m = press(t, m, "g")
	require.NoError(t, m.err)
	require.Equal(t, ViewGraph, m.viewMode)
	assert.Contains(t, m.View(), "BOARD GRAPH")
	assert.NotEmpty(t, m.graphDOT)

	m = press(t, m, "esc")
	assert.Equal(t, ViewList, m.viewMode)
	assert.Empty(t, m.graphDOT)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 1200.5, parseAmount("$1,200.50"))
	assert.Equal(t, 0.0, parseAmount("lots"))
	assert.True(t, parseBool("Yes"))
	assert.False(t, parseBool(""))

	stage, err := parseEnum("Negotiation", models.StageLead, models.DealStage.Valid, "deal stage")
	require.NoError(t, err)
	assert.Equal(t, models.StageNegotiation, stage)

	stage, err = parseEnum("", models.StageLead, models.DealStage.Valid, "deal stage")
	require.NoError(t, err)
	assert.Equal(t, models.StageLead, stage)

	_, err = parseEnum("closed", models.StageLead, models.DealStage.Valid, "deal stage")
	assert.EqualError(t, err, `unknown deal stage "closed"`)
}
