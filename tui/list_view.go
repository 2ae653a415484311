package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/viz"
)

func (m Model) renderListView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("GIGDESK"))
	s.WriteString("\n\n")

	// Tabs
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.tab {
	case TabDashboard:
		s.WriteString(m.renderDashboard())
	case TabBoard:
		s.WriteString(m.renderBoard())
	default:
		if filter := m.renderFilterLine(); filter != "" {
			s.WriteString(filter)
			s.WriteString("\n")
		}
		s.WriteString(m.renderTable())
	}
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		s.WriteString("\n")
	} else if m.statusMessage != "" {
		s.WriteString(statusStyle.Render(m.statusMessage))
		s.WriteString("\n")
	}

	// Help
	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	var rendered []string

	for i, tab := range tabNames {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderFilterLine() string {
	switch m.tab {
	case TabClients:
		if m.searching {
			return m.searchInput.View()
		}
		if m.searchQuery != "" {
			return helpStyle.Render(fmt.Sprintf("Search: %q", m.searchQuery))
		}
	case TabDevelopers:
		return helpStyle.Render("Role: " + viz.RoleFilters[m.roleFilter])
	case TabSnippets:
		label := "All"
		if c := m.snippetFilter(); c != "" {
			label = models.SnippetCategory(c).Label()
		}
		return helpStyle.Render("Category: " + label)
	}
	return ""
}

func (m Model) renderTable() string {
	var columns []table.Column
	var rows []table.Row

	switch m.tab {
	case TabBids:
		columns = []table.Column{
			{Title: "Client", Width: 24},
			{Title: "Amount", Width: 12},
			{Title: "Date", Width: 12},
			{Title: "Won", Width: 5},
		}
		for _, b := range m.visibleBids() {
			won := ""
			if b.Won {
				won = "✓"
			}
			rows = append(rows, table.Row{b.ClientName, viz.FormatMoney(b.Amount), b.Date.Format("2006-01-02"), won})
		}
	case TabClients:
		columns = []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 28},
			{Title: "Stage", Width: 16},
			{Title: "Revenue", Width: 12},
		}
		for _, c := range m.visibleClients() {
			rows = append(rows, table.Row{c.Name, c.Email, c.DealStage.Label(), viz.FormatMoney(c.Revenue)})
		}
	case TabDevelopers:
		columns = []table.Column{
			{Title: "Name", Width: 20},
			{Title: "Role", Width: 20},
			{Title: "Rate", Width: 10},
			{Title: "Availability", Width: 14},
		}
		for _, d := range m.visibleDevelopers() {
			rows = append(rows, table.Row{d.Name, d.Role, viz.FormatMoney(d.HourlyRate) + "/h", d.Availability.Label()})
		}
	case TabSnippets:
		columns = []table.Column{
			{Title: "Title", Width: 24},
			{Title: "Category", Width: 14},
			{Title: "Content", Width: 40},
		}
		for _, sn := range m.visibleSnippets() {
			rows = append(rows, table.Row{sn.Title, sn.Category.Label(), oneLine(sn.Content)})
		}
	case TabExpenses:
		columns = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Category", Width: 12},
			{Title: "Amount", Width: 12},
			{Title: "Description", Width: 28},
			{Title: "Project", Width: 18},
		}
		for _, e := range m.visibleExpenses() {
			rows = append(rows, table.Row{e.Date.Format("2006-01-02"), e.Category.Label(), viz.FormatMoney(e.Amount), e.Description, e.ProjectTitle})
		}
	}

	if len(rows) == 0 {
		return helpStyle.Render("Nothing here yet. Press n to add one.")
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	// Set selected row
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{"↑/↓: Navigate", "Tab: Switch tabs"}
	switch m.tab {
	case TabDashboard:
		help = append(help, "n: New bid", "e: Edit profile")
	case TabBids:
		help = append(help, "w: Toggle won")
	case TabClients:
		help = append(help, "/: Search", "s: Next stage", "g: Pipeline graph")
	case TabBoard:
		help = append(help, "←/→: Column", "[/]: Move card", "g: Board graph")
	case TabDevelopers:
		help = append(help, "f: Role filter", "a: Availability")
	case TabSnippets:
		help = append(help, "f: Category filter", "c: Copy")
	}
	if m.tab != TabDashboard {
		help = append(help, "Enter: Details", "n: New", "e: Edit", "d: Delete")
	}
	help = append(help, "q: Quit")
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	m.statusMessage = ""
	m.err = nil

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.switchTab((m.tab + 1) % Tab(len(tabNames)))
	case "shift+tab":
		m.switchTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case "left", "h":
		if m.tab == TabBoard && m.boardColumn > 0 {
			m.boardColumn--
			m.selectedRow = 0
		}
	case "right", "l":
		if m.tab == TabBoard && m.boardColumn < len(models.KanbanColumns)-1 {
			m.boardColumn++
			m.selectedRow = 0
		}
	case "[":
		if m.tab == TabBoard {
			m.moveSelectedProject(false)
		}
	case "]":
		if m.tab == TabBoard {
			m.moveSelectedProject(true)
		}
	case "enter":
		if id := m.getSelectedID(); id != "" {
			m.selectedID = id
			m.viewMode = ViewDetail
		}
	case "/":
		if m.tab == TabClients {
			m.searching = true
			m.searchInput.SetValue(m.searchQuery)
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	case "f":
		switch m.tab {
		case TabDevelopers:
			m.roleFilter = (m.roleFilter + 1) % len(viz.RoleFilters)
			m.selectedRow = 0
		case TabSnippets:
			m.snippetCat = (m.snippetCat + 1) % (len(models.SnippetCategories) + 1)
			m.selectedRow = 0
		}
	case "s":
		if m.tab == TabClients {
			m.advanceDealStage()
		}
	case "a":
		if m.tab == TabDevelopers {
			m.cycleAvailability()
		}
	case "w":
		if m.tab == TabBids {
			m.toggleWon()
		}
	case "c":
		if m.tab == TabSnippets {
			m.copySelectedSnippet()
		}
	case "n":
		return m, m.openForm(m.formForTab(), "")
	case "e":
		if m.tab == TabDashboard {
			return m, m.openForm(formProfile, "")
		}
		if id := m.getSelectedID(); id != "" {
			return m, m.openForm(m.formForTab(), id)
		}
	case "d":
		if id := m.getSelectedID(); id != "" {
			m.selectedID = id
			m.viewMode = ViewConfirmDelete
		}
	case "g":
		if m.tab == TabBoard || m.tab == TabClients {
			if err := m.generateGraph(); err != nil {
				m.err = err
			} else {
				m.viewMode = ViewGraph
			}
		}
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchQuery = strings.TrimSpace(m.searchInput.Value())
		m.searching = false
		m.searchInput.Blur()
		m.selectedRow = 0
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) switchTab(t Tab) {
	m.tab = t
	m.selectedRow = 0
	m.boardColumn = 0
}

func (m Model) visibleBids() []models.Bid {
	return m.snap.Bids
}

func (m Model) visibleClients() []models.Client {
	return viz.FilterClients(m.snap.Clients, m.searchQuery)
}

func (m Model) visibleDevelopers() []models.Developer {
	return viz.FilterDevelopers(m.snap.Developers, viz.RoleFilters[m.roleFilter])
}

func (m Model) visibleSnippets() []models.Snippet {
	return viz.FilterSnippets(m.snap.Snippets, m.snippetFilter())
}

// visibleExpenses lists expenses newest first.
func (m Model) visibleExpenses() []models.Expense {
	return viz.RecentExpenses(m.snap.Expenses, len(m.snap.Expenses))
}

func (m Model) snippetFilter() string {
	if m.snippetCat == 0 {
		return ""
	}
	return string(models.SnippetCategories[m.snippetCat-1])
}

func (m Model) rowCount() int {
	switch m.tab {
	case TabBids:
		return len(m.visibleBids())
	case TabClients:
		return len(m.visibleClients())
	case TabBoard:
		return len(m.boardProjects())
	case TabDevelopers:
		return len(m.visibleDevelopers())
	case TabSnippets:
		return len(m.visibleSnippets())
	case TabExpenses:
		return len(m.visibleExpenses())
	}
	return 0
}

func (m Model) getSelectedID() string {
	i := m.selectedRow
	switch m.tab {
	case TabBids:
		if bids := m.visibleBids(); i < len(bids) {
			return bids[i].ID
		}
	case TabClients:
		if clients := m.visibleClients(); i < len(clients) {
			return clients[i].ID
		}
	case TabBoard:
		if projects := m.boardProjects(); i < len(projects) {
			return projects[i].ID
		}
	case TabDevelopers:
		if devs := m.visibleDevelopers(); i < len(devs) {
			return devs[i].ID
		}
	case TabSnippets:
		if snippets := m.visibleSnippets(); i < len(snippets) {
			return snippets[i].ID
		}
	case TabExpenses:
		if expenses := m.visibleExpenses(); i < len(expenses) {
			return expenses[i].ID
		}
	}
	return ""
}

func (m *Model) copySelectedSnippet() {
	snippet, ok := m.store.Snippet(m.getSelectedID())
	if !ok {
		return
	}
	if err := m.copy(snippet.Content); err != nil {
		m.err = fmt.Errorf("failed to copy to clipboard: %w", err)
		return
	}
	m.statusMessage = "Copied to clipboard"
}

func (m *Model) advanceDealStage() {
	c, ok := m.store.Client(m.getSelectedID())
	if !ok {
		return
	}
	next := models.DealStages[0]
	for i, stage := range models.DealStages {
		if stage == c.DealStage {
			next = models.DealStages[(i+1)%len(models.DealStages)]
		}
	}
	m.store.UpdateClient(c.ID, models.ClientPatch{DealStage: &next})
	m.refresh()
	m.statusMessage = fmt.Sprintf("%s moved to %s", c.Name, next.Label())
}

func (m *Model) cycleAvailability() {
	d, ok := m.store.Developer(m.getSelectedID())
	if !ok {
		return
	}
	next := models.Availabilities[0]
	for i, a := range models.Availabilities {
		if a == d.Availability {
			next = models.Availabilities[(i+1)%len(models.Availabilities)]
		}
	}
	m.store.UpdateDeveloper(d.ID, models.DeveloperPatch{Availability: &next})
	m.refresh()
	m.statusMessage = fmt.Sprintf("%s is now %s", d.Name, strings.ToLower(next.Label()))
}

func (m *Model) toggleWon() {
	id := m.getSelectedID()
	for _, b := range m.snap.Bids {
		if b.ID != id {
			continue
		}
		won := !b.Won
		m.store.UpdateBid(id, models.BidPatch{Won: &won})
		m.refresh()
		if won {
			m.statusMessage = fmt.Sprintf("Bid for %s marked won", b.ClientName)
		} else {
			m.statusMessage = fmt.Sprintf("Bid for %s marked open", b.ClientName)
		}
		return
	}
}

func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 40 {
		return string(r[:39]) + "…"
	}
	return s
}
