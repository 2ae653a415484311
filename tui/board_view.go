// ABOUTME: Dashboard and kanban board screens for the TUI
// ABOUTME: Renders projects in board columns and moves cards between them
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/gigdesk/models"
	"github.com/harperreed/gigdesk/viz"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(22)

	columnActiveStyle = columnStyle.
				BorderForeground(lipgloss.Color("170"))

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252"))

	cardSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true)

	dashboardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDashboard() string {
	return dashboardStyle.Render(viz.RenderDashboard(viz.GenerateDashboard(m.snap, m.now())))
}

// boardProjects returns the cards in the focused column.
func (m Model) boardProjects() []models.Project {
	groups := viz.GroupByColumn(m.snap.Projects)
	if m.boardColumn < 0 || m.boardColumn >= len(groups) {
		return nil
	}
	return groups[m.boardColumn].Projects
}

func (m Model) renderBoard() string {
	now := m.now()
	var columns []string

	for i, group := range viz.GroupByColumn(m.snap.Projects) {
		var s strings.Builder
		s.WriteString(columnTitleStyle.Render(fmt.Sprintf("%s (%d)", group.Label, len(group.Projects))))
		s.WriteString("\n")

		for j, p := range group.Projects {
			card := fmt.Sprintf("%s\n  %s\n  due %s",
				truncate(p.Title, 20), truncate(p.ClientName, 18), viz.RelativeDeadline(p.Deadline, now))
			if i == m.boardColumn && j == m.selectedRow {
				card = cardSelectedStyle.Render("▸ " + card)
			} else {
				card = "  " + card
			}
			s.WriteString("\n")
			s.WriteString(card)
			s.WriteString("\n")
		}

		style := columnStyle
		if i == m.boardColumn {
			style = columnActiveStyle
		}
		columns = append(columns, style.Render(s.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// moveSelectedProject shifts the focused card one column and keeps it focused.
func (m *Model) moveSelectedProject(forward bool) {
	p, ok := m.store.Project(m.getSelectedID())
	if !ok {
		return
	}

	target := p.Column.Prev()
	if forward {
		target = p.Column.Next()
	}
	if target == p.Column {
		return
	}

	m.store.MoveProject(p.ID, target)
	m.snap = m.store.Snapshot()

	for i, col := range models.KanbanColumns {
		if col == target {
			m.boardColumn = i
		}
	}
	m.selectedRow = 0
	for j, q := range m.boardProjects() {
		if q.ID == p.ID {
			m.selectedRow = j
		}
	}
	m.statusMessage = fmt.Sprintf("%s moved to %s", p.Title, target.Label())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
