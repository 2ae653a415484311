// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Removes bids, clients, projects, developers, snippets and expenses after confirmation
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	entityType := m.entityName()

	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := fmt.Sprintf("Are you sure you want to delete this %s?", entityType)
	entityInfo := fmt.Sprintf("\n%s: %s\n", strings.ToUpper(entityType), m.selectedLabel())
	warning := "\nThis action cannot be undone!"

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	box := confirmBoxStyle.Render(content)

	// Center the box on screen
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		label := m.selectedLabel()
		if m.performDelete() {
			m.statusMessage = fmt.Sprintf("Deleted %s %s", m.entityName(), label)
			m.err = nil
		} else {
			m.err = errRecordGone
		}
		m.viewMode = ViewList
		m.selectedID = ""
		m.refresh()
	case "n", "N", "esc":
		m.viewMode = ViewList
	}

	return m, nil
}

func (m Model) performDelete() bool {
	id := m.selectedID

	switch m.tab {
	case TabBids:
		return m.store.DeleteBid(id)
	case TabClients:
		return m.store.DeleteClient(id)
	case TabBoard:
		return m.store.DeleteProject(id)
	case TabDevelopers:
		return m.store.DeleteDeveloper(id)
	case TabSnippets:
		return m.store.DeleteSnippet(id)
	case TabExpenses:
		return m.store.DeleteExpense(id)
	}
	return false
}

// selectedLabel names the selected record for display.
func (m Model) selectedLabel() string {
	id := m.selectedID

	switch m.tab {
	case TabBids:
		for _, b := range m.snap.Bids {
			if b.ID == id {
				return fmt.Sprintf("%s (%s)", b.ClientName, b.Date.Format("2006-01-02"))
			}
		}
	case TabClients:
		if c, ok := m.store.Client(id); ok {
			return c.Name
		}
	case TabBoard:
		if p, ok := m.store.Project(id); ok {
			return p.Title
		}
	case TabDevelopers:
		if d, ok := m.store.Developer(id); ok {
			return d.Name
		}
	case TabSnippets:
		if s, ok := m.store.Snippet(id); ok {
			return s.Title
		}
	case TabExpenses:
		for _, e := range m.snap.Expenses {
			if e.ID == id {
				return e.Description
			}
		}
	}
	return id
}
