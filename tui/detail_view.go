package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/gigdesk/viz"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render(strings.ToUpper(m.entityName()) + " DETAIL"))
	s.WriteString("\n\n")

	body := m.renderEntityDetail()
	if body == "" {
		body = fmt.Sprintf("This %s no longer exists.\n", m.entityName())
	}
	s.WriteString(body)
	s.WriteString("\n")

	// Help
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderEntityDetail() string {
	var s strings.Builder
	now := m.now()

	switch m.tab {
	case TabBids:
		for _, b := range m.snap.Bids {
			if b.ID != m.selectedID {
				continue
			}
			s.WriteString(m.renderField("Client", b.ClientName))
			s.WriteString(m.renderField("Amount", viz.FormatMoney(b.Amount)))
			s.WriteString(m.renderField("Date", b.Date.Format("2006-01-02 15:04")))
			s.WriteString(m.renderField("Won", fmt.Sprintf("%t", b.Won)))
		}
	case TabClients:
		if c, ok := m.store.Client(m.selectedID); ok {
			s.WriteString(m.renderField("Name", c.Name))
			s.WriteString(m.renderField("Email", c.Email))
			s.WriteString(m.renderField("Phone", c.Phone))
			s.WriteString(m.renderField("Stage", c.DealStage.Label()))
			s.WriteString(m.renderField("Revenue", viz.FormatMoney(c.Revenue)))
			s.WriteString(m.renderField("Notes", c.Notes))

			// Related projects
			var related []string
			for _, p := range m.snap.Projects {
				if p.ClientID == c.ID {
					related = append(related, fmt.Sprintf("  • %s (%s)", p.Title, p.Column.Label()))
				}
			}
			if len(related) > 0 {
				s.WriteString("\n")
				s.WriteString(fieldLabelStyle.Render("Projects"))
				s.WriteString("\n")
				s.WriteString(strings.Join(related, "\n"))
				s.WriteString("\n")
			}
		}
	case TabBoard:
		if p, ok := m.store.Project(m.selectedID); ok {
			s.WriteString(m.renderField("Title", p.Title))
			s.WriteString(m.renderField("Client", p.ClientName))
			s.WriteString(m.renderField("Column", p.Column.Label()))
			s.WriteString(m.renderField("Deadline", fmt.Sprintf("%s (%s)", p.Deadline.Format("2006-01-02"), viz.RelativeDeadline(p.Deadline, now))))
			s.WriteString(m.renderField("Revenue", viz.FormatMoney(p.Revenue)))
			rollup := viz.ComputeExpenseRollup(m.snap.Expenses, p.Revenue, p.ID)
			s.WriteString(m.renderField("Expenses", viz.FormatMoney(rollup.TotalExpenses)))
			s.WriteString(m.renderField("Profit", fmt.Sprintf("%s (%d%%)", viz.FormatMoney(rollup.TotalProfit), rollup.ProfitMargin)))
			s.WriteString(m.renderField("Notes", p.Notes))
		}
	case TabDevelopers:
		if d, ok := m.store.Developer(m.selectedID); ok {
			s.WriteString(m.renderField("Name", d.Name))
			s.WriteString(m.renderField("Role", d.Role))
			s.WriteString(m.renderField("Hourly Rate", viz.FormatMoney(d.HourlyRate)))
			s.WriteString(m.renderField("Availability", d.Availability.Label()))
			s.WriteString(m.renderField("Profile", d.ProfileLink))
			s.WriteString(m.renderField("Notes", d.Notes))
		}
	case TabSnippets:
		if sn, ok := m.store.Snippet(m.selectedID); ok {
			s.WriteString(m.renderField("Title", sn.Title))
			s.WriteString(m.renderField("Category", sn.Category.Label()))
			s.WriteString("\n")
			s.WriteString(fieldValueStyle.Render(sn.Content))
			s.WriteString("\n")
		}
	case TabExpenses:
		for _, e := range m.snap.Expenses {
			if e.ID != m.selectedID {
				continue
			}
			s.WriteString(m.renderField("Description", e.Description))
			s.WriteString(m.renderField("Amount", viz.FormatMoney(e.Amount)))
			s.WriteString(m.renderField("Category", e.Category.Label()))
			s.WriteString(m.renderField("Date", e.Date.Format("2006-01-02")))
			s.WriteString(m.renderField("Project", e.ProjectTitle))
		}
	}

	return s.String()
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return fieldLabelStyle.Render(label+":") + " " + fieldValueStyle.Render(value) + "\n"
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"e: Edit",
		"d: Delete",
		"Esc: Back",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.selectedID = ""
	case "e":
		return m, m.openForm(m.formForTab(), m.selectedID)
	case "d":
		m.viewMode = ViewConfirmDelete
	}

	return m, nil
}

func (m Model) entityName() string {
	switch m.tab {
	case TabDashboard:
		return "profile"
	case TabBids:
		return "bid"
	case TabClients:
		return "client"
	case TabBoard:
		return "project"
	case TabDevelopers:
		return "developer"
	case TabSnippets:
		return "snippet"
	case TabExpenses:
		return "expense"
	}
	return ""
}
