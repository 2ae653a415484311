package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/gigdesk/viz"
)

func (m Model) renderGraphView() string {
	var s strings.Builder

	// Title
	title := "PIPELINE GRAPH"
	if m.tab == TabBoard {
		title = "BOARD GRAPH"
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n\n")

	// DOT source
	if m.graphDOT == "" {
		s.WriteString("Generating graph...\n")
	} else {
		s.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Render(m.graphDOT))
	}

	s.WriteString("\n\n")

	// Help
	s.WriteString(m.renderGraphHelp())

	return s.String()
}

func (m Model) renderGraphHelp() string {
	help := []string{
		"Esc: Back",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleGraphKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.graphDOT = ""
	}

	return m, nil
}

func (m *Model) generateGraph() error {
	generator := viz.NewGraphGenerator(m.store)

	var dot string
	var err error

	switch m.tab {
	case TabBoard:
		dot, err = generator.GenerateBoardGraph()
	default:
		dot, err = generator.GeneratePipelineGraph()
	}

	if err != nil {
		return err
	}

	m.graphDOT = dot
	return nil
}
