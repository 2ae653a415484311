// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen dashboard, lists, kanban board and forms over the shared store
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/gigdesk/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewEdit
	ViewGraph
	ViewConfirmDelete
)

// Tab is one of the top-level screens
type Tab int

const (
	TabDashboard Tab = iota
	TabBids
	TabClients
	TabBoard
	TabDevelopers
	TabSnippets
	TabExpenses
)

var tabNames = []string{"Dashboard", "Bids", "Clients", "Board", "Developers", "Snippets", "Expenses"}

func (t Tab) String() string { return tabNames[t] }

// Model is the main bubbletea model
type Model struct {
	store   *store.Store
	snap    store.Snapshot
	updates <-chan struct{}
	now     func() time.Time
	copy    func(text string) error

	viewMode ViewMode
	tab      Tab

	// List view state
	selectedRow int
	boardColumn int
	searchQuery string
	searchInput textinput.Model
	searching   bool
	roleFilter  int
	snippetCat  int

	// Detail view state
	selectedID string

	// Edit view state
	form       formKind
	formInputs []textinput.Model
	focusIndex int

	// Graph view state
	graphDOT string

	statusMessage string

	// UI state
	width  int
	height int
	err    error
}

// NewModel creates a new TUI model reading from s
func NewModel(s *store.Store) Model {
	search := textinput.New()
	search.Placeholder = "Search clients"
	search.CharLimit = 100

	return Model{
		store:       s,
		snap:        s.Snapshot(),
		now:         time.Now,
		copy:        clipboard.WriteAll,
		viewMode:    ViewList,
		tab:         TabDashboard,
		searchInput: search,
		width:       80,
		height:      24,
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(s *store.Store) error {
	m := NewModel(s)

	updates := make(chan struct{}, 1)
	unsubscribe := s.Subscribe(func(_, _ store.Snapshot) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()
	m.updates = updates

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// snapshotMsg signals that the store changed outside the current key handler.
type snapshotMsg struct{}

func (m Model) waitForUpdate() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		<-updates
		return snapshotMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case snapshotMsg:
		m.refresh()
		return m, m.waitForUpdate()
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewEdit:
		return m.renderEditView()
	case ViewGraph:
		return m.renderGraphView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Text entry swallows q.
	if msg.String() == "q" && m.viewMode != ViewEdit && !m.searching {
		return m, tea.Quit
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewGraph:
		return m.handleGraphKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// refresh re-reads the store and keeps the cursor inside the visible rows.
func (m *Model) refresh() {
	m.snap = m.store.Snapshot()
	n := m.rowCount()
	if m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
