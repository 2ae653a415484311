package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/gigdesk/models"
)

type formKind int

const (
	formNone formKind = iota
	formBid
	formClient
	formProject
	formDeveloper
	formSnippet
	formExpense
	formProfile
)

var formTitles = map[formKind]string{
	formBid:       "BID",
	formClient:    "CLIENT",
	formProject:   "PROJECT",
	formDeveloper: "DEVELOPER",
	formSnippet:   "SNIPPET",
	formExpense:   "EXPENSE",
	formProfile:   "PROFILE",
}

type formField struct {
	placeholder string
	limit       int
}

func choices[K ~string](values []K) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

var formFields = map[formKind][]formField{
	formBid: {
		{"Client name", 100},
		{"Amount", 12},
		{"Won (y/n)", 3},
	},
	formClient: {
		{"Name", 100},
		{"Email", 100},
		{"Phone", 30},
		{"Deal stage (" + choices(models.DealStages) + ")", 20},
		{"Revenue", 12},
		{"Notes", 500},
	},
	formProject: {
		{"Title", 100},
		{"Client ID", 40},
		{"Deadline (YYYY-MM-DD)", 10},
		{"Revenue", 12},
		{"Column (" + choices(models.KanbanColumns) + ")", 20},
		{"Notes", 500},
	},
	formDeveloper: {
		{"Name", 100},
		{"Role", 60},
		{"Hourly rate", 10},
		{"Availability (" + choices(models.Availabilities) + ")", 12},
		{"Profile link", 200},
		{"Notes", 500},
	},
	formSnippet: {
		{"Title", 100},
		{"Category (" + choices(models.SnippetCategories) + ")", 20},
		{"Content", 2000},
	},
	formExpense: {
		{"Description", 200},
		{"Amount", 12},
		{"Category (" + choices(models.ExpenseCategories) + ")", 20},
		{"Project ID", 40},
	},
	formProfile: {
		{"Name", 100},
		{"Avatar index", 3},
	},
}

func (m Model) formForTab() formKind {
	switch m.tab {
	case TabDashboard, TabBids:
		return formBid
	case TabClients:
		return formClient
	case TabBoard:
		return formProject
	case TabDevelopers:
		return formDeveloper
	case TabSnippets:
		return formSnippet
	case TabExpenses:
		return formExpense
	}
	return formNone
}

func (m Model) renderEditView() string {
	var s strings.Builder

	// Title
	if m.selectedID == "" && m.form != formProfile {
		s.WriteString(titleStyle.Render("NEW " + formTitles[m.form]))
	} else {
		s.WriteString(titleStyle.Render("EDIT " + formTitles[m.form]))
	}
	s.WriteString("\n\n")

	// Form fields
	fields := formFields[m.form]
	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(helpStyle.UnsetMarginTop().Render(fields[i].placeholder))
		s.WriteString("\n  ")
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString("\n")

	// Help
	s.WriteString(m.renderEditHelp())

	return s.String()
}

func (m Model) renderEditHelp() string {
	help := []string{
		"Tab: Next field",
		"Enter: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.form = formNone
		m.err = nil
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		// Save the entity
		if err := m.saveEntity(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.statusMessage = "Saved " + strings.ToLower(formTitles[m.form])
		m.form = formNone
		m.viewMode = ViewList
		m.refresh()
		return m, nil
	}

	// Update current input
	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

// openForm switches to the edit view for kind. An empty id starts a new record.
func (m *Model) openForm(kind formKind, id string) tea.Cmd {
	if kind == formNone {
		return nil
	}

	fields := formFields[kind]
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = f.limit
	}

	m.form = kind
	m.selectedID = id
	m.formInputs = inputs
	m.err = nil
	m.populateForm()

	m.focusIndex = 0
	m.updateFormFocus()
	m.viewMode = ViewEdit
	return textinput.Blink
}

// populateForm fills the inputs from the record being edited.
func (m *Model) populateForm() {
	var values []string

	switch m.form {
	case formBid:
		for _, b := range m.snap.Bids {
			if b.ID == m.selectedID {
				values = []string{b.ClientName, formatAmount(b.Amount), formatBool(b.Won)}
			}
		}
	case formClient:
		if c, ok := m.store.Client(m.selectedID); ok {
			values = []string{c.Name, c.Email, c.Phone, string(c.DealStage), formatAmount(c.Revenue), c.Notes}
		}
	case formProject:
		if p, ok := m.store.Project(m.selectedID); ok {
			values = []string{p.Title, p.ClientID, p.Deadline.Format("2006-01-02"), formatAmount(p.Revenue), string(p.Column), p.Notes}
		}
	case formDeveloper:
		if d, ok := m.store.Developer(m.selectedID); ok {
			values = []string{d.Name, d.Role, formatAmount(d.HourlyRate), string(d.Availability), d.ProfileLink, d.Notes}
		}
	case formSnippet:
		if sn, ok := m.store.Snippet(m.selectedID); ok {
			values = []string{sn.Title, string(sn.Category), sn.Content}
		}
	case formExpense:
		if e, ok := m.store.Expense(m.selectedID); ok {
			values = []string{e.Description, formatAmount(e.Amount), string(e.Category), e.ProjectID}
		}
	case formProfile:
		p := m.snap.UserProfile
		values = []string{p.Name, strconv.Itoa(p.AvatarIndex)}
	}

	for i, v := range values {
		if i < len(m.formInputs) {
			m.formInputs[i].SetValue(v)
		}
	}
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m Model) formValue(i int) string {
	if i >= len(m.formInputs) {
		return ""
	}
	return strings.TrimSpace(m.formInputs[i].Value())
}

var errRecordGone = errors.New("record no longer exists")

func (m *Model) saveEntity() error {
	switch m.form {
	case formBid:
		return m.saveBid()
	case formClient:
		return m.saveClient()
	case formProject:
		return m.saveProject()
	case formDeveloper:
		return m.saveDeveloper()
	case formSnippet:
		return m.saveSnippet()
	case formExpense:
		return m.saveExpense()
	case formProfile:
		return m.saveProfile()
	}
	return fmt.Errorf("unknown form")
}

func (m *Model) saveBid() error {
	name := m.formValue(0)
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	amount := parseAmount(m.formValue(1))
	won := parseBool(m.formValue(2))

	if m.selectedID == "" {
		m.store.AddBid(models.Bid{ClientName: name, Amount: amount, Date: m.now(), Won: won})
		return nil
	}
	if !m.store.UpdateBid(m.selectedID, models.BidPatch{ClientName: &name, Amount: &amount, Won: &won}) {
		return errRecordGone
	}
	return nil
}

func (m *Model) saveClient() error {
	name := m.formValue(0)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	stage, err := parseEnum(m.formValue(3), models.StageLead, models.DealStage.Valid, "deal stage")
	if err != nil {
		return err
	}
	email, phone, notes := m.formValue(1), m.formValue(2), m.formValue(5)
	revenue := parseAmount(m.formValue(4))

	if m.selectedID == "" {
		m.store.AddClient(models.Client{Name: name, Email: email, Phone: phone, DealStage: stage, Revenue: revenue, Notes: notes})
		return nil
	}
	patch := models.ClientPatch{Name: &name, Email: &email, Phone: &phone, DealStage: &stage, Revenue: &revenue, Notes: &notes}
	if !m.store.UpdateClient(m.selectedID, patch) {
		return errRecordGone
	}
	return nil
}

func (m *Model) saveProject() error {
	title := m.formValue(0)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	column, err := parseEnum(m.formValue(4), models.ColumnTodo, models.KanbanColumn.Valid, "column")
	if err != nil {
		return err
	}

	deadline := m.now().Add(7 * 24 * time.Hour)
	if existing, ok := m.store.Project(m.selectedID); ok {
		deadline = existing.Deadline
	}
	if raw := m.formValue(2); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, m.now().Location())
		if err != nil {
			return fmt.Errorf("deadline must be YYYY-MM-DD")
		}
		deadline = d
	}

	clientID := m.formValue(1)
	clientName := ""
	if c, ok := m.store.Client(clientID); ok {
		clientName = c.Name
	}
	revenue := parseAmount(m.formValue(3))
	notes := m.formValue(5)

	if m.selectedID == "" {
		m.store.AddProject(models.Project{
			Title:      title,
			ClientID:   clientID,
			ClientName: clientName,
			Deadline:   deadline,
			Revenue:    revenue,
			Notes:      notes,
			Column:     column,
		})
		return nil
	}
	patch := models.ProjectPatch{
		Title:    &title,
		ClientID: &clientID,
		Deadline: &deadline,
		Revenue:  &revenue,
		Notes:    &notes,
		Column:   &column,
	}
	// The copied name only follows a changed reference that still resolves.
	if existing, ok := m.store.Project(m.selectedID); ok && existing.ClientID != clientID && clientName != "" {
		patch.ClientName = &clientName
	}
	if !m.store.UpdateProject(m.selectedID, patch) {
		return errRecordGone
	}
	return nil
}

func (m *Model) saveDeveloper() error {
	name := m.formValue(0)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	availability, err := parseEnum(m.formValue(3), models.AvailabilityAvailable, models.Availability.Valid, "availability")
	if err != nil {
		return err
	}
	role, link, notes := m.formValue(1), m.formValue(4), m.formValue(5)
	rate := parseAmount(m.formValue(2))

	if m.selectedID == "" {
		m.store.AddDeveloper(models.Developer{
			Name:         name,
			Role:         role,
			HourlyRate:   rate,
			ProfileLink:  link,
			Notes:        notes,
			Availability: availability,
		})
		return nil
	}
	patch := models.DeveloperPatch{
		Name:         &name,
		Role:         &role,
		HourlyRate:   &rate,
		ProfileLink:  &link,
		Notes:        &notes,
		Availability: &availability,
	}
	if !m.store.UpdateDeveloper(m.selectedID, patch) {
		return errRecordGone
	}
	return nil
}

func (m *Model) saveSnippet() error {
	title := m.formValue(0)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	category, err := parseEnum(m.formValue(1), models.SnippetQuickReplies, models.SnippetCategory.Valid, "category")
	if err != nil {
		return err
	}
	content := m.formValue(2)

	if m.selectedID == "" {
		m.store.AddSnippet(models.Snippet{Title: title, Content: content, Category: category})
		return nil
	}
	if !m.store.UpdateSnippet(m.selectedID, models.SnippetPatch{Title: &title, Content: &content, Category: &category}) {
		return errRecordGone
	}
	return nil
}

func (m *Model) saveExpense() error {
	description := m.formValue(0)
	if description == "" {
		return fmt.Errorf("description is required")
	}
	amount := parseAmount(m.formValue(1))
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	category, err := parseEnum(m.formValue(2), models.ExpenseOther, models.ExpenseCategory.Valid, "category")
	if err != nil {
		return err
	}

	projectID := m.formValue(3)
	projectTitle := ""
	if p, ok := m.store.Project(projectID); ok {
		projectTitle = p.Title
	}

	if m.selectedID == "" {
		m.store.AddExpense(models.Expense{
			Amount:       amount,
			Category:     category,
			Description:  description,
			Date:         m.now(),
			ProjectID:    projectID,
			ProjectTitle: projectTitle,
		})
		return nil
	}
	patch := models.ExpensePatch{
		Amount:      &amount,
		Category:    &category,
		Description: &description,
		ProjectID:   &projectID,
	}
	if existing, ok := m.store.Expense(m.selectedID); ok && existing.ProjectID != projectID && projectTitle != "" {
		patch.ProjectTitle = &projectTitle
	}
	if !m.store.UpdateExpense(m.selectedID, patch) {
		return errRecordGone
	}
	return nil
}

func (m *Model) saveProfile() error {
	name := m.formValue(0)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	avatar, err := strconv.Atoi(m.formValue(1))
	if err != nil {
		avatar = 0
	}
	m.store.UpdateUserProfile(models.UserProfilePatch{Name: &name, AvatarIndex: &avatar})
	return nil
}

// parseAmount reads a number, treating anything unparsable as zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$"), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "1", "won":
		return true
	}
	return false
}

func parseEnum[K ~string](s string, def K, valid func(K) bool, what string) (K, error) {
	if s == "" {
		return def, nil
	}
	v := K(strings.ToLower(s))
	if !valid(v) {
		return def, fmt.Errorf("unknown %s %q", what, s)
	}
	return v, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
