// ABOUTME: Closed enumerations used by the dashboard entities
// ABOUTME: Deal stages, kanban columns, availability and the category sets with display labels
package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type DealStage string

const (
	StageLead         DealStage = "lead"
	StageProposalSent DealStage = "proposal_sent"
	StageNegotiation  DealStage = "negotiation"
	StageWon          DealStage = "won"
	StageLost         DealStage = "lost"
)

// DealStages lists every stage in pipeline order.
var DealStages = []DealStage{StageLead, StageProposalSent, StageNegotiation, StageWon, StageLost}

var dealStageLabels = map[DealStage]string{
	StageLead:         "Leads",
	StageProposalSent: "Proposals Sent",
	StageNegotiation:  "Negotiation",
	StageWon:          "Won Deals",
	StageLost:         "Lost Deals",
}

func (s DealStage) Valid() bool {
	_, ok := dealStageLabels[s]
	return ok
}

func (s DealStage) Label() string { return label(dealStageLabels, s) }

type KanbanColumn string

const (
	ColumnTodo       KanbanColumn = "todo"
	ColumnInProgress KanbanColumn = "in_progress"
	ColumnWaiting    KanbanColumn = "waiting"
	ColumnRevisions  KanbanColumn = "revisions"
	ColumnReady      KanbanColumn = "ready"
	ColumnCompleted  KanbanColumn = "completed"
)

// KanbanColumns lists the board columns left to right.
var KanbanColumns = []KanbanColumn{ColumnTodo, ColumnInProgress, ColumnWaiting, ColumnRevisions, ColumnReady, ColumnCompleted}

var kanbanColumnLabels = map[KanbanColumn]string{
	ColumnTodo:       "To Do",
	ColumnInProgress: "In Progress",
	ColumnWaiting:    "Waiting",
	ColumnRevisions:  "Revisions",
	ColumnReady:      "Ready",
	ColumnCompleted:  "Completed",
}

func (c KanbanColumn) Valid() bool {
	_, ok := kanbanColumnLabels[c]
	return ok
}

func (c KanbanColumn) Label() string { return label(kanbanColumnLabels, c) }

// Next returns the column to the right, or c itself for the last column.
func (c KanbanColumn) Next() KanbanColumn {
	for i, col := range KanbanColumns {
		if col == c && i+1 < len(KanbanColumns) {
			return KanbanColumns[i+1]
		}
	}
	return c
}

// Prev returns the column to the left, or c itself for the first column.
func (c KanbanColumn) Prev() KanbanColumn {
	for i, col := range KanbanColumns {
		if col == c && i > 0 {
			return KanbanColumns[i-1]
		}
	}
	return c
}

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

var Availabilities = []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable}

var availabilityLabels = map[Availability]string{
	AvailabilityAvailable:   "Available",
	AvailabilityBusy:        "Busy",
	AvailabilityUnavailable: "Unavailable",
}

func (a Availability) Valid() bool {
	_, ok := availabilityLabels[a]
	return ok
}

func (a Availability) Label() string { return label(availabilityLabels, a) }

type SnippetCategory string

const (
	SnippetIntros       SnippetCategory = "intros"
	SnippetFollowUps    SnippetCategory = "follow_ups"
	SnippetDelivery     SnippetCategory = "delivery"
	SnippetPortfolio    SnippetCategory = "portfolio"
	SnippetQuickReplies SnippetCategory = "quick_replies"
)

var SnippetCategories = []SnippetCategory{SnippetIntros, SnippetFollowUps, SnippetDelivery, SnippetPortfolio, SnippetQuickReplies}

var snippetCategoryLabels = map[SnippetCategory]string{
	SnippetIntros:       "Intros",
	SnippetFollowUps:    "Follow-ups",
	SnippetDelivery:     "Delivery",
	SnippetPortfolio:    "Portfolio",
	SnippetQuickReplies: "Quick Replies",
}

func (c SnippetCategory) Valid() bool {
	_, ok := snippetCategoryLabels[c]
	return ok
}

func (c SnippetCategory) Label() string { return label(snippetCategoryLabels, c) }

type TemplateCategory string

const (
	TemplateDesign     TemplateCategory = "design"
	TemplateAdmin      TemplateCategory = "admin"
	TemplateRealEstate TemplateCategory = "real_estate"
	TemplateBPO        TemplateCategory = "bpo"
	TemplateTutoring   TemplateCategory = "tutoring"
)

var TemplateCategories = []TemplateCategory{TemplateDesign, TemplateAdmin, TemplateRealEstate, TemplateBPO, TemplateTutoring}

var templateCategoryLabels = map[TemplateCategory]string{
	TemplateDesign:     "Design",
	TemplateAdmin:      "Admin",
	TemplateRealEstate: "Real Estate",
	TemplateBPO:        "BPO",
	TemplateTutoring:   "Tutoring",
}

func (c TemplateCategory) Valid() bool {
	_, ok := templateCategoryLabels[c]
	return ok
}

func (c TemplateCategory) Label() string { return label(templateCategoryLabels, c) }

type ExpenseCategory string

const (
	ExpenseTools       ExpenseCategory = "tools"
	ExpenseSoftware    ExpenseCategory = "software"
	ExpenseOutsourcing ExpenseCategory = "outsourcing"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseEquipment   ExpenseCategory = "equipment"
	ExpenseOther       ExpenseCategory = "other"
)

var ExpenseCategories = []ExpenseCategory{ExpenseTools, ExpenseSoftware, ExpenseOutsourcing, ExpenseMarketing, ExpenseEquipment, ExpenseOther}

var expenseCategoryLabels = map[ExpenseCategory]string{
	ExpenseTools:       "Tools",
	ExpenseSoftware:    "Software",
	ExpenseOutsourcing: "Outsourcing",
	ExpenseMarketing:   "Marketing",
	ExpenseEquipment:   "Equipment",
	ExpenseOther:       "Other",
}

func (c ExpenseCategory) Valid() bool {
	_, ok := expenseCategoryLabels[c]
	return ok
}

func (c ExpenseCategory) Label() string { return label(expenseCategoryLabels, c) }

// label falls back to a title-cased rendering of the raw value so that an
// out-of-range value still displays as something readable.
func label[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(k), "_", " "))
}
