// ABOUTME: Immutable snapshot of every store collection plus per-collection revisions
// ABOUTME: Consumers compare revisions to decide which derived views need recomputing
package store

import "github.com/harperreed/gigdesk/models"

// Collection names one slice of the snapshot.
type Collection string

const (
	CollectionBids        Collection = "bids"
	CollectionClients     Collection = "clients"
	CollectionProjects    Collection = "projects"
	CollectionDevelopers  Collection = "developers"
	CollectionSnippets    Collection = "snippets"
	CollectionTemplates   Collection = "templates"
	CollectionExpenses    Collection = "expenses"
	CollectionUserProfile Collection = "user_profile"
)

// Collections lists every collection in display order.
var Collections = []Collection{
	CollectionBids,
	CollectionClients,
	CollectionProjects,
	CollectionDevelopers,
	CollectionSnippets,
	CollectionTemplates,
	CollectionExpenses,
	CollectionUserProfile,
}

// Revisions counts the replacements of each collection since the store was built.
type Revisions struct {
	Bids        uint64 `json:"bids"`
	Clients     uint64 `json:"clients"`
	Projects    uint64 `json:"projects"`
	Developers  uint64 `json:"developers"`
	Snippets    uint64 `json:"snippets"`
	Templates   uint64 `json:"templates"`
	Expenses    uint64 `json:"expenses"`
	UserProfile uint64 `json:"user_profile"`
}

func (r *Revisions) counter(c Collection) *uint64 {
	switch c {
	case CollectionBids:
		return &r.Bids
	case CollectionClients:
		return &r.Clients
	case CollectionProjects:
		return &r.Projects
	case CollectionDevelopers:
		return &r.Developers
	case CollectionSnippets:
		return &r.Snippets
	case CollectionTemplates:
		return &r.Templates
	case CollectionExpenses:
		return &r.Expenses
	case CollectionUserProfile:
		return &r.UserProfile
	}
	return nil
}

func (r *Revisions) bump(c Collection) {
	if n := r.counter(c); n != nil {
		*n++
	}
}

// Of returns the revision of collection c.
func (r Revisions) Of(c Collection) uint64 {
	if n := r.counter(c); n != nil {
		return *n
	}
	return 0
}

// Snapshot is the complete set of collection contents at one instant.
// Slices are never modified after publication; callers must treat them as
// read-only and copy before editing.
type Snapshot struct {
	Version     uint64                    `json:"version"`
	Revisions   Revisions                 `json:"revisions"`
	Bids        []models.Bid              `json:"bids"`
	Clients     []models.Client           `json:"clients"`
	Projects    []models.Project          `json:"projects"`
	Developers  []models.Developer        `json:"developers"`
	Snippets    []models.Snippet          `json:"snippets"`
	Templates   []models.ProposalTemplate `json:"templates"`
	Expenses    []models.Expense          `json:"expenses"`
	UserProfile models.UserProfile        `json:"user_profile"`
}

// Changed reports the collections whose revision differs between prev and s.
func (s Snapshot) Changed(prev Snapshot) []Collection {
	var changed []Collection
	for _, c := range Collections {
		if s.Revisions.Of(c) != prev.Revisions.Of(c) {
			changed = append(changed, c)
		}
	}
	return changed
}

// Len returns the number of records in collection c. The user profile counts as one.
func (s Snapshot) Len(c Collection) int {
	switch c {
	case CollectionBids:
		return len(s.Bids)
	case CollectionClients:
		return len(s.Clients)
	case CollectionProjects:
		return len(s.Projects)
	case CollectionDevelopers:
		return len(s.Developers)
	case CollectionSnippets:
		return len(s.Snippets)
	case CollectionTemplates:
		return len(s.Templates)
	case CollectionExpenses:
		return len(s.Expenses)
	case CollectionUserProfile:
		return 1
	}
	return 0
}
