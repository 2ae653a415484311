// ABOUTME: Per-collection add, update and delete operations on the store
// ABOUTME: Unknown ids are silent no-ops reported through a false return
package store

import "github.com/harperreed/gigdesk/models"

func bidID(b models.Bid) string             { return b.ID }
func clientID(c models.Client) string       { return c.ID }
func projectID(p models.Project) string     { return p.ID }
func developerID(d models.Developer) string { return d.ID }
func snippetID(s models.Snippet) string     { return s.ID }
func expenseID(e models.Expense) string     { return e.ID }

// AddBid appends bid with a freshly generated id, ignoring any id it carries.
func (s *Store) AddBid(bid models.Bid) models.Bid {
	s.mutate(CollectionBids, "add", "", func(next *Snapshot) bool {
		bid.ID = uniqueID(s, next.Bids, bidID)
		next.Bids = appendRecord(next.Bids, bid)
		return true
	})
	return bid
}

// UpdateBid applies patch to the bid with id.
func (s *Store) UpdateBid(id string, patch models.BidPatch) bool {
	return s.mutate(CollectionBids, "update", id, func(next *Snapshot) bool {
		var ok bool
		next.Bids, ok = replaceRecord(next.Bids, id, bidID, patch.Apply)
		return ok
	})
}

// DeleteBid removes the bid with id.
func (s *Store) DeleteBid(id string) bool {
	return s.mutate(CollectionBids, "delete", id, func(next *Snapshot) bool {
		var ok bool
		next.Bids, ok = removeRecord(next.Bids, id, bidID)
		return ok
	})
}

// AddClient appends client with a freshly generated id.
func (s *Store) AddClient(client models.Client) models.Client {
	s.mutate(CollectionClients, "add", "", func(next *Snapshot) bool {
		client.ID = uniqueID(s, next.Clients, clientID)
		next.Clients = appendRecord(next.Clients, client)
		return true
	})
	return client
}

// UpdateClient applies patch to the client with id.
func (s *Store) UpdateClient(id string, patch models.ClientPatch) bool {
	return s.mutate(CollectionClients, "update", id, func(next *Snapshot) bool {
		var ok bool
		next.Clients, ok = replaceRecord(next.Clients, id, clientID, patch.Apply)
		return ok
	})
}

// DeleteClient removes the client. Projects that reference it keep their
// copied ClientName and dangling ClientID.
func (s *Store) DeleteClient(id string) bool {
	return s.mutate(CollectionClients, "delete", id, func(next *Snapshot) bool {
		var ok bool
		next.Clients, ok = removeRecord(next.Clients, id, clientID)
		return ok
	})
}

// Client looks up a client by id.
func (s *Store) Client(id string) (models.Client, bool) {
	return findRecord(s.Snapshot().Clients, id, clientID)
}

// AddProject appends project with a freshly generated id.
func (s *Store) AddProject(project models.Project) models.Project {
	s.mutate(CollectionProjects, "add", "", func(next *Snapshot) bool {
		project.ID = uniqueID(s, next.Projects, projectID)
		next.Projects = appendRecord(next.Projects, project)
		return true
	})
	return project
}

// UpdateProject applies patch to the project with id.
func (s *Store) UpdateProject(id string, patch models.ProjectPatch) bool {
	return s.mutate(CollectionProjects, "update", id, func(next *Snapshot) bool {
		var ok bool
		next.Projects, ok = replaceRecord(next.Projects, id, projectID, patch.Apply)
		return ok
	})
}

// MoveProject places the project in column. It is UpdateProject restricted to Column.
func (s *Store) MoveProject(id string, column models.KanbanColumn) bool {
	return s.UpdateProject(id, models.ProjectPatch{Column: &column})
}

// DeleteProject removes the project. Expenses keep their copied ProjectTitle.
func (s *Store) DeleteProject(id string) bool {
	return s.mutate(CollectionProjects, "delete", id, func(next *Snapshot) bool {
		var ok bool
		next.Projects, ok = removeRecord(next.Projects, id, projectID)
		return ok
	})
}

// Project looks up a project by id.
func (s *Store) Project(id string) (models.Project, bool) {
	return findRecord(s.Snapshot().Projects, id, projectID)
}

// AddDeveloper appends dev with a freshly generated id.
func (s *Store) AddDeveloper(dev models.Developer) models.Developer {
	s.mutate(CollectionDevelopers, "add", "", func(next *Snapshot) bool {
		dev.ID = uniqueID(s, next.Developers, developerID)
		next.Developers = appendRecord(next.Developers, dev)
		return true
	})
	return dev
}

// UpdateDeveloper applies patch to the developer with id.
func (s *Store) UpdateDeveloper(id string, patch models.DeveloperPatch) bool {
	return s.mutate(CollectionDevelopers, "update", id, func(next *Snapshot) bool {
		var ok bool
		next.Developers, ok = replaceRecord(next.Developers, id, developerID, patch.Apply)
		return ok
	})
}

// DeleteDeveloper removes the developer with id.
func (s *Store) DeleteDeveloper(id string) bool {
	return s.mutate(CollectionDevelopers, "delete", id, func(next *Snapshot) bool {
		var ok bool
		next.Developers, ok = removeRecord(next.Developers, id, developerID)
		return ok
	})
}

// Developer looks up a developer by id.
func (s *Store) Developer(id string) (models.Developer, bool) {
	return findRecord(s.Snapshot().Developers, id, developerID)
}

// AddSnippet appends snippet with a freshly generated id.
func (s *Store) AddSnippet(snippet models.Snippet) models.Snippet {
	s.mutate(CollectionSnippets, "add", "", func(next *Snapshot) bool {
		snippet.ID = uniqueID(s, next.Snippets, snippetID)
		next.Snippets = appendRecord(next.Snippets, snippet)
		return true
	})
	return snippet
}

// UpdateSnippet applies patch to the snippet with id.
func (s *Store) UpdateSnippet(id string, patch models.SnippetPatch) bool {
	return s.mutate(CollectionSnippets, "update", id, func(next *Snapshot) bool {
		var ok bool
		next.Snippets, ok = replaceRecord(next.Snippets, id, snippetID, patch.Apply)
		return ok
	})
}

// DeleteSnippet removes the snippet with id.
func (s *Store) DeleteSnippet(id string) bool {
	return s.mutate(CollectionSnippets, "delete", id, func(next *Snapshot) bool {
		var ok bool
		next.Snippets, ok = removeRecord(next.Snippets, id, snippetID)
		return ok
	})
}

// Snippet looks up a snippet by id.
func (s *Store) Snippet(id string) (models.Snippet, bool) {
	return findRecord(s.Snapshot().Snippets, id, snippetID)
}

// AddExpense appends expense with a freshly generated id.
func (s *Store) AddExpense(expense models.Expense) models.Expense {
	s.mutate(CollectionExpenses, "add", "", func(next *Snapshot) bool {
		expense.ID = uniqueID(s, next.Expenses, expenseID)
		next.Expenses = appendRecord(next.Expenses, expense)
		return true
	})
	return expense
}

// UpdateExpense applies patch to the expense with id.
func (s *Store) UpdateExpense(id string, patch models.ExpensePatch) bool {
	return s.mutate(CollectionExpenses, "update", id, func(next *Snapshot) bool {
		var ok bool
		next.Expenses, ok = replaceRecord(next.Expenses, id, expenseID, patch.Apply)
		return ok
	})
}

// DeleteExpense removes the expense with id.
func (s *Store) DeleteExpense(id string) bool {
	return s.mutate(CollectionExpenses, "delete", id, func(next *Snapshot) bool {
		var ok bool
		next.Expenses, ok = removeRecord(next.Expenses, id, expenseID)
		return ok
	})
}

// Expense looks up an expense by id.
func (s *Store) Expense(id string) (models.Expense, bool) {
	return findRecord(s.Snapshot().Expenses, id, expenseID)
}

// Template returns the first template in category. Templates are read-only.
func (s *Store) Template(category models.TemplateCategory) (models.ProposalTemplate, bool) {
	for _, t := range s.Snapshot().Templates {
		if t.Category == category {
			return t, true
		}
	}
	return models.ProposalTemplate{}, false
}

// UpdateUserProfile merges patch into the singleton profile.
func (s *Store) UpdateUserProfile(patch models.UserProfilePatch) models.UserProfile {
	var profile models.UserProfile
	s.mutate(CollectionUserProfile, "update", "", func(next *Snapshot) bool {
		next.UserProfile = patch.Apply(next.UserProfile)
		profile = next.UserProfile
		return true
	})
	return profile
}
