// ABOUTME: Embedded sample data used to initialise a new store
// ABOUTME: Decodes seed.yaml and anchors relative dates on the store clock
package store

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/harperreed/gigdesk/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

const day = 24 * time.Hour

type seedBid struct {
	models.Bid `yaml:",inline"`
	DaysAgo    int `yaml:"days_ago"`
}

type seedProject struct {
	models.Project `yaml:",inline"`
	DaysUntil      int `yaml:"days_until"`
}

type seedExpense struct {
	models.Expense `yaml:",inline"`
	DaysAgo        int `yaml:"days_ago"`
}

type seedFile struct {
	UserProfile models.UserProfile        `yaml:"user_profile"`
	Bids        []seedBid                 `yaml:"bids"`
	Clients     []models.Client           `yaml:"clients"`
	Projects    []seedProject             `yaml:"projects"`
	Developers  []models.Developer        `yaml:"developers"`
	Snippets    []models.Snippet          `yaml:"snippets"`
	Templates   []models.ProposalTemplate `yaml:"templates"`
	Expenses    []seedExpense             `yaml:"expenses"`
}

// parseSeed decodes seed data, resolving relative dates against now.
func parseSeed(data []byte, now time.Time) (Snapshot, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse seed data: %w", err)
	}

	snap := Snapshot{
		UserProfile: f.UserProfile,
		Clients:     f.Clients,
		Developers:  f.Developers,
		Snippets:    f.Snippets,
		Templates:   f.Templates,
	}

	for _, b := range f.Bids {
		bid := b.Bid
		bid.Date = now.Add(-time.Duration(b.DaysAgo) * day)
		snap.Bids = append(snap.Bids, bid)
	}
	for _, p := range f.Projects {
		project := p.Project
		project.Deadline = now.Add(time.Duration(p.DaysUntil) * day)
		snap.Projects = append(snap.Projects, project)
	}
	for _, e := range f.Expenses {
		expense := e.Expense
		expense.Date = now.Add(-time.Duration(e.DaysAgo) * day)
		snap.Expenses = append(snap.Expenses, expense)
	}

	return snap, nil
}

// seedSnapshot panics on malformed embedded data; it is covered by tests.
func seedSnapshot(now time.Time) Snapshot {
	snap, err := parseSeed(seedYAML, now)
	if err != nil {
		panic(err)
	}
	return snap
}

func defaultProfile() models.UserProfile {
	return models.UserProfile{Name: "Freelancer"}
}
