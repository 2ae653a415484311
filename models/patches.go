// ABOUTME: Partial-record patch types for shallow-merge updates
// ABOUTME: A nil field leaves the target untouched, a non-nil field overwrites it
package models

import "time"

type BidPatch struct {
	ClientName *string    `json:"client_name,omitempty"`
	Amount     *float64   `json:"amount,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Won        *bool      `json:"won,omitempty"`
}

func (p BidPatch) Apply(b Bid) Bid {
	setIf(&b.ClientName, p.ClientName)
	setIf(&b.Amount, p.Amount)
	setIf(&b.Date, p.Date)
	setIf(&b.Won, p.Won)
	return b
}

type ClientPatch struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	DealStage *DealStage `json:"deal_stage,omitempty"`
	Revenue   *float64   `json:"revenue,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Avatar    *string    `json:"avatar,omitempty"`
}

func (p ClientPatch) Apply(c Client) Client {
	setIf(&c.Name, p.Name)
	setIf(&c.Email, p.Email)
	setIf(&c.Phone, p.Phone)
	setIf(&c.DealStage, p.DealStage)
	setIf(&c.Revenue, p.Revenue)
	setIf(&c.Notes, p.Notes)
	if p.Avatar != nil {
		avatar := *p.Avatar
		c.Avatar = &avatar
	}
	return c
}

type ProjectPatch struct {
	Title      *string       `json:"title,omitempty"`
	ClientID   *string       `json:"client_id,omitempty"`
	ClientName *string       `json:"client_name,omitempty"`
	Deadline   *time.Time    `json:"deadline,omitempty"`
	Revenue    *float64      `json:"revenue,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
	Column     *KanbanColumn `json:"column,omitempty"`
}

func (p ProjectPatch) Apply(pr Project) Project {
	setIf(&pr.Title, p.Title)
	setIf(&pr.ClientID, p.ClientID)
	setIf(&pr.ClientName, p.ClientName)
	setIf(&pr.Deadline, p.Deadline)
	setIf(&pr.Revenue, p.Revenue)
	setIf(&pr.Notes, p.Notes)
	setIf(&pr.Column, p.Column)
	return pr
}

type DeveloperPatch struct {
	Name         *string       `json:"name,omitempty"`
	Role         *string       `json:"role,omitempty"`
	HourlyRate   *float64      `json:"hourly_rate,omitempty"`
	ProfileLink  *string       `json:"profile_link,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
	Avatar       *int          `json:"avatar,omitempty"`
}

func (p DeveloperPatch) Apply(d Developer) Developer {
	setIf(&d.Name, p.Name)
	setIf(&d.Role, p.Role)
	setIf(&d.HourlyRate, p.HourlyRate)
	setIf(&d.ProfileLink, p.ProfileLink)
	setIf(&d.Notes, p.Notes)
	setIf(&d.Availability, p.Availability)
	if p.Avatar != nil {
		avatar := *p.Avatar
		d.Avatar = &avatar
	}
	return d
}

type SnippetPatch struct {
	Title    *string          `json:"title,omitempty"`
	Content  *string          `json:"content,omitempty"`
	Category *SnippetCategory `json:"category,omitempty"`
}

func (p SnippetPatch) Apply(s Snippet) Snippet {
	setIf(&s.Title, p.Title)
	setIf(&s.Content, p.Content)
	setIf(&s.Category, p.Category)
	return s
}

type ExpensePatch struct {
	Amount       *float64         `json:"amount,omitempty"`
	Category     *ExpenseCategory `json:"category,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Date         *time.Time       `json:"date,omitempty"`
	ProjectID    *string          `json:"project_id,omitempty"`
	ProjectTitle *string          `json:"project_title,omitempty"`
}

func (p ExpensePatch) Apply(e Expense) Expense {
	setIf(&e.Amount, p.Amount)
	setIf(&e.Category, p.Category)
	setIf(&e.Description, p.Description)
	setIf(&e.Date, p.Date)
	setIf(&e.ProjectID, p.ProjectID)
	setIf(&e.ProjectTitle, p.ProjectTitle)
	return e
}

type UserProfilePatch struct {
	Name        *string `json:"name,omitempty"`
	AvatarIndex *int    `json:"avatar_index,omitempty"`
}

func (p UserProfilePatch) Apply(u UserProfile) UserProfile {
	setIf(&u.Name, p.Name)
	setIf(&u.AvatarIndex, p.AvatarIndex)
	return u
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
