// ABOUTME: Data models for the freelance dashboard entities
// ABOUTME: Defines Bid, Client, Project, Developer, Snippet, ProposalTemplate, Expense and UserProfile
package models

import (
	"time"
)

type Bid struct {
	ID         string    `json:"id" yaml:"id"`
	ClientName string    `json:"client_name" yaml:"client_name"`
	Amount     float64   `json:"amount" yaml:"amount"`
	Date       time.Time `json:"date" yaml:"-"`
	Won        bool      `json:"won" yaml:"won"`
}

type Client struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email,omitempty" yaml:"email"`
	Phone     string    `json:"phone,omitempty" yaml:"phone"`
	DealStage DealStage `json:"deal_stage" yaml:"deal_stage"`
	Revenue   float64   `json:"revenue" yaml:"revenue"`
	Notes     string    `json:"notes,omitempty" yaml:"notes"`
	Avatar    *string   `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Project is a kanban card. ClientID is a weak reference: it is never checked
// against the client collection and ClientName is copied at creation.
type Project struct {
	ID         string       `json:"id" yaml:"id"`
	Title      string       `json:"title" yaml:"title"`
	ClientID   string       `json:"client_id,omitempty" yaml:"client_id"`
	ClientName string       `json:"client_name,omitempty" yaml:"client_name"`
	Deadline   time.Time    `json:"deadline" yaml:"-"`
	Revenue    float64      `json:"revenue" yaml:"revenue"`
	Notes      string       `json:"notes,omitempty" yaml:"notes"`
	Column     KanbanColumn `json:"column" yaml:"column"`
}

type Developer struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Role         string       `json:"role" yaml:"role"`
	HourlyRate   float64      `json:"hourly_rate" yaml:"hourly_rate"`
	ProfileLink  string       `json:"profile_link,omitempty" yaml:"profile_link"`
	Notes        string       `json:"notes,omitempty" yaml:"notes"`
	Availability Availability `json:"availability" yaml:"availability"`
	Avatar       *int         `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

type Snippet struct {
	ID       string          `json:"id" yaml:"id"`
	Title    string          `json:"title" yaml:"title"`
	Content  string          `json:"content" yaml:"content"`
	Category SnippetCategory `json:"category" yaml:"category"`
}

// ProposalTemplate is read-only seed data.
type ProposalTemplate struct {
	ID       string           `json:"id" yaml:"id"`
	Category TemplateCategory `json:"category" yaml:"category"`
	Name     string           `json:"name" yaml:"name"`
	Template string           `json:"template" yaml:"template"`
}

// Expense may be tied to a project through the weak ProjectID/ProjectTitle pair.
type Expense struct {
	ID           string          `json:"id" yaml:"id"`
	Amount       float64         `json:"amount" yaml:"amount"`
	Category     ExpenseCategory `json:"category" yaml:"category"`
	Description  string          `json:"description" yaml:"description"`
	Date         time.Time       `json:"date" yaml:"-"`
	ProjectID    string          `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ProjectTitle string          `json:"project_title,omitempty" yaml:"project_title,omitempty"`
}

type UserProfile struct {
	Name        string `json:"name" yaml:"name"`
	AvatarIndex int    `json:"avatar_index" yaml:"avatar_index"`
}
