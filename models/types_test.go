// ABOUTME: Tests for dashboard data models
// ABOUTME: Validates enumerations, labels and shallow-merge patches
package models

import (
	"testing"
	"time"
)

func TestDealStageValid(t *testing.T) {
	for _, stage := range DealStages {
		if !stage.Valid() {
			t.Errorf("expected %s to be valid", stage)
		}
	}
	if DealStage("closed_won").Valid() {
		t.Error("expected closed_won to be invalid")
	}
}

func TestLabels(t *testing.T) {
	cases := map[string]string{
		StageProposalSent.Label():   "Proposals Sent",
		ColumnInProgress.Label():    "In Progress",
		SnippetQuickReplies.Label(): "Quick Replies",
		TemplateRealEstate.Label():  "Real Estate",
		ExpenseOutsourcing.Label():  "Outsourcing",
		AvailabilityBusy.Label():    "Busy",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("expected label %q, got %q", want, got)
		}
	}

	if got := DealStage("on_hold").Label(); got != "On Hold" {
		t.Errorf("expected fallback label 'On Hold', got %q", got)
	}
}

func TestKanbanColumnNavigation(t *testing.T) {
	if ColumnTodo.Next() != ColumnInProgress {
		t.Errorf("expected todo -> in_progress, got %s", ColumnTodo.Next())
	}
	if ColumnCompleted.Next() != ColumnCompleted {
		t.Errorf("expected completed to stay put, got %s", ColumnCompleted.Next())
	}
	if ColumnTodo.Prev() != ColumnTodo {
		t.Errorf("expected todo to stay put, got %s", ColumnTodo.Prev())
	}
	if ColumnReady.Prev() != ColumnRevisions {
		t.Errorf("expected ready -> revisions, got %s", ColumnReady.Prev())
	}
}

func TestClientPatchApply(t *testing.T) {
	original := Client{
		ID:        "1",
		Name:      "Sarah Johnson",
		Email:     "sarah@techcorp.com",
		DealStage: StageLead,
		Revenue:   100,
	}

	patched := ClientPatch{DealStage: Ptr(StageWon), Revenue: Ptr(5200.0)}.Apply(original)

	if patched.DealStage != StageWon {
		t.Errorf("expected stage won, got %s", patched.DealStage)
	}
	if patched.Revenue != 5200 {
		t.Errorf("expected revenue 5200, got %v", patched.Revenue)
	}
	if patched.Name != original.Name || patched.Email != original.Email || patched.ID != original.ID {
		t.Error("fields absent from the patch must be unchanged")
	}
	if original.DealStage != StageLead {
		t.Error("Apply must not modify the original record")
	}
}

func TestProjectPatchApplyEmpty(t *testing.T) {
	deadline := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	p := Project{ID: "1", Title: "Logo Design", Deadline: deadline, Column: ColumnWaiting}

	if got := (ProjectPatch{}).Apply(p); got != p {
		t.Errorf("empty patch changed the record: %+v", got)
	}
}

func TestDeveloperPatchAvatarCopied(t *testing.T) {
	avatar := 2
	patch := DeveloperPatch{Avatar: &avatar}
	d := patch.Apply(Developer{ID: "1"})

	avatar = 0
	if d.Avatar == nil || *d.Avatar != 2 {
		t.Errorf("expected avatar 2 to be copied, got %v", d.Avatar)
	}
}

func TestUserProfilePatchApply(t *testing.T) {
	profile := UserProfilePatch{Name: Ptr("Ada")}.Apply(UserProfile{Name: "Freelancer", AvatarIndex: 1})

	if profile.Name != "Ada" || profile.AvatarIndex != 1 {
		t.Errorf("unexpected profile %+v", profile)
	}
}
