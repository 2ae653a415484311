// ABOUTME: Tests for the in-memory domain store
// ABOUTME: Covers seeding, add/update/delete semantics, snapshots and subscriptions
package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/harperreed/gigdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	n := 0
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	}
	return New(append(base, opts...)...)
}

func TestNewSeedsCollections(t *testing.T) {
	s := newTestStore(t)
	snap := s.Snapshot()

	assert.Len(t, snap.Bids, 5)
	assert.Len(t, snap.Clients, 5)
	assert.Len(t, snap.Projects, 6)
	assert.Len(t, snap.Developers, 4)
	assert.Len(t, snap.Snippets, 8)
	assert.Len(t, snap.Templates, 5)
	assert.Empty(t, snap.Expenses)
	assert.Equal(t, models.UserProfile{Name: "Freelancer", AvatarIndex: 0}, snap.UserProfile)

	assert.Equal(t, fixedNow, snap.Bids[0].Date)
	assert.Equal(t, fixedNow.Add(-5*day), snap.Bids[4].Date)
	assert.Equal(t, fixedNow.Add(-2*day), snap.Projects[5].Deadline)
	assert.Equal(t, models.ColumnInProgress, snap.Projects[0].Column)
	require.NotNil(t, snap.Developers[1].Avatar)
	assert.Equal(t, 1, *snap.Developers[1].Avatar)
	assert.Nil(t, snap.Clients[0].Avatar)
}

func TestSeedEnumerationsAreValid(t *testing.T) {
	snap := newTestStore(t).Snapshot()

	for _, c := range snap.Clients {
		assert.True(t, c.DealStage.Valid(), "client %s stage %s", c.ID, c.DealStage)
	}
	for _, p := range snap.Projects {
		assert.True(t, p.Column.Valid(), "project %s column %s", p.ID, p.Column)
	}
	for _, d := range snap.Developers {
		assert.True(t, d.Availability.Valid(), "developer %s availability %s", d.ID, d.Availability)
	}
	for _, sn := range snap.Snippets {
		assert.True(t, sn.Category.Valid(), "snippet %s category %s", sn.ID, sn.Category)
	}
	for _, tpl := range snap.Templates {
		assert.True(t, tpl.Category.Valid(), "template %s category %s", tpl.ID, tpl.Category)
	}
}

func TestParseSeedRejectsMalformedYAML(t *testing.T) {
	_, err := parseSeed([]byte("bids: {not: [a list"), fixedNow)
	assert.Error(t, err)
}

func TestWithoutSeed(t *testing.T) {
	snap := newTestStore(t, WithoutSeed()).Snapshot()

	assert.Empty(t, snap.Bids)
	assert.Empty(t, snap.Clients)
	assert.Equal(t, "Freelancer", snap.UserProfile.Name)
}

func TestWithSnapshotRestores(t *testing.T) {
	restored := Snapshot{
		Version: 7,
		Clients: []models.Client{{ID: "x", Name: "Restored", DealStage: models.StageLead}},
	}
	s := newTestStore(t, WithSnapshot(restored))

	if diff := cmp.Diff(restored, s.Snapshot()); diff != "" {
		t.Errorf("restored snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestAddAppendsWithFreshID(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	created := s.AddClient(models.Client{ID: "1", Name: "New Client", DealStage: models.StageLead})
	after := s.Snapshot()

	require.Len(t, after.Clients, len(before.Clients)+1)
	assert.Equal(t, "gen-1", created.ID, "supplied id must be replaced")
	assert.Equal(t, created, after.Clients[len(after.Clients)-1])

	if diff := cmp.Diff(before.Clients, after.Clients[:len(before.Clients)]); diff != "" {
		t.Errorf("existing clients changed (-before +after):\n%s", diff)
	}

	ids := map[string]bool{}
	for _, c := range after.Clients {
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
	}
}

func TestAddSkipsCollidingGeneratedIDs(t *testing.T) {
	ids := []string{"1", "2", "fresh"}
	s := newTestStore(t, WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	bid := s.AddBid(models.Bid{ClientName: "Acme", Amount: 100})

	assert.Equal(t, "fresh", bid.ID)
}

func TestAddDoesNotDeduplicate(t *testing.T) {
	s := newTestStore(t, WithoutSeed())

	s.AddSnippet(models.Snippet{Title: "Same", Content: "x", Category: models.SnippetIntros})
	s.AddSnippet(models.Snippet{Title: "Same", Content: "x", Category: models.SnippetIntros})

	assert.Len(t, s.Snapshot().Snippets, 2)
}

func TestAddAcceptsMalformedInput(t *testing.T) {
	s := newTestStore(t, WithoutSeed())

	bid := s.AddBid(models.Bid{ClientName: "", Amount: -50})

	assert.Equal(t, -50.0, s.Snapshot().Bids[0].Amount)
	assert.NotEmpty(t, bid.ID)
}

func TestUpdateChangesOnlyPatchedFields(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	ok := s.UpdateClient("3", models.ClientPatch{DealStage: models.Ptr(models.StageWon), Revenue: models.Ptr(900.0)})
	require.True(t, ok)
	after := s.Snapshot()

	require.Len(t, after.Clients, len(before.Clients))
	want := before.Clients[2]
	want.DealStage = models.StageWon
	want.Revenue = 900
	assert.Equal(t, want, after.Clients[2], "record keeps its position and other fields")

	for i, c := range before.Clients {
		if i == 2 {
			continue
		}
		assert.Equal(t, c, after.Clients[i])
	}
	assert.Equal(t, models.StageProposalSent, before.Clients[2].DealStage, "previous snapshot must not change")
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	assert.False(t, s.UpdateDeveloper("missing", models.DeveloperPatch{Name: models.Ptr("Nobody")}))
	assert.False(t, s.UpdateBid("missing", models.BidPatch{Won: models.Ptr(true)}))
	assert.False(t, s.UpdateExpense("missing", models.ExpensePatch{Amount: models.Ptr(1.0)}))

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("snapshot changed on unknown id (-before +after):\n%s", diff)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	require.True(t, s.DeleteProject("2"))
	after := s.Snapshot()

	require.Len(t, after.Projects, len(before.Projects)-1)
	for _, p := range after.Projects {
		assert.NotEqual(t, "2", p.ID)
	}
	want := append(append([]models.Project{}, before.Projects[:1]...), before.Projects[2:]...)
	if diff := cmp.Diff(want, after.Projects); diff != "" {
		t.Errorf("remaining projects mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteTwiceIsNoop(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.DeleteSnippet("4"))
	afterFirst := s.Snapshot()

	assert.False(t, s.DeleteSnippet("4"))
	assert.Equal(t, afterFirst, s.Snapshot())
}

func TestDeleteClientDoesNotCascade(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.DeleteClient("1"))

	project, ok := s.Project("1")
	require.True(t, ok)
	assert.Equal(t, "1", project.ClientID)
	assert.Equal(t, "Sarah Johnson", project.ClientName)
	_, ok = s.Client("1")
	assert.False(t, ok)
}

func TestMoveProject(t *testing.T) {
	s := newTestStore(t)
	before, _ := s.Project("3")

	require.True(t, s.MoveProject("3", models.ColumnReady))
	after, _ := s.Project("3")

	before.Column = models.ColumnReady
	assert.Equal(t, before, after)
	assert.False(t, s.MoveProject("missing", models.ColumnReady))
}

func TestExpenseLifecycle(t *testing.T) {
	s := newTestStore(t)

	e := s.AddExpense(models.Expense{Amount: 49, Category: models.ExpenseSoftware, Description: "Figma", ProjectID: "1", ProjectTitle: "Website Redesign"})
	require.Len(t, s.Snapshot().Expenses, 1)

	require.True(t, s.UpdateExpense(e.ID, models.ExpensePatch{Amount: models.Ptr(59.0)}))
	assert.Equal(t, 59.0, s.Snapshot().Expenses[0].Amount)

	require.True(t, s.DeleteExpense(e.ID))
	assert.Empty(t, s.Snapshot().Expenses)
}

func TestUpdateUserProfileMerges(t *testing.T) {
	s := newTestStore(t)

	profile := s.UpdateUserProfile(models.UserProfilePatch{AvatarIndex: models.Ptr(2)})

	assert.Equal(t, models.UserProfile{Name: "Freelancer", AvatarIndex: 2}, profile)
	assert.Equal(t, profile, s.Snapshot().UserProfile)
}

func TestTemplateLookup(t *testing.T) {
	s := newTestStore(t)

	tpl, ok := s.Template(models.TemplateBPO)
	require.True(t, ok)
	assert.Equal(t, "Business Process Outsourcing", tpl.Name)

	_, ok = s.Template("legal")
	assert.False(t, ok)
}

func TestMutationReplacesOnlyTouchedCollection(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	s.AddBid(models.Bid{ClientName: "Acme", Amount: 10})
	after := s.Snapshot()

	assert.Equal(t, []Collection{CollectionBids}, after.Changed(before))
	assert.Equal(t, before.Version+1, after.Version)
	assert.Len(t, before.Bids, 5, "published snapshot must never grow")
	assert.Same(t, &before.Clients[0], &after.Clients[0], "untouched collections share their backing array")
}

func TestSubscribeReceivesEachMutation(t *testing.T) {
	s := newTestStore(t)

	var calls []Collection
	unsubscribe := s.Subscribe(func(prev, next Snapshot) {
		calls = append(calls, next.Changed(prev)...)
		assert.Equal(t, prev.Version+1, next.Version)
	})

	s.AddDeveloper(models.Developer{Name: "Sam", Role: "Backend", Availability: models.AvailabilityAvailable})
	s.UpdateClient("missing", models.ClientPatch{Name: models.Ptr("x")})
	s.MoveProject("1", models.ColumnCompleted)

	assert.Equal(t, []Collection{CollectionDevelopers, CollectionProjects}, calls)

	unsubscribe()
	unsubscribe()
	s.DeleteBid("1")
	assert.Len(t, calls, 2, "no notifications after unsubscribe")
}

func TestSubscriberCanReadStore(t *testing.T) {
	s := newTestStore(t)

	var seen int
	s.Subscribe(func(_, next Snapshot) {
		seen = len(s.Snapshot().Clients)
		assert.Equal(t, len(next.Clients), seen)
	})

	s.AddClient(models.Client{Name: "Reader", DealStage: models.StageLead})
	assert.Equal(t, 6, seen)
}

func TestConcurrentAdds(t *testing.T) {
	s := New(WithoutSeed())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddBid(models.Bid{ClientName: fmt.Sprintf("client-%d", i), Amount: float64(i)})
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Bids, 50)
	assert.Equal(t, uint64(50), snap.Revisions.Bids)
}

func TestLookupsByID(t *testing.T) {
	s := newTestStore(t)

	c, ok := s.Client("1")
	require.True(t, ok)
	assert.Equal(t, "Sarah Johnson", c.Name)

	e := s.AddExpense(models.Expense{Amount: 12, Category: models.ExpenseTools, Description: "Domain"})
	got, ok := s.Expense(e.ID)
	require.True(t, ok)
	assert.Equal(t, e, got)

	require.True(t, s.DeleteExpense(e.ID))
	_, ok = s.Expense(e.ID)
	assert.False(t, ok)
}
