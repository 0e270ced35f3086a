package store

import (
	"context"
	"testing"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/game"
)

func openTestAdapter(t *testing.T) (*Adapter, *Store) {
	t.Helper()
	s := openTestStore(t)
	a, err := NewAdapter(s)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	return a, s
}

func TestAdapterLoadEmptyReturnsFallback(t *testing.T) {
	a, _ := openTestAdapter(t)
	fallback := game.NewState()

	got := a.Load(context.Background(), fallback)
	if got.ProfileID != fallback.ProfileID {
		t.Errorf("load on empty store returned profile %q, want fallback %q", got.ProfileID, fallback.ProfileID)
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	a, _ := openTestAdapter(t)
	ctx := context.Background()

	st := testState(3)
	st.CurrentCaseID = cases.CaseID(4)
	st.GuideOpen = true
	a.Save(ctx, st)

	got := a.Load(ctx, game.NewState())
	if got.ProfileID != st.ProfileID {
		t.Errorf("profile id = %q, want %q", got.ProfileID, st.ProfileID)
	}
	if got.CurrentCaseID != "case-04" {
		t.Errorf("currentCaseId = %q, want case-04", got.CurrentCaseID)
	}
	if !got.GuideOpen {
		t.Error("guideOpen lost in round trip")
	}
	if got.CompletedCases != 3 || len(got.Progress) != 3 {
		t.Errorf("progress lost: completed=%d entries=%d, want 3/3", got.CompletedCases, len(got.Progress))
	}
	p := got.Progress[cases.CaseID(1)]
	if p == nil || !p.Completed || !p.RootCauseFound || !p.FixFound {
		t.Errorf("case-01 progress corrupted: %+v", p)
	}
}

func TestAdapterLoadReturnsNewestSave(t *testing.T) {
	a, _ := openTestAdapter(t)
	ctx := context.Background()

	first := testState(1)
	a.Save(ctx, first)
	second := first.Clone()
	second.Progress[cases.CaseID(2)] = &game.CaseProgress{
		CaseID: cases.CaseID(2), Completed: true, RootCauseFound: true, FixFound: true,
	}
	second.CompletedCases = 2
	a.Save(ctx, second)

	got := a.Load(ctx, game.NewState())
	if got.CompletedCases != 2 {
		t.Errorf("loaded completedCases = %d, want the newest save's 2", got.CompletedCases)
	}
}

func TestAdapterSavePrunesHistory(t *testing.T) {
	a, s := openTestAdapter(t)
	ctx := context.Background()

	for i := 0; i < snapshotsToKeep+5; i++ {
		a.Save(ctx, testState(0))
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count > snapshotsToKeep {
		t.Errorf("snapshot count = %d, want at most %d", count, snapshotsToKeep)
	}
}

func TestAdapterLoadSkipsCorruptData(t *testing.T) {
	a, s := openTestAdapter(t)
	ctx := context.Background()

	// A snapshot whose progress field has the wrong JSON shape.
	_, err := s.Client().Snapshot.Create().
		SetSequence(1).
		SetData(map[string]any{"profileId": "p-1", "progress": "not-a-map"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert corrupt snapshot: %v", err)
	}

	fallback := game.NewState()
	got := a.Load(ctx, fallback)
	if got.ProfileID != fallback.ProfileID {
		t.Errorf("corrupt snapshot should yield fallback, got profile %q", got.ProfileID)
	}
}
