package game

import (
	"testing"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/rank"
)

func newTestStore() *Store {
	return New(NewState())
}

// solve drives a case through the happy path: one correct root cause,
// one correct fix.
func solve(s *Store, number int) {
	id := cases.CaseID(number)
	s.SubmitRootCause(id, true)
	s.SubmitFix(id, true)
}

func TestNewStateDefaults(t *testing.T) {
	st := NewState()
	if st.ProfileID == "" {
		t.Error("fresh state has empty profile id")
	}
	if st.Progress == nil {
		t.Error("fresh state has nil progress map")
	}
	if st.CompletedCases != 0 {
		t.Errorf("fresh state completedCases = %d, want 0", st.CompletedCases)
	}
	if st.Rank.ID != rank.Floor().ID {
		t.Errorf("fresh state rank = %q, want floor rank %q", st.Rank.ID, rank.Floor().ID)
	}
	if st.Locale != i18n.DefaultLocale {
		t.Errorf("fresh state locale = %q, want %q", st.Locale, i18n.DefaultLocale)
	}
}

func TestSubmitRootCause(t *testing.T) {
	s := newTestStore()
	id := cases.CaseID(1)

	s.SubmitRootCause(id, false)
	p := s.ProgressFor(id)
	if p == nil {
		t.Fatal("no progress record after first submission")
	}
	if p.RootCauseAttempts != 1 || p.RootCauseFound {
		t.Errorf("after wrong attempt: attempts=%d found=%v, want 1/false", p.RootCauseAttempts, p.RootCauseFound)
	}

	s.SubmitRootCause(id, true)
	p = s.ProgressFor(id)
	if p.RootCauseAttempts != 2 || !p.RootCauseFound {
		t.Errorf("after correct attempt: attempts=%d found=%v, want 2/true", p.RootCauseAttempts, p.RootCauseFound)
	}

	// Flag is sticky, counter keeps moving.
	s.SubmitRootCause(id, false)
	p = s.ProgressFor(id)
	if p.RootCauseAttempts != 3 || !p.RootCauseFound {
		t.Errorf("after post-found attempt: attempts=%d found=%v, want 3/true", p.RootCauseAttempts, p.RootCauseFound)
	}
}

func TestSubmitFixCompletesCase(t *testing.T) {
	s := newTestStore()
	id := cases.CaseID(1)

	// A wrong fix only counts the attempt.
	s.SubmitFix(id, false)
	p := s.ProgressFor(id)
	if p.Completed || p.FixFound || p.FixAttempts != 1 {
		t.Errorf("after wrong fix: %+v, want one attempt and nothing found", p)
	}

	// A correct fix sets fixFound and completed in the same update; a
	// found fix always means the case is closed.
	s.SubmitFix(id, true)
	p = s.ProgressFor(id)
	if !p.FixFound || !p.Completed {
		t.Errorf("after correct fix: fixFound=%v completed=%v, want both true", p.FixFound, p.Completed)
	}
	if got := s.State().CompletedCases; got != 1 {
		t.Errorf("completedCases = %d, want 1", got)
	}
}

func TestCompletionIsIdempotent(t *testing.T) {
	s := newTestStore()
	solve(s, 1)
	if got := s.State().CompletedCases; got != 1 {
		t.Fatalf("completedCases = %d, want 1", got)
	}

	// Re-solving the same case changes counters but not the completion count.
	solve(s, 1)
	st := s.State()
	if st.CompletedCases != 1 {
		t.Errorf("completedCases after re-solve = %d, want 1", st.CompletedCases)
	}
	p := st.Progress[cases.CaseID(1)]
	if p.RootCauseAttempts != 2 || p.FixAttempts != 2 {
		t.Errorf("counters after re-solve = %d/%d, want 2/2", p.RootCauseAttempts, p.FixAttempts)
	}
}

func TestRankPromotion(t *testing.T) {
	s := newTestStore()
	if got := s.State().Rank.ID; got != "rookie" {
		t.Fatalf("initial rank = %q, want rookie", got)
	}

	solve(s, 1)
	if got := s.State().Rank.ID; got != "cadet" {
		t.Errorf("rank after 1 case = %q, want cadet", got)
	}

	for n := 2; n <= 5; n++ {
		solve(s, n)
	}
	if got := s.State().Rank.ID; got != "officer" {
		t.Errorf("rank after 5 cases = %q, want officer", got)
	}
}

func TestIsCaseUnlocked(t *testing.T) {
	s := newTestStore()
	if !s.IsCaseUnlocked(1) {
		t.Error("case 1 should be unlocked from the start")
	}
	if s.IsCaseUnlocked(2) {
		t.Error("case 2 should be locked with no progress")
	}

	// Partial progress on case 1 is not enough.
	s.SubmitRootCause(cases.CaseID(1), true)
	if s.IsCaseUnlocked(2) {
		t.Error("case 2 should stay locked until case 1 completes")
	}

	s.SubmitFix(cases.CaseID(1), true)
	if !s.IsCaseUnlocked(2) {
		t.Error("case 2 should unlock after case 1 completes")
	}
	if s.IsCaseUnlocked(3) {
		t.Error("case 3 should stay locked; only the direct predecessor counts")
	}
}

func TestSetCurrentCaseAndToggleGuide(t *testing.T) {
	s := newTestStore()
	s.SetCurrentCase(cases.CaseID(2))
	if got := s.State().CurrentCaseID; got != "case-02" {
		t.Errorf("currentCaseId = %q, want case-02", got)
	}
	s.SetCurrentCase("")
	if got := s.State().CurrentCaseID; got != "" {
		t.Errorf("currentCaseId = %q, want empty", got)
	}

	s.ToggleGuide()
	if !s.State().GuideOpen {
		t.Error("guide should be open after first toggle")
	}
	s.ToggleGuide()
	if s.State().GuideOpen {
		t.Error("guide should be closed after second toggle")
	}
}

func TestSetLocaleNormalizes(t *testing.T) {
	s := newTestStore()
	s.SetLocale(i18n.LocalePTBR)
	if got := s.State().Locale; got != i18n.LocalePTBR {
		t.Errorf("locale = %q, want pt-BR", got)
	}
	s.SetLocale(i18n.Locale("xx"))
	if got := s.State().Locale; got != i18n.DefaultLocale {
		t.Errorf("unknown locale stored as %q, want default %q", got, i18n.DefaultLocale)
	}
}

func TestResetProgressKeepsProfileID(t *testing.T) {
	s := newTestStore()
	profile := s.State().ProfileID
	solve(s, 1)
	s.SetLocale(i18n.LocalePTBR)
	s.ToggleGuide()

	s.ResetProgress()
	st := s.State()
	if st.ProfileID != profile {
		t.Errorf("profile id changed on reset: %q -> %q", profile, st.ProfileID)
	}
	if len(st.Progress) != 0 || st.CompletedCases != 0 {
		t.Errorf("progress survived reset: %+v", st)
	}
	if st.Rank.ID != rank.Floor().ID {
		t.Errorf("rank after reset = %q, want floor", st.Rank.ID)
	}
	if st.Locale != i18n.DefaultLocale || st.GuideOpen {
		t.Errorf("settings survived reset: locale=%q guideOpen=%v", st.Locale, st.GuideOpen)
	}
}

func TestNewNormalizesLoadedState(t *testing.T) {
	// A stale snapshot: two completed cases but derived fields from an
	// older session, a nil map slot, and an unrecognized locale.
	loaded := State{
		ProfileID: "p-1",
		Progress: map[string]*CaseProgress{
			cases.CaseID(1): {CaseID: cases.CaseID(1), Completed: true, RootCauseFound: true, FixFound: true},
			cases.CaseID(2): {CaseID: cases.CaseID(2), Completed: true, RootCauseFound: true, FixFound: true},
		},
		CompletedCases: 0,
		Locale:         i18n.Locale("de"),
	}
	s := New(loaded)
	st := s.State()
	if st.CompletedCases != 2 {
		t.Errorf("completedCases = %d, want recomputed 2", st.CompletedCases)
	}
	if st.Rank.ID != "cadet" {
		t.Errorf("rank = %q, want cadet for 2 completions", st.Rank.ID)
	}
	if st.Locale != i18n.DefaultLocale {
		t.Errorf("locale = %q, want normalized default", st.Locale)
	}

	s = New(State{})
	if s.State().Progress == nil {
		t.Error("nil progress map not replaced")
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s := newTestStore()
	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	s.SubmitRootCause(cases.CaseID(1), true)
	s.SubmitFix(cases.CaseID(1), true)

	if len(seen) != 2 {
		t.Fatalf("listener called %d times, want 2", len(seen))
	}
	if !seen[1].Progress[cases.CaseID(1)].Completed {
		t.Error("final snapshot missing completion")
	}

	// Snapshots are copies: mutating one must not leak into the store.
	seen[1].Progress[cases.CaseID(1)].Completed = false
	if !s.State().Progress[cases.CaseID(1)].Completed {
		t.Error("listener snapshot shares memory with store state")
	}
}
