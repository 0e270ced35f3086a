package casefile

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) (*CaseFileScreen, *game.Store) {
	t.Helper()
	store := game.New(game.NewState())
	s := New(store, cases.CaseID(1))
	if s.notFound {
		t.Fatal("case-01 should exist in the embedded catalog")
	}
	return s, store
}

// correctIndex finds the position of the correct option.
func correctIndex(t *testing.T, opts []cases.Option) int {
	t.Helper()
	for i, o := range opts {
		if o.Correct {
			return i
		}
	}
	t.Fatal("question has no correct option")
	return -1
}

// answer drives the active question to the option at index and submits.
func answer(s *CaseFileScreen, index int) {
	for i := 0; i < index; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(tea.KeyEnter))
}

func TestFlowBriefToBoard(t *testing.T) {
	s, _ := testScreen(t)
	if s.step != stepBrief {
		t.Fatalf("initial step = %d, want brief", s.step)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.step != stepBoard {
		t.Errorf("step after enter = %d, want board", s.step)
	}

	// Node selection moves on the board.
	s.Update(specialKey(tea.KeyRight))
	if s.diagram.Selected != 1 {
		t.Errorf("selected node = %d, want 1", s.diagram.Selected)
	}
}

func TestSolveCase(t *testing.T) {
	s, store := testScreen(t)
	c, err := cases.GetCase(i18n.DefaultLocale, s.caseID)
	if err != nil {
		t.Fatal(err)
	}

	s.Update(specialKey(tea.KeyEnter)) // brief -> board
	s.Update(specialKey(tea.KeyEnter)) // board -> root cause question
	if s.step != stepQuestion || s.asking != game.PhaseRootCause {
		t.Fatalf("step=%d asking=%d, want root-cause question", s.step, s.asking)
	}

	answer(s, correctIndex(t, c.Diagnosis.RootCause.Options))
	if s.step != stepFeedback || !s.verdict.Correct {
		t.Fatalf("step=%d correct=%v, want correct feedback", s.step, s.verdict.Correct)
	}

	s.Update(keyPress(' ')) // feedback -> fix question
	if s.step != stepQuestion || s.asking != game.PhaseFix {
		t.Fatalf("step=%d asking=%d, want fix question", s.step, s.asking)
	}

	answer(s, correctIndex(t, c.Diagnosis.Fix.Options))
	s.Update(keyPress(' ')) // feedback -> solved
	if s.step != stepSolved {
		t.Fatalf("step = %d, want solved", s.step)
	}

	st := store.State()
	if !st.Progress[s.caseID].Completed {
		t.Error("case not recorded as completed")
	}
	if st.CompletedCases != 1 {
		t.Errorf("completedCases = %d, want 1", st.CompletedCases)
	}
	if !store.IsCaseUnlocked(2) {
		t.Error("case 2 should be unlocked after solving case 1")
	}
}

func TestWrongAnswerReturnsToQuestion(t *testing.T) {
	s, store := testScreen(t)
	c, err := cases.GetCase(i18n.DefaultLocale, s.caseID)
	if err != nil {
		t.Fatal(err)
	}

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	wrong := (correctIndex(t, c.Diagnosis.RootCause.Options) + 1) % len(c.Diagnosis.RootCause.Options)
	answer(s, wrong)
	if s.step != stepFeedback || s.verdict.Correct {
		t.Fatalf("step=%d correct=%v, want incorrect feedback", s.step, s.verdict.Correct)
	}
	if s.verdict.Feedback == "" {
		t.Error("incorrect answer should carry the option's feedback text")
	}

	s.Update(keyPress(' '))
	if s.step != stepQuestion {
		t.Errorf("step after wrong-answer feedback = %d, want question again", s.step)
	}

	p := store.State().Progress[s.caseID]
	if p.RootCauseAttempts != 1 || p.RootCauseFound {
		t.Errorf("attempts=%d found=%v, want 1/false", p.RootCauseAttempts, p.RootCauseFound)
	}
}

func TestTabReturnsToBoard(t *testing.T) {
	s, _ := testScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyTab))
	if s.step != stepBoard {
		t.Errorf("step after tab = %d, want board", s.step)
	}
}

func TestNextCaseReplacesScreen(t *testing.T) {
	s, _ := testScreen(t)
	c, err := cases.GetCase(i18n.DefaultLocale, s.caseID)
	if err != nil {
		t.Fatal(err)
	}

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	answer(s, correctIndex(t, c.Diagnosis.RootCause.Options))
	s.Update(keyPress(' '))
	answer(s, correctIndex(t, c.Diagnosis.Fix.Options))
	s.Update(keyPress(' '))

	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a navigation command for the next case")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", cmd())
	}
	next, ok := msg.Screen.(*CaseFileScreen)
	if !ok || next.caseID != cases.CaseID(2) {
		t.Errorf("replacement screen targets %v, want case-02", msg.Screen)
	}
}

func TestUnknownCaseShowsNotFound(t *testing.T) {
	store := game.New(game.NewState())
	s := New(store, "case-99")
	if !s.notFound {
		t.Fatal("expected not-found state for case-99")
	}

	view := s.View(80, 24)
	if view == "" {
		t.Error("not-found view should render a notice")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on not-found should navigate back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("cmd produced %T, want PopScreenMsg", cmd())
	}
}
