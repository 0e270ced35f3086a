// Package casefile is the playing screen for one case: the brief, the
// system diagram investigation, the two diagnosis questions, and the
// closing view.
package casefile

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/diagnosis"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/router"
	"github.com/rafaelqm/dsdetective/internal/screen"
	"github.com/rafaelqm/dsdetective/internal/screens/concept"
	"github.com/rafaelqm/dsdetective/internal/ui/components"
	"github.com/rafaelqm/dsdetective/internal/ui/layout"
)

// step is the screen's position in the case flow. Unlike the stored
// found-flags it is purely presentational: replaying a solved case
// walks the same steps.
type step int

const (
	stepBrief step = iota
	stepBoard
	stepQuestion
	stepFeedback
	stepSolved
)

// CaseFileScreen drives one case from brief to close.
type CaseFileScreen struct {
	store  *game.Store
	caseID string

	c        cases.Case
	notFound bool

	step    step
	diagram components.Diagram
	mc      components.MultiChoice
	asking  game.Phase
	verdict diagnosis.Verdict
}

var _ screen.Screen = (*CaseFileScreen)(nil)
var _ screen.KeyHintProvider = (*CaseFileScreen)(nil)

// New opens a case file. An id that resolves to no case in the active
// locale yields a screen that only shows a not-found notice.
func New(store *game.Store, caseID string) *CaseFileScreen {
	s := &CaseFileScreen{store: store, caseID: caseID}

	c, err := cases.GetCase(store.State().Locale, caseID)
	if err != nil {
		s.notFound = true
		return s
	}
	s.c = c
	s.diagram = components.NewDiagram(c.Diagram)
	return s
}

func (s *CaseFileScreen) Init() tea.Cmd {
	return nil
}

func (s *CaseFileScreen) Title() string {
	if s.notFound {
		return s.caseID
	}
	return s.c.Title
}

func (s *CaseFileScreen) locale() i18n.Locale {
	return s.store.State().Locale
}

func (s *CaseFileScreen) KeyHints() []layout.KeyHint {
	locale := s.locale()
	switch s.step {
	case stepBoard:
		return []layout.KeyHint{
			{Key: "←→", Description: i18n.T(locale, "case.inspect")},
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case stepQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: i18n.T(locale, "case.diagram")},
			{Key: "Esc", Description: "Back"},
		}
	case stepFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case stepSolved:
		hints := []layout.KeyHint{
			{Key: "C", Description: i18n.T(locale, "case.concept")},
		}
		if _, ok := s.nextCaseID(); ok {
			hints = append(hints, layout.KeyHint{Key: "N", Description: i18n.T(locale, "case.next")})
		}
		return append(hints, layout.KeyHint{Key: "Enter", Description: "Back"})
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *CaseFileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.notFound {
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch s.step {
	case stepBrief:
		if kmsg.String() == "enter" {
			s.step = stepBoard
		}

	case stepBoard:
		if kmsg.String() == "enter" {
			s.openQuestion()
			break
		}
		s.diagram, _ = s.diagram.Update(msg)

	case stepQuestion:
		if kmsg.String() == "tab" {
			s.step = stepBoard
			break
		}
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			s.submit()
		}

	case stepFeedback:
		s.advance()

	case stepSolved:
		switch kmsg.String() {
		case "c":
			locale := s.locale()
			if con, err := cases.GetConcept(locale, s.c.ConceptID); err == nil {
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: concept.New(s.store, con)}
				}
			}
		case "n":
			if id, ok := s.nextCaseID(); ok {
				s.store.SetCurrentCase(id)
				next := New(s.store, id)
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			}
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// openQuestion moves from the board to whichever question the stored
// progress says is open. A fully solved case goes straight to the
// closing view.
func (s *CaseFileScreen) openQuestion() {
	locale := s.locale()
	switch s.store.Phase(s.caseID) {
	case game.PhaseComplete:
		s.step = stepSolved
	case game.PhaseFix:
		s.asking = game.PhaseFix
		s.mc = components.NewMultiChoice(
			i18n.T(locale, "case.fix")+"\n"+s.c.Diagnosis.Fix.Question,
			optionTexts(s.c.Diagnosis.Fix.Options))
		s.step = stepQuestion
	default:
		s.asking = game.PhaseRootCause
		s.mc = components.NewMultiChoice(
			i18n.T(locale, "case.rootCause")+"\n"+s.c.Diagnosis.RootCause.Question,
			optionTexts(s.c.Diagnosis.RootCause.Options))
		s.step = stepQuestion
	}
}

// submit checks the chosen option and records the attempt.
func (s *CaseFileScreen) submit() {
	opts := s.c.Diagnosis.RootCause.Options
	if s.asking == game.PhaseFix {
		opts = s.c.Diagnosis.Fix.Options
	}

	selectedID := ""
	if s.mc.ChosenIndex >= 0 && s.mc.ChosenIndex < len(opts) {
		selectedID = opts[s.mc.ChosenIndex].ID
	}
	s.verdict = diagnosis.CheckAnswer(opts, selectedID)

	if s.asking == game.PhaseFix {
		s.store.SubmitFix(s.caseID, s.verdict.Correct)
	} else {
		s.store.SubmitRootCause(s.caseID, s.verdict.Correct)
	}

	s.mc = s.mc.Resolve(s.verdict.Correct)
	s.step = stepFeedback
}

// advance leaves the feedback view: forward on a correct answer,
// back to the same question otherwise.
func (s *CaseFileScreen) advance() {
	if !s.verdict.Correct {
		s.mc = s.mc.Reset()
		s.step = stepQuestion
		return
	}
	if s.store.Phase(s.caseID) == game.PhaseComplete {
		s.step = stepSolved
		return
	}
	s.openQuestion()
}

// nextCaseID returns the case after this one, if it exists and is
// unlocked (it is, whenever this case just completed).
func (s *CaseFileScreen) nextCaseID() (string, bool) {
	next := s.c.Number + 1
	if next > cases.Count(s.locale()) || !s.store.IsCaseUnlocked(next) {
		return "", false
	}
	return cases.CaseID(next), true
}

func optionTexts(opts []cases.Option) []string {
	texts := make([]string, len(opts))
	for i, o := range opts {
		texts[i] = o.Text
	}
	return texts
}
