// Package game holds the player's state and the rules for mutating it.
// All mutations go through the Store, which recomputes derived fields
// and notifies subscribers with immutable snapshots. Persistence hangs
// off the subscription at the composition boundary; the mutators here
// never touch disk.
package game

import (
	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/rank"
)

// Listener receives a snapshot after every state change.
type Listener func(State)

// Store is the single writer of game state.
//
// Not safe for concurrent use: the TUI event loop is the only caller.
type Store struct {
	state     State
	listeners []Listener
}

// New builds a Store around an initial state, usually one loaded from
// disk. It normalizes whatever it gets: a nil progress map is replaced,
// an unrecognized locale drops to the default, and the derived
// CompletedCases and Rank are recomputed from progress so corrupt or
// hand-edited snapshots self-heal.
func New(initial State) *Store {
	if initial.Progress == nil {
		initial.Progress = make(map[string]*CaseProgress)
	}
	initial.Locale = i18n.Normalize(initial.Locale)
	s := &Store{state: initial}
	s.recompute()
	return s
}

// Subscribe registers a listener for state changes. Listeners run
// synchronously in registration order and receive deep copies.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	return s.state.Clone()
}

// ProgressFor returns a copy of the progress record for a case, or nil
// if the case is untouched.
func (s *Store) ProgressFor(caseID string) *CaseProgress {
	p, ok := s.state.Progress[caseID]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// Phase returns the derived solving phase for a case.
func (s *Store) Phase(caseID string) Phase {
	return PhaseOf(s.state.Progress[caseID])
}

// SubmitRootCause records a root-cause attempt. The attempt counter
// always increments, even after the answer was already found; the found
// flag is sticky and never clears.
func (s *Store) SubmitRootCause(caseID string, correct bool) {
	p := s.ensure(caseID)
	p.RootCauseAttempts++
	if correct {
		p.RootCauseFound = true
	}
	s.notify()
}

// SubmitFix records a fix attempt. A correct fix completes the case in
// the same update, which bumps the completed count and may promote the
// rank. Finding the fix always implies completion; the flow of the
// screens is what keeps the fix question behind the root cause.
func (s *Store) SubmitFix(caseID string, correct bool) {
	p := s.ensure(caseID)
	p.FixAttempts++
	if correct {
		p.FixFound = true
		p.Completed = true
	}
	s.recompute()
	s.notify()
}

// IsCaseUnlocked reports whether a case is playable. The first case is
// always open; every other case unlocks when its predecessor completes.
func (s *Store) IsCaseUnlocked(number int) bool {
	if number <= 1 {
		return true
	}
	prev, ok := s.state.Progress[cases.CaseID(number-1)]
	return ok && prev.Completed
}

// SetCurrentCase records which case the player has open. Empty means
// none (the home screen).
func (s *Store) SetCurrentCase(caseID string) {
	s.state.CurrentCaseID = caseID
	s.notify()
}

// ToggleGuide flips the field-guide panel.
func (s *Store) ToggleGuide() {
	s.state.GuideOpen = !s.state.GuideOpen
	s.notify()
}

// SetLocale switches the UI language. Unknown locales normalize to the
// default rather than failing.
func (s *Store) SetLocale(locale i18n.Locale) {
	s.state.Locale = i18n.Normalize(locale)
	s.notify()
}

// ResetProgress wipes all case progress and settings back to a fresh
// state. The profile id survives so the player's identity is stable
// across resets.
func (s *Store) ResetProgress() {
	fresh := NewState()
	fresh.ProfileID = s.state.ProfileID
	s.state = fresh
	s.notify()
}

func (s *Store) ensure(caseID string) *CaseProgress {
	p, ok := s.state.Progress[caseID]
	if !ok {
		p = &CaseProgress{CaseID: caseID}
		s.state.Progress[caseID] = p
	}
	return p
}

// recompute rebuilds CompletedCases and Rank from progress. The two are
// always updated together so a snapshot can never carry a rank that
// disagrees with its completion count.
func (s *Store) recompute() {
	completed := 0
	for _, p := range s.state.Progress {
		if p.Completed {
			completed++
		}
	}
	s.state.CompletedCases = completed
	s.state.Rank = rank.Resolve(completed, rank.Ranks())
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.state.Clone())
	}
}
