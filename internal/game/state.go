package game

import (
	"github.com/google/uuid"

	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/rank"
)

// CaseProgress tracks one case's progress, created lazily on the first
// answer submission. Counters only grow and found-flags are sticky; the
// only reset path is a full progress reset.
type CaseProgress struct {
	CaseID            string `json:"caseId"`
	Completed         bool   `json:"completed"`
	RootCauseAttempts int    `json:"rootCauseAttempts"`
	FixAttempts       int    `json:"fixAttempts"`
	RootCauseFound    bool   `json:"rootCauseFound"`
	FixFound          bool   `json:"fixFound"`
}

// State is the full persisted game state. The Store owns it exclusively;
// readers get snapshots and must not mutate them.
//
// CompletedCases and Rank are derivable from Progress. They are persisted
// alongside it and recomputed together on every completing mutation, and
// renormalized from Progress when a Store is constructed, so a stale
// persisted copy self-heals on load.
type State struct {
	ProfileID      string                   `json:"profileId"`
	CurrentCaseID  string                   `json:"currentCaseId"`
	Progress       map[string]*CaseProgress `json:"progress"`
	Rank           rank.Rank                `json:"rank"`
	CompletedCases int                      `json:"completedCases"`
	GuideOpen      bool                     `json:"guideOpen"`
	Locale         i18n.Locale              `json:"locale"`
}

// NewState returns a fresh default state with a generated profile id.
func NewState() State {
	return State{
		ProfileID: uuid.NewString(),
		Progress:  make(map[string]*CaseProgress),
		Rank:      rank.Floor(),
		Locale:    i18n.DefaultLocale,
	}
}

// Clone returns a deep copy safe to hand to readers and listeners.
func (s State) Clone() State {
	out := s
	out.Progress = make(map[string]*CaseProgress, len(s.Progress))
	for id, p := range s.Progress {
		cp := *p
		out.Progress[id] = &cp
	}
	return out
}

// Phase is a case's derived position in the solving flow. It is never
// stored: it is computed from the sticky found-flags.
type Phase int

const (
	PhaseRootCause Phase = iota // root-cause question open
	PhaseFix                    // root cause found, fix question open
	PhaseComplete               // fix found, case closed
)

// PhaseOf derives the active phase for a case's progress record.
// A nil record means the case is untouched and starts at the root cause.
func PhaseOf(p *CaseProgress) Phase {
	switch {
	case p == nil:
		return PhaseRootCause
	case p.Completed:
		return PhaseComplete
	case p.RootCauseFound:
		return PhaseFix
	default:
		return PhaseRootCause
	}
}
