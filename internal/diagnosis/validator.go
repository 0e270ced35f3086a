// Package diagnosis checks a player's selected option against a
// question's option set. It knows nothing about game state.
package diagnosis

import "github.com/rafaelqm/dsdetective/internal/cases"

// InvalidSelectionFeedback is returned when the selected id matches no
// option. The UI normally prevents this; the check stays total anyway.
const InvalidSelectionFeedback = "Invalid selection."

// Verdict is the outcome of checking one selected option.
type Verdict struct {
	Correct  bool
	Feedback string
}

// CheckAnswer returns the matched option's correctness and feedback.
// An unknown selectedID yields an incorrect verdict with generic
// feedback rather than an error. Pure and deterministic.
func CheckAnswer(options []cases.Option, selectedID string) Verdict {
	for _, o := range options {
		if o.ID == selectedID {
			return Verdict{Correct: o.Correct, Feedback: o.Feedback}
		}
	}
	return Verdict{Correct: false, Feedback: InvalidSelectionFeedback}
}
