package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rafaelqm/dsdetective/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It does not know which
// option is correct: the owner checks the submitted selection and
// reports the verdict back through Resolve, which drives the
// post-submit coloring.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int

	Submitted   bool
	ChosenIndex int
	correct     bool
	resolved    bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:    question,
		Options:     options,
		Selected:    0,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Resolve records the verdict for the submitted selection.
func (m MultiChoice) Resolve(correct bool) MultiChoice {
	m.correct = correct
	m.resolved = true
	return m
}

// Reset clears the submission so the question can be answered again.
// The cursor stays where it was.
func (m MultiChoice) Reset() MultiChoice {
	m.Submitted = false
	m.ChosenIndex = -1
	m.correct = false
	m.resolved = false
	return m
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.resolved && i == m.ChosenIndex && m.correct:
			s += theme.Correct.Render(line) + "\n"
		case m.resolved && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
