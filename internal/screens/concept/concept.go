// Package concept shows the explanatory write-up linked from a solved
// case, scrollable for longer texts.
package concept

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/screen"
	"github.com/rafaelqm/dsdetective/internal/ui/layout"
	"github.com/rafaelqm/dsdetective/internal/ui/theme"
)

// ConceptScreen renders one concept in a scrollable viewport.
type ConceptScreen struct {
	store   *game.Store
	concept cases.Concept
	vp      viewport.Model
	ready   bool
}

var _ screen.Screen = (*ConceptScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptScreen)(nil)

// New creates a concept screen.
func New(store *game.Store, c cases.Concept) *ConceptScreen {
	return &ConceptScreen{store: store, concept: c}
}

func (s *ConceptScreen) Init() tea.Cmd {
	return nil
}

func (s *ConceptScreen) Title() string {
	return s.concept.Title
}

func (s *ConceptScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConceptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.ready {
		return s, nil
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ConceptScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	vh := height - 2
	if vh < 4 {
		vh = 4
	}

	if !s.ready {
		s.vp = viewport.New(viewport.WithWidth(cw), viewport.WithHeight(vh))
		s.vp.SetContent(s.renderContent(cw))
		s.ready = true
	} else {
		s.vp.SetWidth(cw)
		s.vp.SetHeight(vh)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.vp.View())
}

func (s *ConceptScreen) renderContent(width int) string {
	locale := s.store.State().Locale
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.concept.Title) + "\n")
	b.WriteString(theme.Subtitle.Render(s.concept.Summary) + "\n\n")

	for _, para := range s.concept.Explanation {
		b.WriteString(wrap.Foreground(theme.Text).Render(para) + "\n\n")
	}

	if len(s.concept.KeyTerms) > 0 {
		b.WriteString(theme.Selected.Render(i18n.T(locale, "concept.keyTerms")) + "\n\n")
		for _, kt := range s.concept.KeyTerms {
			b.WriteString(theme.Body.Render("  "+kt.Term) + "\n")
			b.WriteString(wrap.Foreground(theme.TextDim).Render("    "+kt.Definition) + "\n\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
