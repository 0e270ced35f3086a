package casefile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/ui/theme"
)

func (s *CaseFileScreen) View(width, height int) string {
	locale := s.locale()

	var content string
	switch {
	case s.notFound:
		content = theme.Incorrect.Render(i18n.T(locale, "case.notFound")) +
			"\n\n" + theme.Hint.Render(i18n.T(locale, "case.pressEnter"))
	case s.step == stepBrief:
		content = s.renderBrief(width)
	case s.step == stepBoard:
		content = s.renderBoard(width)
	case s.step == stepQuestion:
		content = s.renderQuestion(width)
	case s.step == stepFeedback:
		content = s.renderFeedback(width)
	case s.step == stepSolved:
		content = s.renderSolved(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *CaseFileScreen) renderBrief(width int) string {
	locale := s.locale()
	cw := cardWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s %02d", i18n.T(locale, "home.case"), s.c.Number)) + "\n")
	b.WriteString(theme.Subtitle.Render(s.c.Subtitle) + "\n\n")
	b.WriteString(theme.Body.Render(s.c.Brief.Narrative) + "\n\n")

	b.WriteString(theme.Selected.Render(i18n.T(locale, "case.symptoms")) + "\n")
	for _, sym := range s.c.Brief.Symptoms {
		b.WriteString(theme.Body.Render("  • "+sym) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Selected.Render(i18n.T(locale, "case.objective")) + "\n")
	b.WriteString(theme.Body.Render("  "+s.c.Brief.Objective) + "\n\n")
	b.WriteString(theme.Hint.Render(i18n.T(locale, "case.pressEnter")))

	return card(b.String(), cw)
}

func (s *CaseFileScreen) renderBoard(width int) string {
	locale := s.locale()
	header := theme.Title.Render(i18n.T(locale, "case.diagram"))
	return header + "\n\n" + s.diagram.View(width-4)
}

func (s *CaseFileScreen) renderQuestion(width int) string {
	cw := cardWidth(width)
	return card(s.mc.View(), cw)
}

func (s *CaseFileScreen) renderFeedback(width int) string {
	locale := s.locale()
	cw := cardWidth(width)

	headline := theme.Correct.Render(i18n.T(locale, "case.correct"))
	if !s.verdict.Correct {
		headline = theme.Incorrect.Render(i18n.T(locale, "case.incorrect"))
	}

	body := s.mc.View() + "\n" + headline + "\n\n" +
		theme.Body.Render(s.verdict.Feedback)
	return card(body, cw)
}

func (s *CaseFileScreen) renderSolved(width int) string {
	locale := s.locale()
	st := s.store.State()
	cw := cardWidth(width)

	var b strings.Builder
	b.WriteString(theme.Correct.Render(i18n.T(locale, "case.solved")) + "\n\n")
	b.WriteString(theme.Title.Render(s.c.Badge.Icon+"  "+s.c.Badge.Name) + "\n")
	b.WriteString(theme.Subtitle.Render(i18n.T(locale, "case.badgeEarned")) + "\n\n")

	if p, ok := st.Progress[s.caseID]; ok {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d + %d attempts",
			p.RootCauseAttempts, p.FixAttempts)) + "\n")
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("%s: %s",
		i18n.T(locale, "home.rank"), st.Rank.Title)) + "\n\n")
	b.WriteString(theme.Hint.Render("C · " + i18n.T(locale, "case.concept")))

	return card(b.String(), cw)
}

func card(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(1, 2).
		Render(content)
}

func cardWidth(width int) int {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 30 {
		cw = 30
	}
	return cw
}
