package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/router"
	"github.com/rafaelqm/dsdetective/internal/screen"
	"github.com/rafaelqm/dsdetective/internal/screens/casefile"
	"github.com/rafaelqm/dsdetective/internal/ui/components"
	"github.com/rafaelqm/dsdetective/internal/ui/layout"
	"github.com/rafaelqm/dsdetective/internal/ui/theme"
)

// HomeScreen is the precinct board: the case roster, the player's rank,
// and the field guide panel.
type HomeScreen struct {
	store           *game.Store
	menu            components.Menu
	confirmingReset bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen bound to the game store.
func New(store *game.Store) *HomeScreen {
	h := &HomeScreen{store: store}
	h.menu = h.buildMenu(-1)
	return h
}

// buildMenu rebuilds the case roster from current state. Lock states
// and labels change as cases complete and the locale switches, so this
// runs again before each interaction. A non-negative selected index is
// preserved.
func (h *HomeScreen) buildMenu(selected int) components.Menu {
	st := h.store.State()
	locale := st.Locale

	roster := cases.ListCases(locale)
	items := make([]components.MenuItem, 0, len(roster)+1)
	for _, c := range roster {
		c := c
		unlocked := h.store.IsCaseUnlocked(c.Number)
		hint := ""
		if p, ok := st.Progress[c.ID]; ok && p.Completed {
			hint = c.Badge.Icon + " " + i18n.T(locale, "home.solved")
		}
		if !unlocked {
			hint = "🔒 " + i18n.T(locale, "home.locked")
		}
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s %02d · %s", i18n.T(locale, "home.case"), c.Number, c.Title),
			Hint:     hint,
			Disabled: !unlocked,
			Action: func() tea.Cmd {
				h.store.SetCurrentCase(c.ID)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: casefile.New(h.store, c.ID)}
				}
			},
		})
	}

	menu := components.NewMenu(items)
	switch {
	case selected >= 0 && selected < len(items):
		menu.Selected = selected
	case st.CurrentCaseID != "":
		// Reopen the board with the last opened case highlighted.
		for i, c := range roster {
			if c.ID == st.CurrentCaseID && !items[i].Disabled {
				menu.Selected = i
			}
		}
	}
	return menu
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return i18n.T(h.store.State().Locale, "home.title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	locale := h.store.State().Locale
	if h.confirmingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: i18n.T(locale, "home.reset")},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "G", Description: i18n.T(locale, "home.guide")},
		{Key: "L", Description: i18n.T(locale, "home.language")},
		{Key: "R", Description: i18n.T(locale, "home.reset")},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if h.confirmingReset {
		switch kmsg.String() {
		case "y", "Y":
			h.store.ResetProgress()
			h.confirmingReset = false
			h.menu = h.buildMenu(0)
		case "n", "N", "esc":
			h.confirmingReset = false
		}
		return h, nil
	}

	switch kmsg.String() {
	case "g":
		h.store.ToggleGuide()
		return h, nil
	case "l":
		h.store.SetLocale(i18n.Next(h.store.State().Locale))
		h.menu = h.buildMenu(h.menu.Selected)
		return h, nil
	case "r":
		h.confirmingReset = true
		return h, nil
	}

	// Progress may have changed while a case file was open.
	h.menu = h.buildMenu(h.menu.Selected)

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.store.State()
	locale := st.Locale

	if h.confirmingReset {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Incorrect.Render(i18n.T(locale, "home.resetConfirm")))
	}

	total := cases.Count(locale)
	var sections []string

	title := theme.Title.Render(i18n.T(locale, "app.name"))
	subtitle := theme.Subtitle.Render(fmt.Sprintf("%s: %s · %s %d/%d",
		i18n.T(locale, "home.rank"), st.Rank.Title,
		i18n.T(locale, "home.solved"), st.CompletedCases, total))
	sections = append(sections, title+"\n"+subtitle)

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	percent := 0.0
	if total > 0 {
		percent = float64(st.CompletedCases) / float64(total)
	}
	sections = append(sections, components.NewProgressBar("", percent, true, barWidth).View())

	board := theme.Card.Render(h.menu.View())
	if st.GuideOpen {
		guide := renderGuidePanel(locale, width/3)
		if lipgloss.Width(board)+lipgloss.Width(guide)+2 <= width {
			board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", guide)
		} else {
			board = board + "\n" + guide
		}
	}
	sections = append(sections, board)

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderGuidePanel renders the field guide sidebar.
func renderGuidePanel(locale i18n.Locale, width int) string {
	if width < 24 {
		width = 24
	}
	var b strings.Builder
	b.WriteString(theme.Selected.Render(i18n.T(locale, "guide.title")) + "\n\n")
	for i, key := range []string{"guide.p1", "guide.p2", "guide.p3", "guide.p4"} {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Body.Render(i18n.T(locale, key)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(1, 2).
		Render(b.String())
}
