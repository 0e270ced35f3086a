package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/router"
	"github.com/rafaelqm/dsdetective/internal/screen"
	"github.com/rafaelqm/dsdetective/internal/screens/home"
	"github.com/rafaelqm/dsdetective/internal/store"
	"github.com/rafaelqm/dsdetective/internal/ui/layout"
)

// Options carries the composed dependencies for a program run.
type Options struct {
	Store *game.Store

	// Adapter persists state changes. Nil means in-memory play only.
	Adapter *store.Adapter

	// NoAltScreen renders inline instead of on the alternate screen.
	NoAltScreen bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	store       *game.Store
	router      *router.Router
	noAltScreen bool
	width       int
	height      int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		store:       opts.Store,
		router:      router.New(home.New(opts.Store)),
		noAltScreen: opts.NoAltScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = !m.noAltScreen

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	st := m.store.State()

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(
		i18n.T(st.Locale, "app.name"),
		title,
		st.Rank.Title,
		st.CompletedCases,
		cases.Count(st.Locale),
		m.width,
	)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run wires persistence to the game store and starts the Bubble Tea
// program. Every state change is saved as it happens; there is no
// save-on-exit step to lose.
func Run(opts Options) error {
	if opts.Adapter != nil {
		adapter := opts.Adapter
		opts.Store.Subscribe(func(st game.State) {
			adapter.Save(context.Background(), st)
		})
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
