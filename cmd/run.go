package cmd

import (
	"fmt"

	"github.com/rafaelqm/dsdetective/internal/app"
	"github.com/rafaelqm/dsdetective/internal/config"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/rafaelqm/dsdetective/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, restores the saved game, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	adapter, err := store.NewAdapter(st)
	if err != nil {
		return fmt.Errorf("init persistence: %w", err)
	}

	// A fresh profile starts in the configured locale; a saved game
	// keeps whatever locale it was left in.
	fresh := game.NewState()
	fresh.Locale = i18n.Normalize(i18n.Locale(cfg.Locale))

	gameStore := game.New(adapter.Load(ctx, fresh))

	return app.Run(app.Options{
		Store:       gameStore,
		Adapter:     adapter,
		NoAltScreen: cfg.NoAltScreen,
	})
}
