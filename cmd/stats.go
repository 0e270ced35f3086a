package cmd

import (
	"fmt"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show case progress and rank",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		gameStore := game.New(adapter.Load(cmd.Context(), game.NewState()))
		state := gameStore.State()
		total := cases.Count(state.Locale)

		fmt.Printf("Profile: %s\n", state.ProfileID)
		fmt.Printf("Rank:    %s\n", state.Rank.Title)
		fmt.Printf("Solved:  %d/%d\n\n", state.CompletedCases, total)

		for _, c := range cases.ListCases(state.Locale) {
			status := "locked"
			if gameStore.IsCaseUnlocked(c.Number) {
				status = "open"
			}
			line := fmt.Sprintf("%s  %-34s %s", c.ID, c.Title, status)
			if p, ok := state.Progress[c.ID]; ok {
				if p.Completed {
					line = fmt.Sprintf("%s  %-34s solved (%d+%d attempts)",
						c.ID, c.Title, p.RootCauseAttempts, p.FixAttempts)
				} else {
					line += fmt.Sprintf(" (%d+%d attempts)", p.RootCauseAttempts, p.FixAttempts)
				}
			}
			fmt.Println(line)
		}
		return nil
	},
}
