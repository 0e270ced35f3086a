package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rafaelqm/dsdetective/internal/game"
	"github.com/rafaelqm/dsdetective/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all case progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Erase all progress? This cannot be undone. [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(line), "y") {
				fmt.Println("Aborted.")
				return nil
			}
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

		ctx := cmd.Context()
		gameStore := game.New(adapter.Load(ctx, game.NewState()))
		gameStore.ResetProgress()
		adapter.Save(ctx, gameStore.State())

		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
