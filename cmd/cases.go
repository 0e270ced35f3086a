package cmd

import (
	"fmt"

	"github.com/rafaelqm/dsdetective/internal/cases"
	"github.com/rafaelqm/dsdetective/internal/i18n"
	"github.com/spf13/cobra"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the case catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		locale := i18n.Normalize(i18n.Locale(casesLocale))
		for _, c := range cases.ListCases(locale) {
			fmt.Printf("%s  %s — %s\n", c.ID, c.Title, c.Subtitle)
		}
		return nil
	},
}

var casesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the embedded catalogs for structural problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cases.Validate(); err != nil {
			return err
		}
		for _, locale := range i18n.AllLocales() {
			fmt.Printf("%s: %d cases ok\n", locale, cases.Count(locale))
		}
		return nil
	},
}

var casesLocale string

func init() {
	casesCmd.Flags().StringVar(&casesLocale, "locale", string(i18n.DefaultLocale), "Catalog locale")
	casesCmd.AddCommand(casesValidateCmd)
}
