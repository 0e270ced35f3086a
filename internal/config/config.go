// Package config reads runtime settings from the environment. Flags on
// individual commands override what is parsed here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DBPath overrides the default database location. Empty means the
	// XDG data directory is used.
	DBPath string `env:"DSDETECTIVE_DB"`

	// Locale is the startup UI language. It only applies to fresh
	// profiles; a saved game keeps its stored locale.
	Locale string `env:"DSDETECTIVE_LOCALE" envDefault:"en"`

	// NoAltScreen disables the alternate terminal screen, useful when
	// scrollback matters more than a clean exit.
	NoAltScreen bool `env:"DSDETECTIVE_NO_ALT_SCREEN"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
