package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DSDETECTIVE_DB", "DSDETECTIVE_LOCALE", "DSDETECTIVE_NO_ALT_SCREEN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "en" {
		t.Errorf("locale = %q, want en", cfg.Locale)
	}
	if cfg.DBPath != "" {
		t.Errorf("db path = %q, want empty", cfg.DBPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DSDETECTIVE_DB", "/tmp/test.db")
	t.Setenv("DSDETECTIVE_LOCALE", "pt-BR")
	t.Setenv("DSDETECTIVE_NO_ALT_SCREEN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db path = %q, want /tmp/test.db", cfg.DBPath)
	}
	if cfg.Locale != "pt-BR" {
		t.Errorf("locale = %q, want pt-BR", cfg.Locale)
	}
	if !cfg.NoAltScreen {
		t.Error("no-alt-screen flag not parsed")
	}
}
