package i18n

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Locale
		want Locale
	}{
		{LocaleEN, LocaleEN},
		{LocalePTBR, LocalePTBR},
		{Locale("fr"), DefaultLocale},
		{Locale(""), DefaultLocale},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNextCycles(t *testing.T) {
	if got := Next(LocaleEN); got != LocalePTBR {
		t.Errorf("Next(en) = %q, want pt-BR", got)
	}
	if got := Next(LocalePTBR); got != LocaleEN {
		t.Errorf("Next(pt-BR) = %q, want en", got)
	}
	if got := Next(Locale("xx")); got != DefaultLocale {
		t.Errorf("Next(unknown) = %q, want default", got)
	}
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	// Every default-locale key must resolve in every locale.
	for key := range tables[DefaultLocale] {
		for _, l := range AllLocales() {
			if got := T(l, key); got == "" {
				t.Errorf("T(%q, %q) returned empty string", l, key)
			}
		}
	}

	// Unknown locale resolves through the default table.
	if got := T(Locale("fr"), "home.title"); got != tables[DefaultLocale]["home.title"] {
		t.Errorf("T(fr, home.title) = %q, want default-locale value", got)
	}
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	if got := T(LocaleEN, "no.such.key"); got != "no.such.key" {
		t.Errorf("T(en, no.such.key) = %q, want the key itself", got)
	}
}

func TestTablesCoverAllLocales(t *testing.T) {
	for _, l := range AllLocales() {
		if _, ok := tables[l]; !ok {
			t.Errorf("locale %q has no translation table", l)
		}
	}
	// Parallel tables: same key sets.
	for key := range tables[DefaultLocale] {
		if _, ok := tables[LocalePTBR][key]; !ok {
			t.Errorf("pt-BR table missing key %q", key)
		}
	}
	for key := range tables[LocalePTBR] {
		if _, ok := tables[DefaultLocale][key]; !ok {
			t.Errorf("en table missing key %q", key)
		}
	}
}
