package cases

import (
	"testing"

	"github.com/rafaelqm/dsdetective/internal/i18n"
)

func TestListCasesAscendingAndContiguous(t *testing.T) {
	for _, locale := range i18n.AllLocales() {
		cs := ListCases(locale)
		if len(cs) == 0 {
			t.Fatalf("locale %q: empty catalog", locale)
		}
		for i, c := range cs {
			want := i + 1
			if c.Number != want {
				t.Errorf("locale %q: cases[%d].Number = %d, want %d", locale, i, c.Number, want)
			}
			if c.ID != CaseID(c.Number) {
				t.Errorf("locale %q: case %d has id %q, want %q", locale, c.Number, c.ID, CaseID(c.Number))
			}
		}
	}
}

func TestCaseID(t *testing.T) {
	tests := []struct {
		number int
		want   string
	}{
		{1, "case-01"},
		{9, "case-09"},
		{10, "case-10"},
		{33, "case-33"},
	}
	for _, tt := range tests {
		if got := CaseID(tt.number); got != tt.want {
			t.Errorf("CaseID(%d) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestGetCase(t *testing.T) {
	c, err := GetCase(i18n.LocaleEN, "case-01")
	if err != nil {
		t.Fatalf("GetCase(en, case-01): %v", err)
	}
	if c.Number != 1 {
		t.Errorf("case-01 number = %d, want 1", c.Number)
	}
	if c.ConceptID == "" {
		t.Error("case-01 has empty conceptId")
	}

	if _, err := GetCase(i18n.LocaleEN, "case-99"); err == nil {
		t.Error("expected error for unknown case id, got nil")
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	def := ListCases(i18n.DefaultLocale)
	got := ListCases(i18n.Locale("fr"))
	if len(got) != len(def) {
		t.Fatalf("fallback catalog has %d cases, default has %d", len(got), len(def))
	}
	for i := range got {
		if got[i].ID != def[i].ID {
			t.Errorf("fallback cases[%d].ID = %q, want %q", i, got[i].ID, def[i].ID)
		}
	}

	if _, err := GetCase(i18n.Locale("fr"), "case-01"); err != nil {
		t.Errorf("GetCase on unknown locale should fall back, got error: %v", err)
	}
}

func TestParallelCatalogs(t *testing.T) {
	en := ListCases(i18n.LocaleEN)
	pt := ListCases(i18n.LocalePTBR)
	if len(en) != len(pt) {
		t.Fatalf("en has %d cases, pt-BR has %d", len(en), len(pt))
	}
	for i := range en {
		if en[i].ID != pt[i].ID || en[i].Number != pt[i].Number {
			t.Errorf("case %d: en (%s,%d) != pt-BR (%s,%d)",
				i, en[i].ID, en[i].Number, pt[i].ID, pt[i].Number)
		}
		if en[i].ConceptID != pt[i].ConceptID {
			t.Errorf("case %q: conceptId differs across locales: %q vs %q",
				en[i].ID, en[i].ConceptID, pt[i].ConceptID)
		}
	}
}

func TestEveryCaseConceptResolves(t *testing.T) {
	for _, locale := range i18n.AllLocales() {
		for _, c := range ListCases(locale) {
			if _, err := GetConcept(locale, c.ConceptID); err != nil {
				t.Errorf("locale %q case %q: %v", locale, c.ID, err)
			}
		}
	}
}

func TestGetConceptNotFound(t *testing.T) {
	if _, err := GetConcept(i18n.LocaleEN, "no-such-concept"); err == nil {
		t.Error("expected error for unknown concept id, got nil")
	}
}

func TestQuestionInvariants(t *testing.T) {
	for _, locale := range i18n.AllLocales() {
		for _, c := range ListCases(locale) {
			for name, q := range map[string]Question{
				"rootCause": c.Diagnosis.RootCause,
				"fix":       c.Diagnosis.Fix,
			} {
				if len(q.Options) != OptionsPerQuestion {
					t.Errorf("locale %q case %q %s: %d options", locale, c.ID, name, len(q.Options))
				}
				correct := 0
				for _, o := range q.Options {
					if o.Correct {
						correct++
					}
				}
				if correct != 1 {
					t.Errorf("locale %q case %q %s: %d correct options", locale, c.ID, name, correct)
				}
			}
		}
	}
}

func TestValidateLoadedCatalogs(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("embedded catalogs failed validation: %v", err)
	}
}
