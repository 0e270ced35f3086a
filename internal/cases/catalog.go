package cases

import (
	"fmt"
	"slices"

	"github.com/rafaelqm/dsdetective/internal/i18n"
)

// catalog holds one locale's case and concept set with lookup indices.
type catalog struct {
	cases    []Case // ascending by number
	byID     map[string]*Case
	concepts map[string]*Concept
}

// catalogs is the package-level locale → catalog map, set by init() in
// load.go from the embedded documents.
var catalogs map[i18n.Locale]*catalog

// CaseID returns the canonical id for a case number ("case-07").
func CaseID(number int) string {
	return fmt.Sprintf("case-%02d", number)
}

// forLocale resolves the catalog for a locale, falling back to the
// default locale so lookups never fail outright for unknown tags.
func forLocale(locale i18n.Locale) *catalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs[i18n.DefaultLocale]
}

// GetCase returns a case by id from the locale's catalog.
func GetCase(locale i18n.Locale, id string) (Case, error) {
	c, ok := forLocale(locale).byID[id]
	if !ok {
		return Case{}, fmt.Errorf("case not found: %q", id)
	}
	return *c, nil
}

// ListCases returns the locale's cases ascending by number.
func ListCases(locale i18n.Locale) []Case {
	return slices.Clone(forLocale(locale).cases)
}

// Count returns the number of cases in the locale's catalog.
func Count(locale i18n.Locale) int {
	return len(forLocale(locale).cases)
}

// GetConcept returns a concept by id from the locale's catalog.
func GetConcept(locale i18n.Locale, id string) (Concept, error) {
	c, ok := forLocale(locale).concepts[id]
	if !ok {
		return Concept{}, fmt.Errorf("concept not found: %q", id)
	}
	return *c, nil
}

// buildCatalog indexes a validated case/concept set.
func buildCatalog(cs []Case, concepts []Concept) *catalog {
	sorted := slices.Clone(cs)
	slices.SortFunc(sorted, func(a, b Case) int { return a.Number - b.Number })

	cat := &catalog{
		cases:    sorted,
		byID:     make(map[string]*Case, len(sorted)),
		concepts: make(map[string]*Concept, len(concepts)),
	}
	for i := range cat.cases {
		cat.byID[cat.cases[i].ID] = &cat.cases[i]
	}
	for i := range concepts {
		cat.concepts[concepts[i].ID] = &concepts[i]
	}
	return cat
}
