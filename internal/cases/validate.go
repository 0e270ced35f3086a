package cases

import (
	"fmt"
	"strings"
)

// OptionsPerQuestion is the fixed option count for every diagnosis question.
const OptionsPerQuestion = 4

// validateCatalog performs all structural checks on one locale's case and
// concept set. Returns a combined error describing all problems found, or
// nil if valid.
func validateCatalog(cs []Case, concepts []Concept) error {
	var errs []string

	conceptIDs := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if conceptIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		conceptIDs[c.ID] = true
	}

	// Case numbers must form the exact set {1..N}; ids derive from numbers.
	seen := make(map[int]bool, len(cs))
	for _, c := range cs {
		if c.Number < 1 {
			errs = append(errs, fmt.Sprintf("case %q: number must be >= 1, got %d", c.ID, c.Number))
			continue
		}
		if seen[c.Number] {
			errs = append(errs, fmt.Sprintf("duplicate case number: %d", c.Number))
		}
		seen[c.Number] = true
		if c.ID != CaseID(c.Number) {
			errs = append(errs, fmt.Sprintf("case number %d has id %q, want %q", c.Number, c.ID, CaseID(c.Number)))
		}
	}
	for n := 1; n <= len(cs); n++ {
		if !seen[n] {
			errs = append(errs, fmt.Sprintf("case numbers have a gap: missing %d", n))
		}
	}

	for _, c := range cs {
		errs = append(errs, validateQuestion(c.ID, "rootCause", c.Diagnosis.RootCause)...)
		errs = append(errs, validateQuestion(c.ID, "fix", c.Diagnosis.Fix)...)
		errs = append(errs, validateDiagram(c.ID, c.Diagram)...)

		if !conceptIDs[c.ConceptID] {
			errs = append(errs, fmt.Sprintf("case %q references nonexistent concept %q", c.ID, c.ConceptID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("case catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateQuestion checks the option invariants: fixed option count,
// exactly one correct option, unique ids, unique display texts.
func validateQuestion(caseID, name string, q Question) []string {
	var errs []string
	prefix := fmt.Sprintf("case %q %s", caseID, name)

	if len(q.Options) != OptionsPerQuestion {
		errs = append(errs, fmt.Sprintf("%s: want %d options, got %d", prefix, OptionsPerQuestion, len(q.Options)))
	}

	correct := 0
	ids := make(map[string]bool, len(q.Options))
	texts := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.Correct {
			correct++
		}
		if ids[o.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option id %q", prefix, o.ID))
		}
		ids[o.ID] = true
		if texts[o.Text] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option text %q", prefix, o.Text))
		}
		texts[o.Text] = true
	}
	if correct != 1 {
		errs = append(errs, fmt.Sprintf("%s: want exactly 1 correct option, got %d", prefix, correct))
	}
	return errs
}

// validateDiagram checks referential integrity: unique node ids, edges
// resolving to existing nodes, and no orphan nodes.
func validateDiagram(caseID string, d Diagram) []string {
	var errs []string
	prefix := fmt.Sprintf("case %q diagram", caseID)

	nodeIDs := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if nodeIDs[n.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate node id %q", prefix, n.ID))
		}
		nodeIDs[n.ID] = true
	}

	referenced := make(map[string]bool, len(d.Nodes))
	for _, e := range d.Edges {
		if !nodeIDs[e.Source] {
			errs = append(errs, fmt.Sprintf("%s: edge %q source %q does not exist", prefix, e.ID, e.Source))
		}
		if !nodeIDs[e.Target] {
			errs = append(errs, fmt.Sprintf("%s: edge %q target %q does not exist", prefix, e.ID, e.Target))
		}
		referenced[e.Source] = true
		referenced[e.Target] = true
	}
	for _, n := range d.Nodes {
		if !referenced[n.ID] {
			errs = append(errs, fmt.Sprintf("%s: node %q not referenced by any edge", prefix, n.ID))
		}
	}
	return errs
}

// validateParallel checks that every locale carries the same case set:
// identical counts and an identical id ↔ number mapping.
func validateParallel(byLocale map[string][]Case) error {
	var errs []string

	var refName string
	var ref []Case
	for name, cs := range byLocale {
		if refName == "" || name < refName {
			refName, ref = name, cs
		}
	}

	refMap := make(map[string]int, len(ref))
	for _, c := range ref {
		refMap[c.ID] = c.Number
	}

	for name, cs := range byLocale {
		if name == refName {
			continue
		}
		if len(cs) != len(ref) {
			errs = append(errs, fmt.Sprintf("locale %q has %d cases, locale %q has %d", name, len(cs), refName, len(ref)))
		}
		for _, c := range cs {
			n, ok := refMap[c.ID]
			if !ok {
				errs = append(errs, fmt.Sprintf("locale %q case %q missing from locale %q", name, c.ID, refName))
				continue
			}
			if n != c.Number {
				errs = append(errs, fmt.Sprintf("case %q is number %d in %q but %d in %q", c.ID, c.Number, name, n, refName))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("locale catalogs are not parallel:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate re-checks every loaded catalog. Exposed for the `cases`
// command; the same checks already ran at load time.
func Validate() error {
	byLocale := make(map[string][]Case, len(catalogs))
	for locale, cat := range catalogs {
		var concepts []Concept
		for _, c := range cat.concepts {
			concepts = append(concepts, *c)
		}
		if err := validateCatalog(cat.cases, concepts); err != nil {
			return err
		}
		byLocale[string(locale)] = cat.cases
	}
	return validateParallel(byLocale)
}
