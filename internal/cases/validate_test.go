package cases

import (
	"strings"
	"testing"
)

func makeValidCase(number int) Case {
	id := CaseID(number)
	return Case{
		ID:       id,
		Number:   number,
		Title:    "Title " + id,
		Subtitle: "Subtitle",
		Brief: Brief{
			Narrative: "n",
			Symptoms:  []string{"s"},
			Objective: "o",
		},
		Diagram: Diagram{
			Nodes: []Node{
				{ID: "a", Type: "server", Label: "A", Status: StatusHealthy},
				{ID: "b", Type: "database", Label: "B", Status: StatusFailed},
			},
			Edges: []Edge{
				{ID: "a-b", Source: "a", Target: "b", Style: EdgeBroken},
			},
		},
		Diagnosis: Diagnosis{
			RootCause: makeValidQuestion("rc"),
			Fix:       makeValidQuestion("fx"),
		},
		ConceptID: "concept-x",
		Badge:     Badge{Name: "Badge", Icon: "⭐"},
	}
}

func makeValidQuestion(prefix string) Question {
	return Question{
		Question: "Why?",
		Options: []Option{
			{ID: prefix + "-a", Text: prefix + " option a", Correct: false, Feedback: "f"},
			{ID: prefix + "-b", Text: prefix + " option b", Correct: true, Feedback: "f"},
			{ID: prefix + "-c", Text: prefix + " option c", Correct: false, Feedback: "f"},
			{ID: prefix + "-d", Text: prefix + " option d", Correct: false, Feedback: "f"},
		},
	}
}

var testConcepts = []Concept{
	{ID: "concept-x", Title: "t", Summary: "s", Explanation: []string{"e"}},
}

func TestValidateCatalogAcceptsValidSet(t *testing.T) {
	cs := []Case{makeValidCase(1), makeValidCase(2), makeValidCase(3)}
	if err := validateCatalog(cs, testConcepts); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}
}

func TestValidateCatalogDetectsGap(t *testing.T) {
	cs := []Case{makeValidCase(1), makeValidCase(3)}
	err := validateCatalog(cs, testConcepts)
	if err == nil {
		t.Fatal("expected error for number gap, got nil")
	}
	if !strings.Contains(err.Error(), "gap") {
		t.Errorf("error should mention gap, got: %v", err)
	}
}

func TestValidateCatalogDetectsDuplicateNumber(t *testing.T) {
	a := makeValidCase(1)
	b := makeValidCase(1)
	err := validateCatalog([]Case{a, b}, testConcepts)
	if err == nil {
		t.Fatal("expected error for duplicate number, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate case number") {
		t.Errorf("error should mention duplicate number, got: %v", err)
	}
}

func TestValidateCatalogDetectsIDMismatch(t *testing.T) {
	c := makeValidCase(1)
	c.ID = "case-42"
	err := validateCatalog([]Case{c}, testConcepts)
	if err == nil {
		t.Fatal("expected error for id/number mismatch, got nil")
	}
	if !strings.Contains(err.Error(), "case-01") {
		t.Errorf("error should name the expected id, got: %v", err)
	}
}

func TestValidateCatalogDetectsZeroOrTwoCorrect(t *testing.T) {
	c := makeValidCase(1)
	c.Diagnosis.RootCause.Options[0].Correct = true // now two correct
	if err := validateCatalog([]Case{c}, testConcepts); err == nil {
		t.Error("expected error for two correct options, got nil")
	}

	c = makeValidCase(1)
	c.Diagnosis.Fix.Options[1].Correct = false // now zero correct
	if err := validateCatalog([]Case{c}, testConcepts); err == nil {
		t.Error("expected error for zero correct options, got nil")
	}
}

func TestValidateCatalogDetectsDuplicateOptionText(t *testing.T) {
	c := makeValidCase(1)
	c.Diagnosis.RootCause.Options[2].Text = c.Diagnosis.RootCause.Options[0].Text
	err := validateCatalog([]Case{c}, testConcepts)
	if err == nil {
		t.Fatal("expected error for duplicate option text, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate option text") {
		t.Errorf("error should mention duplicate text, got: %v", err)
	}
}

func TestValidateCatalogDetectsDuplicateOptionID(t *testing.T) {
	c := makeValidCase(1)
	c.Diagnosis.Fix.Options[2].ID = c.Diagnosis.Fix.Options[0].ID
	if err := validateCatalog([]Case{c}, testConcepts); err == nil {
		t.Error("expected error for duplicate option id, got nil")
	}
}

func TestValidateCatalogDetectsDanglingEdge(t *testing.T) {
	c := makeValidCase(1)
	c.Diagram.Edges[0].Target = "nonexistent"
	err := validateCatalog([]Case{c}, testConcepts)
	if err == nil {
		t.Fatal("expected error for dangling edge, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should name the missing node, got: %v", err)
	}
}

func TestValidateCatalogDetectsOrphanNode(t *testing.T) {
	c := makeValidCase(1)
	c.Diagram.Nodes = append(c.Diagram.Nodes, Node{ID: "orphan", Type: "server", Label: "O", Status: StatusHealthy})
	err := validateCatalog([]Case{c}, testConcepts)
	if err == nil {
		t.Fatal("expected error for orphan node, got nil")
	}
	if !strings.Contains(err.Error(), "orphan") {
		t.Errorf("error should name the orphan node, got: %v", err)
	}
}

func TestValidateCatalogDetectsUnknownConcept(t *testing.T) {
	c := makeValidCase(1)
	c.ConceptID = "missing-concept"
	err := validateCatalog([]Case{c}, testConcepts)
	if err == nil {
		t.Fatal("expected error for unknown concept, got nil")
	}
	if !strings.Contains(err.Error(), "missing-concept") {
		t.Errorf("error should name the concept, got: %v", err)
	}
}

func TestValidateParallelDetectsDrift(t *testing.T) {
	en := []Case{makeValidCase(1), makeValidCase(2)}
	pt := []Case{makeValidCase(1)}
	err := validateParallel(map[string][]Case{"en": en, "pt-BR": pt})
	if err == nil {
		t.Fatal("expected error for catalog count drift, got nil")
	}

	pt = []Case{makeValidCase(1), makeValidCase(2)}
	pt[1].ID = "case-03"
	pt[1].Number = 3
	err = validateParallel(map[string][]Case{"en": en, "pt-BR": pt})
	if err == nil {
		t.Fatal("expected error for id set drift, got nil")
	}
	if !strings.Contains(err.Error(), "case-03") {
		t.Errorf("error should name the drifted case, got: %v", err)
	}
}
