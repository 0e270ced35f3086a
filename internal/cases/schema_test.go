package cases

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileCaseSchema(t *testing.T) func(doc map[string]any) error {
	t.Helper()
	s, err := compileSchema("case", caseSchema)
	require.NoError(t, err)
	return func(doc map[string]any) error {
		// The validator wants a freshly parsed JSON value.
		b, err := json.Marshal(doc)
		require.NoError(t, err)
		var parsed any
		require.NoError(t, json.Unmarshal(b, &parsed))
		return s.Validate(parsed)
	}
}

func caseDoc(t *testing.T) map[string]any {
	t.Helper()
	b, err := json.Marshal(makeValidCase(1))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	return doc
}

func TestCaseSchemaAcceptsValidDoc(t *testing.T) {
	validate := compileCaseSchema(t)
	assert.NoError(t, validate(caseDoc(t)))
}

func TestCaseSchemaRejectsBadDocs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"bad id format", func(doc map[string]any) {
			doc["id"] = "case-1"
		}},
		{"missing brief", func(doc map[string]any) {
			delete(doc, "brief")
		}},
		{"unknown field", func(doc map[string]any) {
			doc["hints"] = []any{"look at the pool"}
		}},
		{"bad node status", func(doc map[string]any) {
			diagram := doc["diagram"].(map[string]any)
			node := diagram["nodes"].([]any)[0].(map[string]any)
			node["status"] = "on-fire"
		}},
		{"three options", func(doc map[string]any) {
			diagnosis := doc["diagnosis"].(map[string]any)
			q := diagnosis["rootCause"].(map[string]any)
			opts := q["options"].([]any)
			q["options"] = opts[:3]
		}},
		{"zero case number", func(doc map[string]any) {
			doc["number"] = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := compileCaseSchema(t)
			doc := caseDoc(t)
			tt.mutate(doc)
			assert.Error(t, validate(doc))
		})
	}
}

func TestConceptSchemaRejectsEmptyExplanation(t *testing.T) {
	s, err := compileSchema("concepts", conceptSchema)
	require.NoError(t, err)

	raw := `[{"id":"c","title":"t","summary":"s","explanation":[],"keyTerms":[]}]`
	var parsed any
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))
	assert.Error(t, s.Validate(parsed))
}

func TestEmbeddedDocsMatchSchemas(t *testing.T) {
	// loadCatalogs re-runs the full embed + schema + validation pipeline.
	cats, err := loadCatalogs()
	require.NoError(t, err)
	assert.Len(t, cats, 2)
}
