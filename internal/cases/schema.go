package cases

// caseSchema is the JSON Schema every embedded case document must satisfy
// before decoding. Structural cross-checks (numbering, correct-option
// count, diagram integrity) live in validate.go; the schema guards shape.
var caseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":    "string",
			"pattern": "^case-[0-9]{2}$",
		},
		"number":   map[string]any{"type": "integer", "minimum": 1},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"subtitle": map[string]any{"type": "string"},
		"brief": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"narrative": map[string]any{"type": "string", "minLength": 1},
				"symptoms": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"objective": map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"narrative", "symptoms", "objective"},
			"additionalProperties": false,
		},
		"diagram": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"nodes": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":          map[string]any{"type": "string", "minLength": 1},
							"type":        map[string]any{"type": "string"},
							"label":       map[string]any{"type": "string", "minLength": 1},
							"status":      map[string]any{"enum": []any{"healthy", "degraded", "failed"}},
							"inspectable": map[string]any{"type": "boolean"},
							"inspectData": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{"type": "string"},
									"logs": map[string]any{
										"type":  "array",
										"items": map[string]any{"type": "string"},
									},
									"data": map[string]any{
										"type":                 "object",
										"additionalProperties": map[string]any{"type": "string"},
									},
									"status": map[string]any{"type": "string"},
								},
								"required": []any{"title", "status"},
							},
						},
						"required":             []any{"id", "type", "label", "status", "inspectable"},
						"additionalProperties": false,
					},
				},
				"edges": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":       map[string]any{"type": "string", "minLength": 1},
							"source":   map[string]any{"type": "string", "minLength": 1},
							"target":   map[string]any{"type": "string", "minLength": 1},
							"label":    map[string]any{"type": "string"},
							"animated": map[string]any{"type": "boolean"},
							"style":    map[string]any{"enum": []any{"normal", "broken", "slow"}},
						},
						"required":             []any{"id", "source", "target"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"nodes", "edges"},
			"additionalProperties": false,
		},
		"diagnosis": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"rootCause": questionSchema,
				"fix":       questionSchema,
			},
			"required":             []any{"rootCause", "fix"},
			"additionalProperties": false,
		},
		"conceptId": map[string]any{"type": "string", "minLength": 1},
		"badge": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
				"icon": map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"name", "icon"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "number", "title", "subtitle", "brief", "diagram", "diagnosis", "conceptId", "badge"},
	"additionalProperties": false,
}

// questionSchema shapes a single diagnosis question with its fixed option set.
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": OptionsPerQuestion,
			"maxItems": OptionsPerQuestion,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"text":     map[string]any{"type": "string", "minLength": 1},
					"correct":  map[string]any{"type": "boolean"},
					"feedback": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "text", "correct", "feedback"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"question", "options"},
	"additionalProperties": false,
}

// conceptSchema shapes one concept document (an array of these per locale).
var conceptSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":      map[string]any{"type": "string", "minLength": 1},
			"title":   map[string]any{"type": "string", "minLength": 1},
			"summary": map[string]any{"type": "string", "minLength": 1},
			"explanation": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"keyTerms": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term":       map[string]any{"type": "string", "minLength": 1},
						"definition": map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"term", "definition"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "title", "summary", "explanation", "keyTerms"},
		"additionalProperties": false,
	},
}
