package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchemaDef is the JSON Schema the /api/quiz response must satisfy.
// The AI-generated payload is the one response shape the backend does
// not fully control, so it gets schema validation before decoding.
var quizSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type": "string",
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 4,
						"maxItems": 4,
						"items":    map[string]any{"type": "string"},
					},
					"correct_answer": map[string]any{
						"type": "string",
						"enum": []any{"A", "B", "C", "D"},
					},
					"explanation": map[string]any{
						"type": "string",
					},
				},
				"required": []any{"question", "options", "correct_answer", "explanation"},
			},
		},
		"source_text": map[string]any{
			"type": "string",
		},
	},
	"required": []any{"questions"},
}

var (
	quizSchemaOnce sync.Once
	quizSchema     *jsonschema.Schema
	quizSchemaErr  error
)

// validateQuizPayload checks raw against the quiz response schema.
// Returns *ErrInvalidResponse on any mismatch.
func validateQuizPayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledQuizSchema()
	if err != nil {
		return &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("compile quiz schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledQuizSchema compiles the schema once and caches it.
func compiledQuizSchema() (*jsonschema.Schema, error) {
	quizSchemaOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go maps with
		// mixed numeric types. Round-trip through encoding/json.
		defBytes, err := json.Marshal(quizSchemaDef)
		if err != nil {
			quizSchemaErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			quizSchemaErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://quiz-response.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			quizSchemaErr = err
			return
		}
		quizSchema, quizSchemaErr = c.Compile(schemaURL)
	})
	return quizSchema, quizSchemaErr
}
