package qa

// BuildAnswerJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the span-prediction payload returned by the QA
// endpoint. We use it locally to validate responses before unmarshalling.
func BuildAnswerJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"start":  map[string]any{"type": "integer", "minimum": 0},
			"end":    map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []string{"answer", "score"},
	}
}
