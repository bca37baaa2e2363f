package hf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leasemetric/leasebench/internal/qa"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Model: "test-model"}, nil)
}

func TestExtractAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model", r.URL.Path)

		var body struct {
			Inputs struct {
				Question string `json:"question"`
				Context  string `json:"context"`
			} `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "What is the rent?", body.Inputs.Question)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"answer": " Rs. 12,000 ",
			"score":  0.91,
			"start":  120,
			"end":    131,
		})
	})

	ans, raw, err := c.ExtractAnswer(context.Background(), qa.AnswerRequest{
		Question: "What is the rent?",
		Context:  "the monthly rent shall be Rs. 12,000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rs. 12,000", ans.Text) // trimmed
	assert.InDelta(t, 0.91, float64(ans.Score), 1e-6)
	assert.NotEmpty(t, raw)
}

func TestExtractAnswerArrayWrapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"answer": "two months", "score": 0.64},
		})
	})

	ans, _, err := c.ExtractAnswer(context.Background(), qa.AnswerRequest{
		Question: "What is the notice period?",
		Context:  "either party may terminate with two months notice",
	})
	require.NoError(t, err)
	assert.Equal(t, "two months", ans.Text)
}

func TestExtractAnswerHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	_, _, err := c.ExtractAnswer(context.Background(), qa.AnswerRequest{Question: "q", Context: "c"})
	assert.ErrorContains(t, err, "non-2xx")
}

func TestExtractAnswerSchemaValidation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// score out of range
		_ = json.NewEncoder(w).Encode(map[string]any{"answer": "x", "score": 4.2})
	})

	_, _, err := c.ExtractAnswer(context.Background(), qa.AnswerRequest{Question: "q", Context: "c"})
	assert.ErrorContains(t, err, "schema validation failed")
}
