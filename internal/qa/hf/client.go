package hf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leasemetric/leasebench/internal/qa"
)

// ExtractAnswer implements qa.AnswerExtractor against a HuggingFace-style
// question-answering inference endpoint. One question, one context, top
// answer span only; low-confidence answers are returned as-is, no fallback.
func (c *Client) ExtractAnswer(ctx context.Context, req qa.AnswerRequest) (qa.Answer, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("qa.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"question", req.Question,
		"context_len", len(req.Context),
		"filename_hint", req.FilenameHint,
	)

	if req.PrepConfidence > 0 && req.PrepConfidence < lowOCRConfidence {
		c.log.Warn("qa.extract.low_ocr_confidence",
			"req_id", rid, "prep_confidence", req.PrepConfidence,
			"hint", "answers from this document are likely garbage")
	}

	body := map[string]any{
		"inputs": map[string]any{
			"question": req.Question,
			"context":  req.Context,
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model
	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	raw, _, httpErr := qa.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("qa.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return qa.Answer{}, raw, httpErr
	}

	// Some servers wrap the prediction in a single-element array.
	content := raw
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 {
		content = arr[0]
	}

	if err := qa.ValidateJSONAgainstSchema(qa.BuildAnswerJSONSchema(), content); err != nil {
		c.log.Error("qa.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return qa.Answer{}, content, fmt.Errorf("schema validation failed: %w", err)
	}

	var out qa.Answer
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("qa.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return qa.Answer{}, content, fmt.Errorf("unmarshal answer: %w", err)
	}
	out.Text = strings.TrimSpace(out.Text)

	c.log.Info("qa.extract.ok",
		"req_id", rid,
		"answer", out.Text,
		"score", out.Score,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

const lowOCRConfidence = 0.6
