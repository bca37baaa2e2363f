package qa

import "context"

// AnswerRequest is one extractive QA invocation: a fixed natural-language
// question asked against the full document text.
type AnswerRequest struct {
	Question string
	Context  string

	FilenameHint   string
	PrepConfidence float32
}

// Answer is the model's top answer span.
type Answer struct {
	Text  string  `json:"answer"`
	Score float32 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// AnswerExtractor is the interface the batch pipeline depends on.
type AnswerExtractor interface {
	ExtractAnswer(ctx context.Context, req AnswerRequest) (Answer, []byte /*rawJSON*/, error)
}
