package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/entity"
	"github.com/leasemetric/leasebench/internal/normalize"
	"github.com/leasemetric/leasebench/internal/qa"
	"github.com/leasemetric/leasebench/internal/textract"
)

// Processor coordinates text extraction then per-field QA and normalization.
// Files are processed sequentially; each file is independent of the others.
type Processor struct {
	logger    *slog.Logger
	extractor *textract.Extractor
	answerer  qa.AnswerExtractor
}

func NewProcessor(logger *slog.Logger, extractor *textract.Extractor, answerer qa.AnswerExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		answerer:  answerer,
	}
}

// ProcessDirectory runs the full pipeline over every matching file under dir
// and returns one record per file, in walk order.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) ([]entity.MetadataRecord, DirStats, error) {
	paths, stats, err := ListDirectory(dir, nil, true)
	if err != nil {
		return nil, stats, err
	}

	records := make([]entity.MetadataRecord, 0, len(paths))
	for _, path := range paths {
		rec := p.ProcessFile(ctx, path)
		records = append(records, rec)
		stats.Succeeded++
	}
	return records, stats, nil
}

// ProcessFile extracts text, queries the QA model once per field, and
// normalizes the answers into one predictions row. Extraction and QA
// failures degrade to empty values; they never abort the batch.
func (p *Processor) ProcessFile(ctx context.Context, path string) entity.MetadataRecord {
	start := time.Now()
	fileName := filepath.Base(path)

	res := p.extractor.ExtractBestEffort(ctx, path)
	if res.SourceType == constants.IMAGE && res.Confidence > 0 && res.Confidence < textract.ImageConfidenceThreshold {
		p.logger.Warn("batch.textract.low_confidence", "file", fileName, "confidence", res.Confidence)
	}
	doc := entity.Document{FileName: fileName, Text: res.Text}
	p.logger.Debug("batch.textract.done",
		"file", fileName,
		"method", res.Method,
		"text_len", len(doc.Text),
		"confidence", res.Confidence,
	)

	answers := make(map[constants.Field]string, len(constants.ScoredFields))
	for _, f := range constants.ScoredFields {
		ans, _, err := p.answerer.ExtractAnswer(ctx, qa.AnswerRequest{
			Question:       constants.Questions[f],
			Context:        doc.Text,
			FilenameHint:   fileName,
			PrepConfidence: res.Confidence,
		})
		if err != nil {
			p.logger.Error("batch.qa.failed", "file", fileName, "field", string(f), "error", err)
			continue
		}
		answers[f] = ans.Text
	}

	rec := p.normalizeAnswers(fileName, answers)

	p.logger.Info("batch.file.done",
		"file", fileName,
		"value", rec.Value,
		"start_date", rec.StartDate,
		"end_date", rec.EndDate,
		"notice_days", rec.NoticeDays,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec
}

// normalizeAnswers applies the per-field rules. Rent falls back to the raw
// answer when neither parse succeeds; dates pass through unchanged on parse
// failure; an unmatched notice phrase yields 0.
func (p *Processor) normalizeAnswers(fileName string, answers map[constants.Field]string) entity.MetadataRecord {
	rec := entity.MetadataRecord{FileName: fileName}

	if raw := answers[constants.FieldValue]; raw != "" {
		if n, err := normalize.RentValue(raw); err == nil {
			rec.Value = strconv.Itoa(n)
		} else {
			p.logger.Warn("batch.normalize.rent_failed", "file", fileName, "raw", raw, "error", err)
			rec.Value = raw
		}
	}
	if raw := answers[constants.FieldStartDate]; raw != "" {
		rec.StartDate = normalize.Date(raw)
	}
	if raw := answers[constants.FieldEndDate]; raw != "" {
		rec.EndDate = normalize.Date(raw)
	}
	if raw := answers[constants.FieldNotice]; raw != "" {
		rec.NoticeDays = strconv.Itoa(normalize.NoticeDays(raw))
	}
	rec.PartyOne = answers[constants.FieldPartyOne]
	rec.PartyTwo = answers[constants.FieldPartyTwo]
	return rec
}
