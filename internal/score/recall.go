package score

import (
	"strings"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/entity"
	"github.com/leasemetric/leasebench/internal/normalize"
)

// Recall computes per-field recall of predictions against ground truth.
// Rows are joined by file name. A missing value on either side excludes the
// row from both numerator and denominator; a field with no comparable rows
// scores 0.
func Recall(preds []entity.MetadataRecord, truth []entity.GroundTruthRecord) entity.RecallReport {
	byName := make(map[string]entity.MetadataRecord, len(preds))
	for _, p := range preds {
		byName[p.FileName] = p
	}

	report := make(entity.RecallReport, len(constants.ScoredFields))
	for _, f := range constants.ScoredFields {
		var matched, compared int
		for _, gt := range truth {
			pred, ok := byName[gt.FileName]
			if !ok {
				continue
			}
			want := strings.TrimSpace(gt.FieldValue(f))
			got := strings.TrimSpace(pred.FieldValue(f))
			if want == "" || got == "" {
				continue
			}
			compared++
			if fieldEqual(f, got, want) {
				matched++
			}
		}
		if compared == 0 {
			report[f] = 0
			continue
		}
		report[f] = float64(matched) / float64(compared)
	}
	return report
}

// fieldEqual applies the per-field comparison rule: exact equality for the
// numeric columns, calendar-date equality (day-first) for the date columns,
// case-insensitive trimmed equality for the party names.
func fieldEqual(f constants.Field, got, want string) bool {
	switch f {
	case constants.FieldValue, constants.FieldNotice:
		return got == want
	case constants.FieldStartDate, constants.FieldEndDate:
		gt, ok1 := normalize.ParseDayFirst(got)
		wt, ok2 := normalize.ParseDayFirst(want)
		if !ok1 || !ok2 {
			// a side that is not a calendar date can never match; identical
			// garbage strings are still a miss
			return false
		}
		return gt.Equal(wt)
	default:
		return strings.EqualFold(got, want)
	}
}
