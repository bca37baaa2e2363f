package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/entity"
)

func pred(name, value, start, end, notice, p1, p2 string) entity.MetadataRecord {
	return entity.MetadataRecord{
		FileName: name, Value: value, StartDate: start, EndDate: end,
		NoticeDays: notice, PartyOne: p1, PartyTwo: p2,
	}
}

func truth(name, value, start, end, notice, p1, p2 string) entity.GroundTruthRecord {
	return entity.GroundTruthRecord{
		FileName: name, Value: value, StartDate: start, EndDate: end,
		NoticeDays: notice, PartyOne: p1, PartyTwo: p2,
	}
}

func TestRecallOneWrongField(t *testing.T) {
	// 4 documents, 4 matching truth rows, one deliberately wrong rent value.
	preds := []entity.MetadataRecord{
		pred("a.docx", "12000", "01.04.2008", "01.04.2009", "30", "John Mathew", "Rita Fernandes"),
		pred("b.docx", "9500", "05.01.2015", "05.01.2016", "60", "Acme Estates", "P. Sharma"),
		pred("c.png", "15000", "22.11.2010", "22.11.2011", "90", "S. Rao", "K. Iyer"),
		pred("d.png", "99999", "02.02.2012", "02.02.2013", "30", "L. Gupta", "M. Nair"), // wrong value
	}
	truths := []entity.GroundTruthRecord{
		truth("a.docx", "12000", "01.04.2008", "01.04.2009", "30", "john mathew", "rita fernandes"),
		truth("b.docx", "9500", "05.01.2015", "05.01.2016", "60", "ACME ESTATES", "p. sharma"),
		truth("c.png", "15000", "22.11.2010", "22.11.2011", "90", "S. Rao", "K. Iyer"),
		truth("d.png", "20000", "02.02.2012", "02.02.2013", "30", "L. Gupta", "M. Nair"),
	}

	report := Recall(preds, truths)
	assert.InDelta(t, 0.75, report[constants.FieldValue], 1e-9)
	for _, f := range constants.ScoredFields {
		if f == constants.FieldValue {
			continue
		}
		assert.InDelta(t, 1.0, report[f], 1e-9, "field %s", f)
	}
}

func TestRecallPartialCoverage(t *testing.T) {
	// Truth rows without a matching prediction are excluded from both sides.
	preds := []entity.MetadataRecord{
		pred("a.docx", "12000", "", "", "", "", ""),
	}
	truths := []entity.GroundTruthRecord{
		truth("a.docx", "12000", "01.04.2008", "", "", "", ""),
		truth("missing.docx", "7000", "", "", "", "", ""),
	}

	report := Recall(preds, truths)
	assert.InDelta(t, 1.0, report[constants.FieldValue], 1e-9)
	// prediction side empty -> start date has zero comparable rows
	assert.Zero(t, report[constants.FieldStartDate])
	for _, f := range constants.ScoredFields {
		assert.GreaterOrEqual(t, report[f], 0.0)
		assert.LessOrEqual(t, report[f], 1.0)
	}
}

func TestRecallDateEqualityAcrossFormats(t *testing.T) {
	preds := []entity.MetadataRecord{
		pred("a.docx", "", "01.04.2008", "", "", "", ""),
	}
	truths := []entity.GroundTruthRecord{
		truth("a.docx", "", "1st April, 2008", "", "", "", ""),
	}
	report := Recall(preds, truths)
	assert.InDelta(t, 1.0, report[constants.FieldStartDate], 1e-9)
}

func TestRecallNamesCaseInsensitive(t *testing.T) {
	preds := []entity.MetadataRecord{
		pred("a.docx", "", "", "", "", "  John MATHEW ", ""),
	}
	truths := []entity.GroundTruthRecord{
		truth("a.docx", "", "", "", "", "john mathew", ""),
	}
	report := Recall(preds, truths)
	assert.InDelta(t, 1.0, report[constants.FieldPartyOne], 1e-9)
}

func TestRecallUnparseableDatesNeverMatch(t *testing.T) {
	// identical garbage on both sides is still a miss, not a string match
	preds := []entity.MetadataRecord{
		pred("a.docx", "", "on vacating the premises", "", "", "", ""),
		pred("b.docx", "", "02.02.2012", "", "", "", ""),
	}
	truths := []entity.GroundTruthRecord{
		truth("a.docx", "", "on vacating the premises", "", "", "", ""),
		truth("b.docx", "", "02.02.2012", "", "", "", ""),
	}
	report := Recall(preds, truths)
	assert.InDelta(t, 0.5, report[constants.FieldStartDate], 1e-9)
}

func TestRecallNoComparableRows(t *testing.T) {
	report := Recall(nil, nil)
	for _, f := range constants.ScoredFields {
		assert.Zero(t, report[f])
	}
}
