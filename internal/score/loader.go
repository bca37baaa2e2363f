package score

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/common"
	"github.com/leasemetric/leasebench/internal/entity"
)

// LoadGroundTruth reads a labeled table (.csv or .xlsx) keyed by File Name.
// Columns are resolved by header so ordering in the source file is free.
func LoadGroundTruth(path string) ([]entity.GroundTruthRecord, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, common.WrapError(err, "read ground truth")
	}
	return recordsFromRows(rows)
}

// LoadPredictions reads a previously exported predictions table.
func LoadPredictions(path string) ([]entity.MetadataRecord, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, common.WrapError(err, "read predictions")
	}
	gts, err := recordsFromRows(rows)
	if err != nil {
		return nil, err
	}
	out := make([]entity.MetadataRecord, 0, len(gts))
	for _, g := range gts {
		out = append(out, entity.MetadataRecord(g))
	}
	return out, nil
}

func readTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		return r.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		sheet := f.GetSheetName(0)
		return f.GetRows(sheet)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", filepath.Ext(path))
	}
}

func recordsFromRows(rows [][]string) ([]entity.GroundTruthRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table is empty")
	}

	// header -> column index
	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	if _, ok := idx[string(constants.FieldFileName)]; !ok {
		return nil, fmt.Errorf("table has no %q column", constants.FieldFileName)
	}

	cell := func(row []string, f constants.Field) string {
		i, ok := idx[string(f)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]entity.GroundTruthRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cell(row, constants.FieldFileName)
		if name == "" {
			continue
		}
		out = append(out, entity.GroundTruthRecord{
			FileName:   name,
			Value:      cell(row, constants.FieldValue),
			StartDate:  cell(row, constants.FieldStartDate),
			EndDate:    cell(row, constants.FieldEndDate),
			NoticeDays: cell(row, constants.FieldNotice),
			PartyOne:   cell(row, constants.FieldPartyOne),
			PartyTwo:   cell(row, constants.FieldPartyTwo),
		})
	}
	return out, nil
}
