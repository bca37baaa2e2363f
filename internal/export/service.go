package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/entity"
)

// Service produces the predictions table as CSV or XLSX bytes.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// PredictionsCSV renders the records as a comma-delimited table with the
// canonical header row.
func (s *Service) PredictionsCSV(recs []entity.MetadataRecord) ([]byte, error) {
	start := time.Now()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(constants.Headers()); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, r := range recs {
		if err := w.Write(r.Row()); err != nil {
			return nil, fmt.Errorf("csv row %q: %w", r.FileName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// PredictionsXLSX returns an XLSX workbook (as bytes) with one row per
// processed document.
func (s *Service) PredictionsXLSX(recs []entity.MetadataRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Predictions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet so the workbook opens on Predictions
	_ = f.DeleteSheet("Sheet1")

	for i, h := range constants.Headers() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		for i, v := range r.Row() {
			write(i+1, v)
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // file name
	_ = f.SetColWidth(sheet, "B", "B", 16) // value
	_ = f.SetColWidth(sheet, "C", "D", 20) // dates
	_ = f.SetColWidth(sheet, "E", "E", 20) // notice days
	_ = f.SetColWidth(sheet, "F", "G", 36) // parties

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
