package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leasemetric/leasebench/constants"
	"github.com/leasemetric/leasebench/internal/archive"
	"github.com/leasemetric/leasebench/internal/batch"
	"github.com/leasemetric/leasebench/internal/common"
	"github.com/leasemetric/leasebench/internal/entity"
	"github.com/leasemetric/leasebench/internal/export"
	"github.com/leasemetric/leasebench/internal/qa/hf"
	"github.com/leasemetric/leasebench/internal/score"
	"github.com/leasemetric/leasebench/internal/textract"
)

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		dir         string
		out         string
		truthPath   string
		archivePath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process a folder of agreements and write the predictions table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			startedAt := time.Now()

			cfg := common.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(filepath.Dir(dir), "predictions.csv")
			}
			if archivePath == "" {
				archivePath = cfg.Archive.Path
			}

			extractor := textract.NewExtractor(textract.Config{
				Tesseract:     cfg.OCR.Tesseract,
				TesseractLang: cfg.OCR.TesseractLang,
				TessdataDir:   cfg.OCR.TessdataDir,
				PSM:           cfg.OCR.PSM,
				OEM:           cfg.OCR.OEM,
			}, logger)
			answerer := hf.NewClient(hf.Config{
				BaseURL: cfg.QA.BaseURL,
				Model:   cfg.QA.Model,
				APIKey:  cfg.QA.APIKey,
				Timeout: cfg.QA.Timeout,
			}, logger)
			processor := batch.NewProcessor(logger, extractor, answerer)

			logger.Info("run.start", "dir", dir, "out", out)
			records, stats, err := processor.ProcessDirectory(ctx, dir)
			if err != nil {
				return fmt.Errorf("process directory: %w", err)
			}
			logger.Info("run.processed",
				"scanned", stats.Scanned,
				"matched", stats.Matched,
				"succeeded", stats.Succeeded,
				"failed", stats.Failed,
			)

			if err := writePredictions(logger, out, records); err != nil {
				return err
			}

			var report entity.RecallReport
			status := constants.RunStatusQAOK
			if truthPath != "" {
				truth, err := score.LoadGroundTruth(truthPath)
				if err != nil {
					return err
				}
				report = score.Recall(records, truth)
				printReport(report)
				status = constants.RunStatusScored
			}

			if archivePath != "" {
				store, err := archive.Open(archivePath, logger)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
				err = store.SaveRun(ctx, archive.Run{
					ID:        uuid.New(),
					StartedAt: startedAt,
					SourceDir: dir,
					Status:    status,
					Records:   records,
					Report:    report,
				})
				if err != nil {
					return fmt.Errorf("archive run: %w", err)
				}
			}

			fmt.Printf("Processed %d documents -> %s\n", len(records), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory of .docx/.png agreement files (required)")
	cmd.Flags().StringVar(&out, "out", "", "output table path, .csv or .xlsx (default <parent>/predictions.csv)")
	cmd.Flags().StringVar(&truthPath, "truth", "", "ground-truth table (.csv or .xlsx) to score against")
	cmd.Flags().StringVar(&archivePath, "archive", "", "sqlite file to archive this run to (default $ARCHIVE_DB_PATH)")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func writePredictions(logger *slog.Logger, out string, records []entity.MetadataRecord) error {
	svc := export.NewService(logger)
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(out)) {
	case ".xlsx":
		data, err = svc.PredictionsXLSX(records)
	default:
		data, err = svc.PredictionsCSV(records)
	}
	if err != nil {
		return fmt.Errorf("render predictions: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write predictions: %w", err)
	}
	return nil
}

func printReport(report entity.RecallReport) {
	fmt.Println("Recall per field:")
	for _, f := range constants.ScoredFields {
		fmt.Printf("  %-24s %.2f\n", string(f), report[f])
	}
}
