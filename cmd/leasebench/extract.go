package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leasemetric/leasebench/internal/batch"
	"github.com/leasemetric/leasebench/internal/common"
	"github.com/leasemetric/leasebench/internal/qa/hf"
	"github.com/leasemetric/leasebench/internal/textract"
)

func newExtractCmd(logger *slog.Logger) *cobra.Command {
	var (
		file     string
		textOnly bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract and print metadata for a single agreement file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := common.LoadConfig()
			extractor := textract.NewExtractor(textract.Config{
				Tesseract:     cfg.OCR.Tesseract,
				TesseractLang: cfg.OCR.TesseractLang,
				TessdataDir:   cfg.OCR.TessdataDir,
				PSM:           cfg.OCR.PSM,
				OEM:           cfg.OCR.OEM,
			}, logger)

			if textOnly {
				res, err := extractor.Extract(ctx, file)
				if err != nil {
					return err
				}
				fmt.Printf("method=%s confidence=%.2f\n\n%s\n", res.Method, res.Confidence, res.Text)
				return nil
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			answerer := hf.NewClient(hf.Config{
				BaseURL: cfg.QA.BaseURL,
				Model:   cfg.QA.Model,
				APIKey:  cfg.QA.APIKey,
				Timeout: cfg.QA.Timeout,
			}, logger)
			processor := batch.NewProcessor(logger, extractor, answerer)

			rec := processor.ProcessFile(ctx, file)
			fmt.Printf("File Name:             %s\n", rec.FileName)
			fmt.Printf("Aggrement Value:       %s\n", rec.Value)
			fmt.Printf("Aggrement Start Date:  %s\n", rec.StartDate)
			fmt.Printf("Aggrement End Date:    %s\n", rec.EndDate)
			fmt.Printf("Renewal Notice (Days): %s\n", rec.NoticeDays)
			fmt.Printf("Party One:             %s\n", rec.PartyOne)
			fmt.Printf("Party Two:             %s\n", rec.PartyTwo)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "agreement file to process (required)")
	cmd.Flags().BoolVar(&textOnly, "text-only", false, "print extracted text without querying the QA model")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
