package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leasemetric/leasebench/internal/score"
)

func newScoreCmd(logger *slog.Logger) *cobra.Command {
	var (
		predPath  string
		truthPath string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an existing predictions table against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			preds, err := score.LoadPredictions(predPath)
			if err != nil {
				return err
			}
			truth, err := score.LoadGroundTruth(truthPath)
			if err != nil {
				return err
			}
			logger.Info("score.loaded", "predictions", len(preds), "truth_rows", len(truth))
			printReport(score.Recall(preds, truth))
			return nil
		},
	}

	cmd.Flags().StringVar(&predPath, "pred", "", "predictions table (.csv or .xlsx, required)")
	cmd.Flags().StringVar(&truthPath, "truth", "", "ground-truth table (.csv or .xlsx, required)")
	_ = cmd.MarkFlagRequired("pred")
	_ = cmd.MarkFlagRequired("truth")
	return cmd
}
