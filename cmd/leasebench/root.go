package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "leasebench",
		Short: "Extract rental-agreement metadata and score it against ground truth",
		Long: `leasebench runs an extractive question-answering pipeline over a folder of
rental agreements (.docx / scanned images), normalizes the answers into typed
fields, writes a predictions table, and reports per-field recall against a
labeled ground-truth table.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(logger),
		newScoreCmd(logger),
		newExtractCmd(logger),
		newRunsCmd(logger),
	)
	return root
}
