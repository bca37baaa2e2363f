package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leasemetric/leasebench/internal/archive"
	"github.com/leasemetric/leasebench/internal/common"
)

func newRunsCmd(logger *slog.Logger) *cobra.Command {
	var (
		archivePath string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived extraction runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if archivePath == "" {
				archivePath = common.LoadConfig().Archive.Path
			}
			if archivePath == "" {
				return common.NewAppError("CONFIG_ERROR", "--archive or ARCHIVE_DB_PATH is required", common.ErrInvalidInput)
			}

			store, err := archive.Open(archivePath, logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no archived runs")
				return nil
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  %-7s %s\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), string(r.Status), r.SourceDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archivePath, "archive", "", "sqlite archive file (default $ARCHIVE_DB_PATH)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}
