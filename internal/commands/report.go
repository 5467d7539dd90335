package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/adapters/remote"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/tracker"
)

func newReportCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "report <monthly|yearly>",
		Short:     "Download a spending report for the current month or year",
		ValidArgs: []string{string(domain.ReportMonthly), string(domain.ReportYearly)},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = a.cfg.ReportDir
			}
			downloader := tracker.NewReportDownloader(remote.NewReportGateway(a.client), a.logger)
			path, err := downloader.Download(cmd.Context(), domain.ReportPeriod(args[0]), dir)
			if err != nil {
				return err
			}

			size := "?"
			if info, err := os.Stat(path); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", path, size)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to save the report in (default REPORT_DIR)")

	return cmd
}
