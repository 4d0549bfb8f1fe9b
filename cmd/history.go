package cmd

import (
	"fmt"

	"gotouch/internal/db"
	"gotouch/internal/logger"
	"gotouch/internal/model"
	"gotouch/internal/repository"

	"github.com/spf13/cobra"
)

var (
	historyN      int
	historyFailed bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View gotouch history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		if err := db.Init(cfg.HistoryDB); err != nil {
			return err
		}

		repo := repository.NewHistoryRepository()

		var (
			records []model.TouchRecord
			err     error
		)
		if historyFailed {
			records, err = repo.GetFailed(historyN)
		} else {
			records, err = repo.GetRecent(historyN)
		}
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			_, _ = fmt.Fprintln(out, "no history yet")
			return nil
		}

		for _, r := range records {
			status := "✓"
			if r.Status == model.StatusFailed {
				status = "✗"
			}

			_, _ = fmt.Fprintf(out, "%s [%s] %-7s %-9s %s\n",
				status,
				r.TouchedAt.Format("2006-01-02 15:04:05"),
				r.Action,
				r.Source,
				r.Path,
			)
			if r.ErrMsg != "" {
				_, _ = fmt.Fprintf(out, "    %s\n", r.ErrMsg)
			}
		}

		stats, err := repo.GetStats()
		if err != nil {
			return fmt.Errorf("failed to read history stats: %w", err)
		}

		_, _ = fmt.Fprintf(out, "total: %d, success: %d, failed: %d\n",
			stats.Total, stats.Success, stats.Failed)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyN, "n", 20, "number of history entries to show")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "show only failed entries")
	rootCmd.AddCommand(historyCmd)
}
