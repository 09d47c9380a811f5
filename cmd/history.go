package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evsight/evsight/infra/history"
	"github.com/evsight/evsight/infra/logger"
)

var historyStatus string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored evaluation reports",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "filter by health status")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := history.New(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return fmt.Errorf("history store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.New("history").Errorf("store close: %v", err)
		}
	}()

	reps, err := store.Query(context.Background(), history.Query{HealthStatus: historyStatus})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, rep := range reps {
		fmt.Fprintf(out, "%s  %s  soh=%.1f%%  range=%.2fkm  %s\n",
			rep.GeneratedAt.Format(time.RFC3339), rep.ID,
			rep.Degradation.SoH, rep.Range.RangeKm, rep.Degradation.HealthStatus)
	}
	if len(reps) == 0 {
		fmt.Fprintln(out, "no reports stored")
	}
	return nil
}
