package main

import (
	"fmt"
	"time"

	"utilboard/internal/dataset"
	"utilboard/internal/workforce"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statsCmd summarizes the export without mounting the UI
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print projection statistics for the export",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	report := workforce.Audit(snap.Records)
	logger.Debug("audit complete", zap.String("load_id", snap.LoadID))

	fmt.Printf("Export:              %s\n", snap.Path)
	fmt.Printf("Loaded:              %s (load %s)\n", snap.LoadedAt.Format(time.RFC3339), snap.LoadID)
	fmt.Printf("Records:             %d (%d employees, %d externals)\n",
		report.Records, report.Employees, report.Externals)
	fmt.Printf("Visible rows:        %d\n", report.Visible)
	fmt.Printf("Dropped:             %d\n", report.Dropped())
	fmt.Printf("Default-valued cells: %d\n", report.Fallbacks())
	fmt.Printf("Earnings month:      %s\n", workforce.PreviousMonthKey(time.Now()))
	fmt.Printf("Watch:               %v (settle %s)\n", cfg.Dataset.Watch, cfg.GetSettle())
	return nil
}
