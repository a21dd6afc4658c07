package main

import (
	"fmt"
	"strconv"

	"utilboard/cmd/utilboard/ui"
	"utilboard/internal/dataset"
	"utilboard/internal/workforce"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd lints the export file
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the workforce export",
	Long: `Loads the export and reports what the projection would drop and which
values would render as defaults: records with neither variant, inactive
persons, blank names, and missing or unparseable numeric strings.

Exits non-zero when the export yields no rows at all.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	report := workforce.Audit(snap.Records)
	logger.Debug("audit complete",
		zap.Int("records", report.Records),
		zap.Int("visible", report.Visible))

	t := ui.NewSimpleTable("Export check: "+snap.Path, []string{"Check", "Count"})
	t.AddRow("records", strconv.Itoa(report.Records))
	t.AddRow("visible rows", strconv.Itoa(report.Visible))
	t.AddRow("dropped: no variant", strconv.Itoa(report.NoVariant))
	t.AddRow("dropped: inactive employees", strconv.Itoa(report.InactiveEmployees))
	t.AddRow("dropped: inactive externals", strconv.Itoa(report.InactiveExternals))
	t.AddRow("dropped: blank name", strconv.Itoa(report.Unnamed))
	t.AddRow("rate cells missing", strconv.Itoa(report.MissingRates))
	t.AddRow("rate cells malformed", strconv.Itoa(report.MalformedRates))
	t.AddRow("earnings missing", strconv.Itoa(report.MissingEarnings))
	t.AddRow("earnings malformed", strconv.Itoa(report.MalformedEarnings))
	fmt.Print(t.View(ui.DefaultStyles()))

	if report.Visible == 0 {
		return fmt.Errorf("export %s yields no rows (%d records, %d dropped)",
			snap.Path, report.Records, report.Dropped())
	}
	return nil
}
