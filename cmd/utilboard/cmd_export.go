package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"utilboard/cmd/utilboard/ui"
	"utilboard/internal/dataset"
	"utilboard/internal/workforce"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd writes the projected rows without mounting the UI
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Project the export and write the rows to stdout or a file",
	Long: `Runs the same load and projection as the dashboard, then writes the
resulting rows in the chosen format:

  table - static terminal table
  csv   - header row from the column titles, one line per person
  json  - {columns, rows} envelope with the display-formatted values`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "table", "Output format: table, csv, json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	rows := workforce.Project(snap.Records)
	logger.Info("projected dataset",
		zap.String("path", snap.Path),
		zap.Int("records", len(snap.Records)),
		zap.Int("rows", len(rows)))

	var out []byte
	switch exportFormat {
	case "table":
		out, err = renderTable(rows)
	case "csv":
		out, err = renderCSV(rows)
	case "json":
		out, err = renderJSON(rows)
	default:
		return fmt.Errorf("unknown format %q (valid: table, csv, json)", exportFormat)
	}
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Print(string(out))
		return nil
	}
	if err := os.WriteFile(exportOut, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	logger.Info("export written", zap.String("out", exportOut), zap.String("format", exportFormat))
	return nil
}

func renderTable(rows []workforce.Row) ([]byte, error) {
	headers := make([]string, 0, 7)
	for _, c := range workforce.Columns() {
		headers = append(headers, c.Header)
	}

	t := ui.NewSimpleTable("Workforce Utilisation", headers)
	for _, r := range rows {
		t.AddRow(r.Cells()...)
	}
	if len(rows) == 0 {
		return []byte("no rows\n"), nil
	}
	return []byte(t.View(ui.DefaultStyles())), nil
}

func renderCSV(rows []workforce.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := make([]string, 0, 7)
	for _, c := range workforce.Columns() {
		headers = append(headers, c.Header)
	}
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(r.Cells()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderJSON(rows []workforce.Row) ([]byte, error) {
	envelope := struct {
		Columns []workforce.Column `json:"columns"`
		Rows    []workforce.Row    `json:"rows"`
	}{
		Columns: workforce.Columns(),
		Rows:    rows,
	}

	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
