package main

import (
	"context"
	"fmt"
	"os"

	"utilboard/cmd/utilboard/ui"
	"utilboard/internal/dataset"
	"utilboard/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runDashboard mounts the interactive dashboard: load the snapshot, start the
// watcher when configured, and hand both to the bubbletea program.
func runDashboard(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if err := logging.Initialize(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}
	defer logging.CloseAll()
	logging.Boot("utilboard starting, dataset %s, watch=%v", cfg.Dataset.Path, cfg.Dataset.Watch)

	snap, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}

	reload := func() tea.Msg {
		s, lerr := dataset.Load(cfg.Dataset.Path)
		return ui.SnapshotMsg{Snapshot: s, Err: lerr}
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	page := ui.NewDashboardModel(styles, cfg.Dataset.Watch, reload)

	p := tea.NewProgram(
		ui.NewApp(page, snap),
		tea.WithAltScreen(),
	)

	if cfg.Dataset.Watch {
		watcher, werr := dataset.NewWatcher(cfg.Dataset.Path, cfg.GetSettle(), func(s *dataset.Snapshot, lerr error) {
			p.Send(ui.SnapshotMsg{Snapshot: s, Err: lerr})
		})
		if werr != nil {
			return fmt.Errorf("failed to create watcher: %w", werr)
		}
		if werr := watcher.Start(context.Background()); werr != nil {
			return fmt.Errorf("failed to start watcher: %w", werr)
		}
		defer watcher.Stop()
	}

	_, err = p.Run()
	return err
}
