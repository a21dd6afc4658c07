package main

import (
	"fmt"
	"os"

	"utilboard/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgFile   string
	dataPath  string
	themeName string
	watch     bool
	verbose   bool

	// Logger for non-interactive subcommands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "utilboard",
	Short: "utilboard - workforce utilisation dashboard",
	Long: `utilboard renders a terminal dashboard of workforce utilisation and
earnings metrics from a static JSON export of employees and externals.

Each row is one active, named person: their past-twelve-months and
year-to-date utilisation, the May/June/July breakout, and the previous
calendar month's potential earnings.

Run without arguments to open the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for the dashboard (it has its own category logging)
		if cmd.Use == "utilboard" && cmd.CalledAs() == "utilboard" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .utilboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Workforce export file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "UI theme: auto, light, dark")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Reload the dashboard when the export changes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig resolves the effective configuration: file (or defaults), then
// environment, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if dataPath != "" {
		cfg.Dataset.Path = dataPath
	}
	if themeName != "" {
		cfg.UI.Theme = themeName
	}
	if cmd.Flags().Changed("watch") {
		cfg.Dataset.Watch = watch
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
