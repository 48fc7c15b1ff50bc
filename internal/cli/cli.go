package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/config"
	"planner/internal/logger"
	"planner/internal/repository"
	"planner/internal/store"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotFound = 2
)

var (
	flagConfig  string
	flagDataDir string
	flagStore   string
	flagFormat  string
	flagVerbose bool
)

// app carries the wired-up repositories for one command invocation.
type app struct {
	cfg      *config.Config
	events   *repository.Events
	settings *repository.Settings
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "A local calendar planner",
		Long: `A personal calendar planner kept entirely on this machine.
Create, list, and query dated events, and manage display preferences.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Config file path")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (overrides config)")
	cmd.PersistentFlags().StringVar(&flagStore, "store", "", "Store backend: file, sqlite, or memory (overrides config)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newDayCmd(),
		newUpcomingCmd(),
		newShowCmd(),
		newDeleteCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newInitCmd(),
	)

	return cmd
}

// newApp loads config, configures logging, and wires the repositories to
// the configured store backend.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	s, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("store ready", logger.Fields{
		"backend":  cfg.Store,
		"data_dir": cfg.DataDir,
	})

	return &app{
		cfg:      cfg,
		events:   repository.NewEvents(s),
		settings: repository.NewSettings(s),
	}, nil
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case "file":
		return store.NewFile(cfg.DataDir)
	case "sqlite":
		return store.NewSQLite(config.ExpandPath(cfg.SQLitePath))
	case "memory":
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store backend: %s", cfg.Store)
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(flagConfig); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", config.ExpandPath(flagConfig))
			return nil
		},
	}
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// dateTimeLayouts are accepted for --start/--end and day arguments, most
// specific first. All are interpreted in local time.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDateTime parses s as a local date or datetime.
func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (try 2006-01-02 or 2006-01-02T15:04)", s)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
