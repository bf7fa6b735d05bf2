// Package cmd provides the CLI commands for typeahead.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/guicastle/typeahead/configs"
	"github.com/guicastle/typeahead/internal/config"
	taerrors "github.com/guicastle/typeahead/internal/errors"
	"github.com/guicastle/typeahead/internal/logging"
	"github.com/guicastle/typeahead/internal/pipeline"
	"github.com/guicastle/typeahead/internal/provider"
	"github.com/guicastle/typeahead/internal/ui"
	"github.com/guicastle/typeahead/pkg/version"
)

var (
	cfgPath   string
	dataPath  string
	debugMode bool
)

// NewRootCmd creates the root command for the typeahead CLI.
func NewRootCmd() *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "typeahead",
		Short: "Debounced search-as-you-type over a local dataset",
		Long: `Typeahead is a demo shell around a reactive query pipeline: keystrokes
are debounced, duplicate queries are suppressed, and a new query supersedes
any lookup still in flight, so the screen always shows the result of the
latest settled query.

Run 'typeahead' with no arguments to start the interactive UI.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(delay)
		},
	}

	cmd.SetVersionTemplate("typeahead version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (yaml)")
	cmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to newline-delimited dataset file")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.Flags().DurationVar(&delay, "delay", 0, "Artificial provider latency (e.g. 500ms)")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// runInteractive wires provider, pipeline and UI together and blocks until
// the user quits.
func runInteractive(delay time.Duration) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file only.
	logCfg := logging.DefaultConfig()
	if debugMode {
		logCfg = logging.DebugConfig()
	}
	logCfg.WriteToStderr = false
	logCfg.FilePath = cfg.Log.File
	if logCfg.FilePath == "" && debugMode {
		logCfg.FilePath = filepath.Join(os.TempDir(), "typeahead.log")
	}
	if cfg.Log.Level != "" && !debugMode {
		logCfg.Level = cfg.Log.Level
	}
	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	prov, err := buildProvider(cfg, delay)
	if err != nil {
		return err
	}
	defer func() { _ = prov.Close() }()

	ch := pipeline.NewChannel()
	pipe := pipeline.New(ch, prov, cfg.Window())
	defer func() {
		ch.Close()
		pipe.Dispose()
	}()

	slog.Info("starting interactive search",
		slog.String("debounce_window", cfg.Search.DebounceWindow),
		slog.Int("max_results", cfg.Search.MaxResults),
	)

	return ui.Run(ch, pipe, cfg.Search.MaxResults)
}

// buildProvider assembles the provider stack: static dataset provider with
// optional artificial latency, wrapped in the in-process memo cache.
func buildProvider(cfg *config.Config, delay time.Duration) (provider.Provider, error) {
	items, err := loadDataset(cfg)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, taerrors.New(taerrors.ErrCodeDatasetEmpty, "dataset contains no items", nil)
	}

	if delay <= 0 {
		delay = cfg.Latency()
	}
	static := provider.NewStatic(items).WithDelay(delay)

	cached, err := provider.NewCached(static, cfg.Search.CacheSize)
	if err != nil {
		return nil, err
	}

	slog.Debug("provider ready",
		slog.Int("items", len(items)),
		slog.Duration("latency", delay),
	)
	return cached, nil
}

// loadDataset resolves the dataset source: --data flag, then config, then the
// embedded default list.
func loadDataset(cfg *config.Config) ([]string, error) {
	path := dataPath
	if path == "" {
		path = cfg.Provider.DatasetPath
	}
	if path != "" {
		return provider.LoadItems(path)
	}
	return provider.ItemsFromReader(strings.NewReader(configs.DefaultDataset))
}
