package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gohow/internal/catalogue"
	"gohow/internal/config"
	"gohow/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Report flags (root and show)
	pagerMode  string
	plainStyle bool

	// List flags
	markdown bool

	// Logger
	logger = zap.NewNop()
)

const rootLong = `gohow shows runnable Go examples, grouped by category.

Every sample unit is a Go package. Its functions are executed by an
interpreter and each one is shown with its doc comment, its source and
the value it returned.`

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:          "gohow [unit]",
	Short:        "Browse runnable Go examples by topic",
	Long:         rootLong,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
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
		_ = logger.Sync()
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No unit: the help doubles as the catalogue
		if len(args) == 0 {
			return cmd.Help()
		}
		return runShow(cmd, args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config dir/gohow/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-routine execution timeout (default from config)")

	for _, c := range []*cobra.Command{rootCmd, showCmd} {
		c.Flags().StringVar(&pagerMode, "pager", "", "Pager mode: auto, tui, external or plain (default from config)")
		c.Flags().BoolVar(&plainStyle, "plain-style", false, "Render without bold and underline")
	}
	listCmd.Flags().BoolVar(&markdown, "markdown", false, "Render the catalogue as markdown")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			cmd.Long = rootLong + "\n\n" + unitsHelp()
		}
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSetup reads the config, starts file logging and merges the built-in
// and extra sample units.
func loadSetup(ctx context.Context) (*config.Config, *catalogue.Catalogue, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if err := logging.Initialize(logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		JSONFormat: cfg.Logging.JSONFormat,
		Categories: cfg.Logging.Categories,
		Dir:        cfg.Logging.Dir,
	}); err != nil {
		return nil, nil, err
	}
	logging.BootDebug("config resolved from %s (pager=%s, timeout=%s)", path, cfg.Pager.Mode, cfg.Execution.Timeout)
	logger.Debug("Config loaded", zap.String("path", path), zap.String("pager", cfg.Pager.Mode))
	if logging.IsDebugMode() {
		logger.Info("File logging enabled", zap.String("dir", cfg.Logging.Dir))
	}

	cat, err := catalogue.Builtin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("built-in samples: %w", err)
	}
	if dir := cfg.Samples.ExtraDir; dir != "" {
		extra, err := catalogue.LoadDir(ctx, dir)
		if err != nil {
			return nil, nil, fmt.Errorf("samples dir %s: %w", dir, err)
		}
		logger.Info("Merging extra samples", zap.String("dir", dir), zap.Int("units", extra.Len()))
		cat.Merge(extra)
		logging.Boot("merged %d extra units from %s", extra.Len(), dir)
	}
	return cfg, cat, nil
}

// unitsHelp lists the catalogue for the root help text.
func unitsHelp() string {
	_, cat, err := loadSetup(context.Background())
	if err != nil {
		return fmt.Sprintf("Sample units unavailable: %v", err)
	}
	return "Sample units:\n" + describeUnits(cat)
}
