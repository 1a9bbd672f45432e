package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gohow/internal/config"
	"gohow/internal/extract"
	"gohow/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// showCmd renders one sample unit
var showCmd = &cobra.Command{
	Use:   "show <unit>",
	Short: "Run a sample unit and page its report",
	Long: `Runs every function of the unit and pages the report:
  1. Discover: find the functions and the category markers above them
  2. Execute: call each function through the interpreter
  3. Group: sort by category then name, number the categories
  4. Page: hand the styled text to the pager

Example:
  gohow show lib.text
  gohow show impl.iteration --pager plain`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// runShow builds, renders and pages the report for args[0].
func runShow(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, cat, err := loadSetup(ctx)
	if err != nil {
		return err
	}
	unit, err := cat.Lookup(args[0])
	if err != nil {
		return err
	}

	mode := cfg.Pager.Mode
	if pagerMode != "" {
		mode = pagerMode
	}
	if !validMode(mode) {
		return fmt.Errorf("%w: pager mode %q (valid: %v)", config.ErrInvalidConfig, mode, config.ValidPagerModes)
	}

	opts := report.DefaultOptions()
	opts.Extract = extract.Options{Tag: cfg.Extract.CategoryTag, Reserved: cfg.Extract.Reserved}
	opts.CallTimeout = cfg.GetExecutionTimeout()
	if timeout > 0 {
		opts.CallTimeout = timeout
	}

	logger.Info("Building report", zap.String("unit", unit.Name), zap.Duration("call_timeout", opts.CallTimeout))
	rep, err := report.Build(ctx, unit, opts)
	if err != nil {
		return err
	}
	logger.Debug("Report built", zap.Int("categories", len(rep.Categories)), zap.Int("entries", rep.Len()))

	style := cfg.Render.Style
	if plainStyle {
		style = config.StylePlain
	}
	text := report.Render(rep, report.RenderOptions{
		Style:    styler(style),
		TabWidth: cfg.Render.TabWidth,
	})

	return page(ctx, cmd.OutOrStdout(), unit.Name, text, mode, cfg.Pager.Command)
}

func styler(style string) report.Styler {
	if style == config.StylePlain {
		return report.Plain{}
	}
	return report.Overstrike{}
}

func validMode(mode string) bool {
	for _, m := range config.ValidPagerModes {
		if m == mode {
			return true
		}
	}
	return false
}
