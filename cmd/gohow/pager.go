package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"gohow/cmd/gohow/ui"
	"gohow/internal/config"
	"gohow/internal/logging"
	"gohow/internal/report"

	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveMode turns "auto" into tui or plain depending on out.
func resolveMode(mode string, out io.Writer) string {
	if mode != config.PagerAuto {
		return mode
	}
	if isTerminal(out) {
		return config.PagerTUI
	}
	return config.PagerPlain
}

// page hands the rendered report to the selected pager.
func page(ctx context.Context, out io.Writer, unit, text, mode, command string) error {
	resolved := resolveMode(mode, out)
	logging.Pager("paging %s via %s (requested %s, %d bytes)", unit, resolved, mode, len(text))

	switch resolved {
	case config.PagerTUI:
		return ui.Run(unit, text)
	case config.PagerExternal:
		return runExternal(ctx, out, command, text)
	default:
		_, err := io.WriteString(out, report.Strip(text))
		return err
	}
}

// runExternal pipes text into command, which inherits stderr.
func runExternal(ctx context.Context, out io.Writer, command, text string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty pager command", config.ErrInvalidConfig)
	}

	c := exec.CommandContext(ctx, fields[0], fields[1:]...)
	c.Stdin = strings.NewReader(text)
	c.Stdout = out
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("pager %q: %w", command, err)
	}
	return nil
}
