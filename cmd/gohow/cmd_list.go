package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gohow/internal/catalogue"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// listCmd prints the catalogue
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sample units",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	_, cat, err := loadSetup(context.Background())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !markdown {
		_, err := io.WriteString(out, describeUnits(cat))
		return err
	}

	rendered, err := renderMarkdown(unitsMarkdown(cat), isTerminal(out))
	if err != nil {
		return fmt.Errorf("render catalogue: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// describeUnits lists units with lower-cased descriptions, names padded to a
// common display width.
func describeUnits(cat *catalogue.Catalogue) string {
	units := cat.Units()
	width := 0
	for _, u := range units {
		if w := runewidth.StringWidth(u.Name); w > width {
			width = w
		}
	}

	lower := cases.Lower(language.Und)
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", runewidth.FillRight(u.Name, width), lower.String(u.Description)))
	}
	return sb.String()
}

// unitsMarkdown groups units under a heading per top-level directory.
func unitsMarkdown(cat *catalogue.Catalogue) string {
	var sb strings.Builder
	sb.WriteString("# Sample units\n")

	group := ""
	for _, u := range cat.Units() {
		g, _, _ := strings.Cut(u.Name, ".")
		if g != group {
			group = g
			sb.WriteString(fmt.Sprintf("\n## %s\n\n", group))
		}
		sb.WriteString(fmt.Sprintf("- **%s** (`%s`): %s\n", u.Name, u.Package, u.Description))
	}
	return sb.String()
}

func renderMarkdown(md string, tty bool) (string, error) {
	style := glamour.WithStylePath("notty")
	if tty {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
