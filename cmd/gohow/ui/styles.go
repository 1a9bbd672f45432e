// Package ui provides the interactive pager for gohow reports.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the handful of colors the pager draws with.
type Palette struct {
	Text   lipgloss.Color // bold report text, scroll percentage
	Accent lipgloss.Color // category headings, unit name
	Dim    lipgloss.Color // footer and key help
	Dark   bool
}

var (
	// Light suits terminals with a pale background.
	Light = Palette{
		Text:   lipgloss.Color("#101F38"),
		Accent: lipgloss.Color("#00ADD8"),
		Dim:    lipgloss.Color("#6a737d"),
	}

	// Dark brightens every color for a dark background.
	Dark = Palette{
		Text:   lipgloss.Color("#f2f2f2"),
		Accent: lipgloss.Color("#5DC9E2"),
		Dim:    lipgloss.Color("#8b949e"),
		Dark:   true,
	}
)

// DetectPalette returns Dark when GOHOW_DARK_MODE=1 or COLORFGBG names a
// dark background, Light otherwise.
func DetectPalette() Palette {
	if os.Getenv("GOHOW_DARK_MODE") == "1" || darkBackground(os.Getenv("COLORFGBG")) {
		return Dark
	}
	return Light
}

// darkBackground reads the background index, the last field of COLORFGBG
// ("fg;bg" or rxvt's "fg;default;bg"). ANSI 0-6 and 8 are dark.
func darkBackground(colorfgbg string) bool {
	fields := strings.Split(colorfgbg, ";")
	if len(fields) < 2 {
		return false
	}
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return false
	}
	return (bg >= 0 && bg < 7) || bg == 8
}

// Styles holds the lipgloss styles of the pager.
type Styles struct {
	Bold      lipgloss.Style
	Underline lipgloss.Style

	Footer  lipgloss.Style
	Unit    lipgloss.Style
	Percent lipgloss.Style
	Help    lipgloss.Style
}

// StylesFor derives the pager styles from a palette.
func StylesFor(p Palette) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return Styles{
		Bold:      fg(p.Text).Bold(true),
		Underline: fg(p.Accent).Underline(true),
		Footer:    fg(p.Dim),
		Unit:      fg(p.Accent).Bold(true).Padding(0, 1),
		Percent:   fg(p.Text).Padding(0, 1),
		Help:      fg(p.Dim).Italic(true),
	}
}
